package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/constants"
)

// AdminGate authorizes admin routes: the caller must carry the admin
// account type or an email on the configured allow-list. Runs after
// AuthMiddleware, which sets the locals it reads.
func AdminGate(cfg *configs.Config) fiber.Handler {
	allowed := ParseAdminEmails(cfg.AdminEmails)
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role == constants.RoleAdmin {
			return c.Next()
		}
		email, _ := c.Locals("user_email").(string)
		if _, ok := allowed[email]; ok {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: admin access required",
		})
	}
}

// ParseAdminEmails normalizes the comma-separated ADMIN_EMAILS value.
func ParseAdminEmails(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out[e] = struct{}{}
		}
	}
	return out
}
