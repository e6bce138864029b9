package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/constants"
)

func TestParseAdminEmails(t *testing.T) {
	out := ParseAdminEmails(" Admin@JoinStudioE.com, ops@joinstudioe.com ,,")

	assert.Len(t, out, 2)
	assert.Contains(t, out, "admin@joinstudioe.com")
	assert.Contains(t, out, "ops@joinstudioe.com")

	assert.Empty(t, ParseAdminEmails(""))
}

func gateApp(cfg *configs.Config, role, email string) *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", role)
			c.Locals("user_email", email)
			return c.Next()
		},
		AdminGate(cfg),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAdminGate(t *testing.T) {
	cfg := &configs.Config{AdminEmails: "owner@joinstudioe.com"}

	cases := []struct {
		name   string
		role   string
		email  string
		status int
	}{
		{"admin role passes", constants.RoleAdmin, "anyone@example.com", fiber.StatusOK},
		{"allow-listed email passes", constants.RoleStudent, "owner@joinstudioe.com", fiber.StatusOK},
		{"student denied", constants.RoleStudent, "dancer@example.com", fiber.StatusForbidden},
		{"instructor denied", constants.RoleInstructor, "teach@example.com", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := gateApp(cfg, tc.role, tc.email)
			resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
