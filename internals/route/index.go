package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/integrations"
	authmw "studioe_backend/internals/middlewares/auth"
)

// SetupRoutes mounts three surfaces:
//
//	/api      public marketing, calendar feeds, Stripe endpoints
//	/api/u    any authenticated user
//	/api/a    admin gate (role or allow-listed email)
//
// Lesson routes authenticate but scope per-role inside the handlers.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, clients *integrations.Clients) {
	api := app.Group("/api")

	// Terminal public routes go first. Group middleware below matches by
	// path prefix, so /api/auth and /api/user must already be registered
	// before the /api/a and /api/u groups mount.
	PublicContentRoutes(api, db, cfg)
	CalendarRoutes(api, db)
	AuthRoutes(api, db, cfg)
	UserRoutes(api, db, cfg, clients)
	LessonRoutes(api, db, cfg, clients)

	protected := api.Group("/u", authmw.AuthMiddleware(db, cfg))
	admin := api.Group("/a", authmw.AuthMiddleware(db, cfg), authmw.AdminGate(cfg))

	PaymentRoutes(api, protected, db, cfg, clients)
	RsvpRoutes(protected, db)
	AdminContentRoutes(admin, db, clients)
}
