package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"studioe_backend/internals/configs"
)

// SetupMiddlewares wires the base middleware chain: recovery first so panics
// in later middleware are also caught, then CORS and the global limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
