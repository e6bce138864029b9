package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware limits browser origins to the marketing site and local dev.
// The calendar feed sets its own Access-Control-Allow-Origin: * because it
// must be fetchable by any third-party calendar client.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.Join([]string{
			"http://localhost:3000",
			"http://localhost:5173",
			"https://www.joinstudioe.com",
			"https://joinstudioe.com",
		}, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, stripe-signature",
		AllowCredentials: true,
	})
}
