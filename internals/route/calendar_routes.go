package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarController "studioe_backend/internals/features/calendar/controller"
)

func CalendarRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := calendarController.NewCalendarController(db)

	// No auth: calendar clients subscribe without credentials.
	api.Get("/calendar/:type", ctrl.GetFeed)
}
