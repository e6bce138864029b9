package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/features/calendar/service"
	contentModel "studioe_backend/internals/features/content/model"
	helper "studioe_backend/internals/helpers"
)

type CalendarController struct {
	DB *gorm.DB
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

// GET /api/calendar/:type
// Serves the public ICS feed. The feed must be fetchable by third-party
// calendar clients from any origin, hence the wildcard CORS header here.
func (ctrl *CalendarController) GetFeed(c *fiber.Ctx) error {
	feedType := c.Params("type")
	if !service.IsValidFeedType(feedType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown calendar type")
	}

	var (
		doc string
		err error
	)
	switch feedType {
	case service.FeedEvents:
		var events []contentModel.EventModel
		if err = ctrl.DB.
			Where("event_approved = ?", true).
			Order("event_date ASC").
			Find(&events).Error; err == nil {
			doc, err = service.BuildEventsCalendar(events)
		}
	case service.FeedClasses:
		var classes []contentModel.ClassModel
		if err = ctrl.DB.
			Where("class_approved = ?", true).
			Order("class_weekday ASC, class_start_time ASC").
			Find(&classes).Error; err == nil {
			doc, err = service.BuildClassesCalendar(classes, time.Now().UTC())
		}
	}
	if err != nil {
		log.Printf("[ERROR] calendar feed %s: %v", feedType, err)
		// Never a partial calendar body on failure.
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate calendar")
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="studio-e-%s.ics"`, feedType))
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.SendString(doc)
}
