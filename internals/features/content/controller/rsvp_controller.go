package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioe_backend/internals/features/content/dto"
	"studioe_backend/internals/features/content/model"
	helper "studioe_backend/internals/helpers"
)

type RsvpController struct {
	DB *gorm.DB
}

func NewRsvpController(db *gorm.DB) *RsvpController {
	return &RsvpController{DB: db}
}

// POST /api/u/events/:id/rsvp
// A second RSVP for the same event answers 200 with the existing row, so
// the dashboard button stays idempotent.
func (ctrl *RsvpController) CreateRsvp(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var event model.EventModel
	err = ctrl.DB.
		Where("event_id = ? AND event_approved = ?", eventID, true).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		log.Printf("[ERROR] rsvp event load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to RSVP")
	}

	row := model.EventRsvpModel{
		EventRsvpEventID: eventID,
		EventRsvpUserID:  userID,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			var existing model.EventRsvpModel
			if err := ctrl.DB.
				Where("event_rsvp_event_id = ? AND event_rsvp_user_id = ?", eventID, userID).
				First(&existing).Error; err == nil {
				return helper.JsonOK(c, "Already attending", dto.ToRsvpResponse(existing, &event))
			}
		}
		log.Printf("[ERROR] rsvp create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to RSVP")
	}
	return helper.JsonCreated(c, "RSVP recorded", dto.ToRsvpResponse(row, &event))
}

// DELETE /api/u/events/:id/rsvp
func (ctrl *RsvpController) DeleteRsvp(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "RSVP not found")
	}

	res := ctrl.DB.
		Where("event_rsvp_event_id = ? AND event_rsvp_user_id = ?", eventID, userID).
		Delete(&model.EventRsvpModel{})
	if res.Error != nil {
		log.Printf("[ERROR] rsvp delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel RSVP")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "RSVP not found")
	}
	return helper.JsonDeleted(c, "RSVP cancelled", fiber.Map{"event_id": eventID})
}

// GET /api/u/rsvps: the caller's RSVPs with their events, soonest first.
func (ctrl *RsvpController) ListMyRsvps(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rsvps []model.EventRsvpModel
	if err := ctrl.DB.
		Where("event_rsvp_user_id = ?", userID).
		Find(&rsvps).Error; err != nil {
		log.Printf("[ERROR] rsvp list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load RSVPs")
	}

	eventIDs := make([]uuid.UUID, 0, len(rsvps))
	for _, r := range rsvps {
		eventIDs = append(eventIDs, r.EventRsvpEventID)
	}
	events := map[uuid.UUID]model.EventModel{}
	if len(eventIDs) > 0 {
		var rows []model.EventModel
		if err := ctrl.DB.
			Where("event_id IN ?", eventIDs).
			Order("event_date ASC").
			Find(&rows).Error; err != nil {
			log.Printf("[ERROR] rsvp events load: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load RSVPs")
		}
		for _, e := range rows {
			events[e.EventID] = e
		}
	}

	out := make([]dto.RsvpResponse, 0, len(rsvps))
	for _, r := range rsvps {
		if e, ok := events[r.EventRsvpEventID]; ok {
			out = append(out, dto.ToRsvpResponse(r, &e))
		} else {
			out = append(out, dto.ToRsvpResponse(r, nil))
		}
	}
	return helper.JsonOK(c, "RSVPs found", out)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
