package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the calendar-feed source: only approved rows are exported.
// Start/end times of day are stored as "HH:MM" strings alongside the date
// columns, matching how the dashboard captures them.
type EventModel struct {
	EventID          uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string     `gorm:"column:event_title;size:255;not null" json:"event_title"`
	EventSlug        string     `gorm:"column:event_slug;size:100;not null;unique" json:"event_slug"`
	EventDescription string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string     `gorm:"column:event_location;size:255" json:"event_location"`
	EventDate        time.Time  `gorm:"column:event_date;type:date;not null" json:"event_date"`
	EventDateEnd     *time.Time `gorm:"column:event_date_end;type:date" json:"event_date_end,omitempty"`
	EventStartTime   string     `gorm:"column:event_start_time;size:5;not null;default:'19:00'" json:"event_start_time"`
	EventEndTime     string     `gorm:"column:event_end_time;size:5;not null;default:'21:00'" json:"event_end_time"`
	EventApproved    bool       `gorm:"column:event_approved;not null;default:false" json:"event_approved"`
	EventImageURL    *string    `gorm:"column:event_image_url;type:text" json:"event_image_url,omitempty"`
	EventCreatedAt   time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt   time.Time  `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

type EventRsvpModel struct {
	EventRsvpID        uuid.UUID `gorm:"column:event_rsvp_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_rsvp_id"`
	EventRsvpEventID   uuid.UUID `gorm:"column:event_rsvp_event_id;type:uuid;not null;uniqueIndex:ux_event_rsvp" json:"event_rsvp_event_id"`
	EventRsvpUserID    uuid.UUID `gorm:"column:event_rsvp_user_id;type:uuid;not null;uniqueIndex:ux_event_rsvp" json:"event_rsvp_user_id"`
	EventRsvpCreatedAt time.Time `gorm:"column:event_rsvp_created_at;autoCreateTime" json:"event_rsvp_created_at"`
}

func (EventRsvpModel) TableName() string {
	return "event_rsvps"
}
