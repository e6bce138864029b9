package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel is a recurring weekly class. Weekday follows time.Weekday
// numbering (0 = Sunday). Approved classes appear on the public schedule and
// in the classes calendar feed.
type ClassModel struct {
	ClassID          uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassCompanyID   *uuid.UUID `gorm:"column:class_company_id;type:uuid" json:"class_company_id,omitempty"`
	ClassTitle       string     `gorm:"column:class_title;size:255;not null" json:"class_title"`
	ClassSlug        string     `gorm:"column:class_slug;size:100;not null;unique" json:"class_slug"`
	ClassDescription string     `gorm:"column:class_description;type:text" json:"class_description"`
	ClassLocation    string     `gorm:"column:class_location;size:255" json:"class_location"`
	ClassWeekday     int        `gorm:"column:class_weekday;not null;default:1" json:"class_weekday"`
	ClassStartTime   string     `gorm:"column:class_start_time;size:5;not null;default:'18:00'" json:"class_start_time"`
	ClassEndTime     string     `gorm:"column:class_end_time;size:5;not null;default:'19:00'" json:"class_end_time"`
	ClassApproved    bool       `gorm:"column:class_approved;not null;default:false" json:"class_approved"`
	ClassCreatedAt   time.Time  `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt   time.Time  `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`

	Company *CompanyModel `gorm:"foreignKey:ClassCompanyID;references:CompanyID" json:"company,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}
