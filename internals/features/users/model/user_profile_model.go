package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileModel struct {
	UserProfileID          uuid.UUID `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID      uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;unique" json:"user_profile_user_id"`
	UserProfileAccountType string    `gorm:"column:user_profile_account_type;type:varchar(20);not null;default:'student'" json:"user_profile_account_type" validate:"omitempty,oneof=student instructor admin"`
	UserProfileImageURL    *string   `gorm:"column:user_profile_image_url;type:text" json:"user_profile_image_url,omitempty"`
	UserProfilePhone       *string   `gorm:"column:user_profile_phone;size:30" json:"user_profile_phone,omitempty"`
	UserProfileBio         *string   `gorm:"column:user_profile_bio;type:text" json:"user_profile_bio,omitempty"`
	UserProfileCreatedAt   time.Time `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt   time.Time `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
