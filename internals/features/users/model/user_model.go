package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the identity rows; the id matches the identity
// provider's subject so provider tokens map straight onto local rows.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail     string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserFullName  string    `gorm:"column:user_full_name;size:255" json:"user_full_name"`
	UserGoogleID  *string   `gorm:"column:user_google_id;size:255;unique" json:"user_google_id,omitempty"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
