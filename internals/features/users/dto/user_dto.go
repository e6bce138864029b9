package dto

import (
	"time"

	"github.com/google/uuid"

	"studioe_backend/internals/features/users/model"
)

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserFullName string    `json:"user_full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	AccountType string    `json:"account_type"`
	ImageURL    *string   `json:"profile_image_url,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
}

type ProfileUpdateRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Bio      *string `json:"bio" validate:"omitempty,max=2000"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		UserEmail:    u.UserEmail,
		UserFullName: u.UserFullName,
		CreatedAt:    u.UserCreatedAt,
	}
}

func ToProfileResponse(u *model.UserModel, p *model.UserProfileModel) ProfileResponse {
	return ProfileResponse{
		UserID:      u.UserID,
		Email:       u.UserEmail,
		FullName:    u.UserFullName,
		AccountType: p.UserProfileAccountType,
		ImageURL:    p.UserProfileImageURL,
		Phone:       p.UserProfilePhone,
		Bio:         p.UserProfileBio,
	}
}
