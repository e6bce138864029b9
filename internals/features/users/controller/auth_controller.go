package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/features/users/dto"
	"studioe_backend/internals/features/users/service"
	helper "studioe_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Cfg      *configs.Config
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Validate: validator.New()}
}

// POST /api/auth/google
// Exchanges a Google ID token for a session JWT, creating the user row and a
// default student profile on first sign-in.
func (ctrl *AuthController) GoogleSignIn(c *fiber.Ctx) error {
	var req dto.GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	if ctrl.Cfg.GoogleClientID == "" {
		return helper.JsonFeatureUnavailable(c, "Google sign-in")
	}

	ident, err := service.VerifyGoogleIDToken(req.IDToken, ctrl.Cfg.GoogleClientID)
	if err != nil {
		log.Printf("[ERROR] google token verify: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	user, err := service.UpsertGoogleUser(ctrl.DB, ident)
	if err != nil {
		log.Printf("[ERROR] google user upsert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sign-in failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, ttl, err := service.IssueSessionToken(ctrl.Cfg.JWTSecret, user.UserID, user.UserEmail)
	if err != nil {
		log.Printf("[ERROR] session token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sign-in failed")
	}

	return helper.JsonOK(c, "Signed in", dto.SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   ttl,
		User:        dto.ToUserResponse(user),
	})
}
