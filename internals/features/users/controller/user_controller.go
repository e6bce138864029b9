package controller

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/features/users/dto"
	"studioe_backend/internals/features/users/model"
	helper "studioe_backend/internals/helpers"
	"studioe_backend/internals/helpers/storage"
	"studioe_backend/internals/integrations"
)

type UserController struct {
	DB       *gorm.DB
	OSS      *integrations.OSSUploader
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, oss *integrations.OSSUploader) *UserController {
	return &UserController{DB: db, OSS: oss, Validate: validator.New()}
}

func (ctrl *UserController) loadCallerRow(c *fiber.Ctx) (*model.UserModel, *model.UserProfileModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, nil, err
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		// No profile row yet: surface the default student shape.
		profile = model.UserProfileModel{
			UserProfileUserID:      userID,
			UserProfileAccountType: "student",
		}
	}
	return &user, &profile, nil
}

// GET /api/user/profile: the caller's own profile row only.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	user, profile, err := ctrl.loadCallerRow(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] profile load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "Profile found", dto.ToProfileResponse(user, profile))
}

// GET /api/user/account: identity-level account data for the caller.
func (ctrl *UserController) GetAccount(c *fiber.Ctx) error {
	user, _, err := ctrl.loadCallerRow(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] account load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	return helper.JsonOK(c, "Account found", dto.ToUserResponse(user))
}

// PATCH /api/user/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if req.FullName != nil {
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("user_id = ?", userID).
			Update("user_full_name", strings.TrimSpace(*req.FullName)).Error; err != nil {
			log.Printf("[ERROR] name update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
		}
	}

	updates := map[string]interface{}{}
	if req.Phone != nil {
		updates["user_profile_phone"] = *req.Phone
	}
	if req.Bio != nil {
		updates["user_profile_bio"] = *req.Bio
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.UserProfileModel{}).
			Where("user_profile_user_id = ?", userID).
			Updates(updates).Error; err != nil {
			log.Printf("[ERROR] profile update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
		}
	}

	user, profile, err := ctrl.loadCallerRow(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToProfileResponse(user, profile))
}

// POST /api/user/profile-image: multipart upload, re-encoded to webp and
// stored on OSS.
func (ctrl *UserController) UploadProfileImage(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if ctrl.OSS == nil {
		return helper.JsonFeatureUnavailable(c, "Profile image storage")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "image file is required")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only jpeg/png images are accepted")
	}

	raw, err := storage.ReadImageUpload(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	encoded, err := storage.EncodeProfileWebP(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not decode image")
	}

	url, err := ctrl.OSS.UploadProfileImage(userID.String(), ".webp", "image/webp", encoded)
	if err != nil {
		log.Printf("[ERROR] oss upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	if err := ctrl.DB.Model(&model.UserProfileModel{}).
		Where("user_profile_user_id = ?", userID).
		Update("user_profile_image_url", url).Error; err != nil {
		log.Printf("[ERROR] profile image url save: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload saved but profile update failed")
	}

	return helper.JsonUpdated(c, "Profile image updated", fiber.Map{"profile_image_url": url})
}
