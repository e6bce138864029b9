package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	userController "studioe_backend/internals/features/users/controller"
	"studioe_backend/internals/integrations"
	"studioe_backend/internals/middlewares"
	authmw "studioe_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := userController.NewAuthController(db, cfg)

	api.Post("/auth/google", middlewares.AuthRateLimiter(), ctrl.GoogleSignIn)
}

func UserRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, clients *integrations.Clients) {
	ctrl := userController.NewUserController(db, clients.OSS)

	user := api.Group("/user", authmw.AuthMiddleware(db, cfg))
	user.Get("/profile", ctrl.GetProfile)
	user.Get("/account", ctrl.GetAccount)
	user.Patch("/profile", ctrl.UpdateProfile)
	user.Post("/profile-image", ctrl.UploadProfileImage)
}
