package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/constants"
	lessonController "studioe_backend/internals/features/lessons/controller"
	lessonService "studioe_backend/internals/features/lessons/service"
	"studioe_backend/internals/integrations"
	authmw "studioe_backend/internals/middlewares/auth"
)

func LessonRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, clients *integrations.Clients) {
	mailer := lessonService.NewInvoiceMailer(clients.Sendgrid, clients.EmailFrom)
	ctrl := lessonController.NewLessonController(db, mailer)

	// Role scoping happens inside the handlers; the routes only require a
	// verified identity.
	lessons := api.Group("/lessons", authmw.AuthMiddleware(db, cfg))
	lessons.Get("/", ctrl.ListLessons)
	lessons.Post("/", ctrl.CreateLesson)
	lessons.Get("/:id", ctrl.GetLesson)
	lessons.Patch("/:id", ctrl.UpdateLesson)
	lessons.Put("/:id", ctrl.UpdateLesson)
	lessons.Post("/:id/complete",
		authmw.OnlyRoles("Only instructors can complete lessons", constants.RoleInstructor, constants.RoleAdmin),
		ctrl.CompleteLesson)
	lessons.Delete("/:id", ctrl.DeleteLesson)
}
