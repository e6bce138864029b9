package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	contentController "studioe_backend/internals/features/content/controller"
	"studioe_backend/internals/integrations"
)

func PublicContentRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := contentController.NewPublicContentController(db)
	sitemap := contentController.NewSitemapController(db, cfg.AppBaseURL)

	api.Get("/instructors", ctrl.ListInstructors)
	api.Get("/instructors/:slug", ctrl.GetInstructor)
	api.Get("/classes", ctrl.ListClasses)
	api.Get("/companies", ctrl.ListCompanies)
	api.Get("/testimonials", ctrl.ListTestimonials)
	api.Get("/events", ctrl.ListEvents)
	api.Get("/events/:slug", ctrl.GetEvent)
	api.Get("/blog", ctrl.ListBlogPosts)
	api.Get("/blog/:slug", ctrl.GetBlogPost)
	api.Get("/sitemap", sitemap.GetSitemap)
}

func AdminContentRoutes(admin fiber.Router, db *gorm.DB, clients *integrations.Clients) {
	ctrl := contentController.NewAdminContentController(db)
	media := contentController.NewMediaController(clients.S3)

	admin.Post("/media", media.UploadMedia)

	admin.Get("/instructors", ctrl.ListAllInstructors)
	admin.Get("/classes", ctrl.ListAllClasses)
	admin.Get("/events", ctrl.ListAllEvents)
	admin.Get("/testimonials", ctrl.ListAllTestimonials)
	admin.Get("/blog", ctrl.ListAllBlogPosts)

	admin.Post("/instructors", ctrl.CreateInstructor)
	admin.Put("/instructors/:id", ctrl.UpdateInstructor)
	admin.Delete("/instructors/:id", ctrl.DeleteInstructor)

	admin.Post("/companies", ctrl.CreateCompany)
	admin.Put("/companies/:id", ctrl.UpdateCompany)
	admin.Delete("/companies/:id", ctrl.DeleteCompany)

	admin.Post("/classes", ctrl.CreateClass)
	admin.Put("/classes/:id", ctrl.UpdateClass)
	admin.Delete("/classes/:id", ctrl.DeleteClass)

	admin.Post("/testimonials", ctrl.CreateTestimonial)
	admin.Put("/testimonials/:id", ctrl.UpdateTestimonial)
	admin.Delete("/testimonials/:id", ctrl.DeleteTestimonial)

	admin.Post("/events", ctrl.CreateEvent)
	admin.Put("/events/:id", ctrl.UpdateEvent)
	admin.Delete("/events/:id", ctrl.DeleteEvent)

	admin.Post("/blog", ctrl.CreateBlogPost)
	admin.Put("/blog/:id", ctrl.UpdateBlogPost)
	admin.Delete("/blog/:id", ctrl.DeleteBlogPost)
}

func RsvpRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := contentController.NewRsvpController(db)

	protected.Post("/events/:id/rsvp", ctrl.CreateRsvp)
	protected.Delete("/events/:id/rsvp", ctrl.DeleteRsvp)
	protected.Get("/rsvps", ctrl.ListMyRsvps)
}
