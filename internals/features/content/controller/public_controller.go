package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/features/content/dto"
	"studioe_backend/internals/features/content/model"
	helper "studioe_backend/internals/helpers"
)

// PublicContentController serves the marketing site: only listed, approved,
// or published rows ever leave these handlers.
type PublicContentController struct {
	DB *gorm.DB
}

func NewPublicContentController(db *gorm.DB) *PublicContentController {
	return &PublicContentController{DB: db}
}

// GET /api/instructors
func (ctrl *PublicContentController) ListInstructors(c *fiber.Ctx) error {
	var rows []model.InstructorModel
	if err := ctrl.DB.
		Where("instructor_is_listed = ?", true).
		Order("instructor_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] instructors list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load instructors")
	}

	out := make([]dto.InstructorResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToInstructorResponse(m))
	}
	return helper.JsonOK(c, "Instructors found", out)
}

// GET /api/instructors/:slug
func (ctrl *PublicContentController) GetInstructor(c *fiber.Ctx) error {
	var row model.InstructorModel
	err := ctrl.DB.
		Where("instructor_slug = ? AND instructor_is_listed = ?", c.Params("slug"), true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found")
	}
	if err != nil {
		log.Printf("[ERROR] instructor get: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load instructor")
	}
	return helper.JsonOK(c, "Instructor found", dto.ToInstructorResponse(row))
}

// GET /api/classes: grouped by weekday then start time for the schedule page.
func (ctrl *PublicContentController) ListClasses(c *fiber.Ctx) error {
	var rows []model.ClassModel
	if err := ctrl.DB.
		Preload("Company").
		Where("class_approved = ?", true).
		Order("class_weekday ASC, class_start_time ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] classes list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}

	out := make([]dto.ClassResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassResponse(m))
	}
	return helper.JsonOK(c, "Classes found", out)
}

// GET /api/companies
func (ctrl *PublicContentController) ListCompanies(c *fiber.Ctx) error {
	var rows []model.CompanyModel
	if err := ctrl.DB.Order("company_name ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] companies list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load companies")
	}

	out := make([]dto.CompanyResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToCompanyResponse(m))
	}
	return helper.JsonOK(c, "Companies found", out)
}

// GET /api/testimonials
func (ctrl *PublicContentController) ListTestimonials(c *fiber.Ctx) error {
	var rows []model.TestimonialModel
	if err := ctrl.DB.
		Where("testimonial_is_published = ?", true).
		Order("testimonial_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] testimonials list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load testimonials")
	}

	out := make([]dto.TestimonialResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToTestimonialResponse(m))
	}
	return helper.JsonOK(c, "Testimonials found", out)
}

// GET /api/events: upcoming approved events, soonest first.
func (ctrl *PublicContentController) ListEvents(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var rows []model.EventModel
	q := ctrl.DB.Where("event_approved = ?", true)
	if c.Query("include_past") != "true" {
		q = q.Where("event_date >= ? OR event_date_end >= ?", today, today)
	}
	if err := q.Order("event_date ASC, event_start_time ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] events list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	out := make([]dto.EventResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToEventResponse(m))
	}
	return helper.JsonOK(c, "Events found", out)
}

// GET /api/events/:slug
func (ctrl *PublicContentController) GetEvent(c *fiber.Ctx) error {
	var row model.EventModel
	err := ctrl.DB.
		Where("event_slug = ? AND event_approved = ?", c.Params("slug"), true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		log.Printf("[ERROR] event get: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helper.JsonOK(c, "Event found", dto.ToEventResponse(row))
}

// GET /api/blog: published posts, newest first, paginated.
func (ctrl *PublicContentController) ListBlogPosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	base := ctrl.DB.Model(&model.BlogPostModel{}).
		Where("blog_post_is_published = ?", true)
	if tag := c.Query("tag"); tag != "" {
		base = base.Where("? = ANY(blog_post_tags)", tag)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] blog count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load posts")
	}

	var rows []model.BlogPostModel
	if err := base.
		Order("blog_post_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] blog list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load posts")
	}

	out := make([]dto.BlogPostResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToBlogPostSummary(m))
	}
	return helper.JsonList(c, "Posts found", out, helper.BuildPagination(total, paging))
}

// GET /api/blog/:slug
func (ctrl *PublicContentController) GetBlogPost(c *fiber.Ctx) error {
	var row model.BlogPostModel
	err := ctrl.DB.
		Where("blog_post_slug = ? AND blog_post_is_published = ?", c.Params("slug"), true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		log.Printf("[ERROR] blog get: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}
	return helper.JsonOK(c, "Post found", dto.ToBlogPostResponse(row))
}
