package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioe_backend/internals/features/content/dto"
	"studioe_backend/internals/features/content/model"
	helper "studioe_backend/internals/helpers"
)

// AdminContentController manages the marketing catalog. All routes sit
// behind the admin gate, so handlers do not re-check roles.
type AdminContentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminContentController(db *gorm.DB) *AdminContentController {
	return &AdminContentController{DB: db, Validate: validator.New()}
}

func (ctrl *AdminContentController) parseAndValidate(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		fields := map[string][]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
			}
		}
		return helper.JsonValidationError(c, fields)
	}
	return nil
}

// findByID loads dest by its uuid primary key column, conflating a bad id
// with a missing row.
func (ctrl *AdminContentController) findByID(c *fiber.Ctx, dest any, column, label string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	err = ctrl.DB.Where(column+" = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	if err != nil {
		log.Printf("[ERROR] admin load %s: %v", label, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load "+label)
	}
	return nil
}

func (ctrl *AdminContentController) deleteByID(c *fiber.Ctx, m any, column, label string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	res := ctrl.DB.Where(column+" = ?", id).Delete(m)
	if res.Error != nil {
		log.Printf("[ERROR] admin delete %s: %v", label, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete "+label)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	return helper.JsonDeleted(c, label+" deleted", fiber.Map{"id": id})
}

// listAll is the dashboard view: no published/approved filter.
func listAll[T any](ctrl *AdminContentController, c *fiber.Ctx, order, label string) error {
	var rows []T
	if err := ctrl.DB.Order(order).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] admin list %s: %v", label, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load "+label)
	}
	return helper.JsonOK(c, label+" found", rows)
}

func (ctrl *AdminContentController) ListAllInstructors(c *fiber.Ctx) error {
	return listAll[model.InstructorModel](ctrl, c, "instructor_name ASC", "instructors")
}

func (ctrl *AdminContentController) ListAllClasses(c *fiber.Ctx) error {
	return listAll[model.ClassModel](ctrl, c, "class_weekday ASC, class_start_time ASC", "classes")
}

func (ctrl *AdminContentController) ListAllEvents(c *fiber.Ctx) error {
	return listAll[model.EventModel](ctrl, c, "event_date DESC", "events")
}

func (ctrl *AdminContentController) ListAllTestimonials(c *fiber.Ctx) error {
	return listAll[model.TestimonialModel](ctrl, c, "testimonial_created_at DESC", "testimonials")
}

func (ctrl *AdminContentController) ListAllBlogPosts(c *fiber.Ctx) error {
	return listAll[model.BlogPostModel](ctrl, c, "blog_post_created_at DESC", "blog posts")
}

// ---------- Instructors ----------

func (ctrl *AdminContentController) CreateInstructor(c *fiber.Ctx) error {
	var req dto.InstructorRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row := model.InstructorModel{
		InstructorName:     req.Name,
		InstructorSlug:     helper.GenerateSlug(req.Name),
		InstructorBio:      req.Bio,
		InstructorStyles:   req.Styles,
		InstructorImageURL: req.ImageURL,
		InstructorIsListed: true,
	}
	if req.IsListed != nil {
		row.InstructorIsListed = *req.IsListed
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] instructor create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create instructor")
	}
	return helper.JsonCreated(c, "Instructor created", dto.ToInstructorResponse(row))
}

func (ctrl *AdminContentController) UpdateInstructor(c *fiber.Ctx) error {
	var row model.InstructorModel
	if err := ctrl.findByID(c, &row, "instructor_id", "Instructor"); err != nil {
		return err
	}
	var req dto.InstructorRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row.InstructorName = req.Name
	row.InstructorBio = req.Bio
	row.InstructorStyles = req.Styles
	row.InstructorImageURL = req.ImageURL
	if req.IsListed != nil {
		row.InstructorIsListed = *req.IsListed
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] instructor update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update instructor")
	}
	return helper.JsonUpdated(c, "Instructor updated", dto.ToInstructorResponse(row))
}

func (ctrl *AdminContentController) DeleteInstructor(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.InstructorModel{}, "instructor_id", "Instructor")
}

// ---------- Companies ----------

func (ctrl *AdminContentController) CreateCompany(c *fiber.Ctx) error {
	var req dto.CompanyRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row := model.CompanyModel{
		CompanyName:        req.Name,
		CompanySlug:        helper.GenerateSlug(req.Name),
		CompanyDescription: req.Description,
		CompanyWebsiteURL:  req.WebsiteURL,
		CompanyLogoURL:     req.LogoURL,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] company create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create company")
	}
	return helper.JsonCreated(c, "Company created", dto.ToCompanyResponse(row))
}

func (ctrl *AdminContentController) UpdateCompany(c *fiber.Ctx) error {
	var row model.CompanyModel
	if err := ctrl.findByID(c, &row, "company_id", "Company"); err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row.CompanyName = req.Name
	row.CompanyDescription = req.Description
	row.CompanyWebsiteURL = req.WebsiteURL
	row.CompanyLogoURL = req.LogoURL
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] company update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update company")
	}
	return helper.JsonUpdated(c, "Company updated", dto.ToCompanyResponse(row))
}

func (ctrl *AdminContentController) DeleteCompany(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.CompanyModel{}, "company_id", "Company")
}

// ---------- Classes ----------

func (ctrl *AdminContentController) CreateClass(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row := model.ClassModel{
		ClassTitle:       req.Title,
		ClassSlug:        helper.GenerateSlug(req.Title),
		ClassDescription: req.Description,
		ClassLocation:    req.Location,
		ClassStartTime:   "18:00",
		ClassEndTime:     "19:00",
	}
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid company_id")
		}
		row.ClassCompanyID = &companyID
	}
	if req.Weekday != nil {
		row.ClassWeekday = *req.Weekday
	}
	if req.StartTime != "" {
		row.ClassStartTime = req.StartTime
	}
	if req.EndTime != "" {
		row.ClassEndTime = req.EndTime
	}
	if req.Approved != nil {
		row.ClassApproved = *req.Approved
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] class create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", dto.ToClassResponse(row))
}

func (ctrl *AdminContentController) UpdateClass(c *fiber.Ctx) error {
	var row model.ClassModel
	if err := ctrl.findByID(c, &row, "class_id", "Class"); err != nil {
		return err
	}
	var req dto.ClassRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row.ClassTitle = req.Title
	row.ClassDescription = req.Description
	row.ClassLocation = req.Location
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid company_id")
		}
		row.ClassCompanyID = &companyID
	}
	if req.Weekday != nil {
		row.ClassWeekday = *req.Weekday
	}
	if req.StartTime != "" {
		row.ClassStartTime = req.StartTime
	}
	if req.EndTime != "" {
		row.ClassEndTime = req.EndTime
	}
	if req.Approved != nil {
		row.ClassApproved = *req.Approved
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] class update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonUpdated(c, "Class updated", dto.ToClassResponse(row))
}

func (ctrl *AdminContentController) DeleteClass(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.ClassModel{}, "class_id", "Class")
}

// ---------- Testimonials ----------

func (ctrl *AdminContentController) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row := model.TestimonialModel{
		TestimonialAuthor: req.Author,
		TestimonialQuote:  req.Quote,
	}
	if req.IsPublished != nil {
		row.TestimonialIsPublished = *req.IsPublished
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] testimonial create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create testimonial")
	}
	return helper.JsonCreated(c, "Testimonial created", dto.ToTestimonialResponse(row))
}

func (ctrl *AdminContentController) UpdateTestimonial(c *fiber.Ctx) error {
	var row model.TestimonialModel
	if err := ctrl.findByID(c, &row, "testimonial_id", "Testimonial"); err != nil {
		return err
	}
	var req dto.TestimonialRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row.TestimonialAuthor = req.Author
	row.TestimonialQuote = req.Quote
	if req.IsPublished != nil {
		row.TestimonialIsPublished = *req.IsPublished
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] testimonial update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update testimonial")
	}
	return helper.JsonUpdated(c, "Testimonial updated", dto.ToTestimonialResponse(row))
}

func (ctrl *AdminContentController) DeleteTestimonial(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.TestimonialModel{}, "testimonial_id", "Testimonial")
}

// ---------- Events ----------

func (ctrl *AdminContentController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	row := model.EventModel{
		EventTitle:       req.Title,
		EventSlug:        helper.GenerateSlug(req.Title),
		EventDescription: req.Description,
		EventLocation:    req.Location,
		EventDate:        date,
		EventStartTime:   "19:00",
		EventEndTime:     "21:00",
		EventImageURL:    req.ImageURL,
	}
	if req.DateEnd != nil {
		end, err := time.Parse("2006-01-02", *req.DateEnd)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_end must be YYYY-MM-DD")
		}
		row.EventDateEnd = &end
	}
	if req.StartTime != "" {
		row.EventStartTime = req.StartTime
	}
	if req.EndTime != "" {
		row.EventEndTime = req.EndTime
	}
	if req.Approved != nil {
		row.EventApproved = *req.Approved
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] event create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventResponse(row))
}

func (ctrl *AdminContentController) UpdateEvent(c *fiber.Ctx) error {
	var row model.EventModel
	if err := ctrl.findByID(c, &row, "event_id", "Event"); err != nil {
		return err
	}
	var req dto.EventRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	row.EventTitle = req.Title
	row.EventDescription = req.Description
	row.EventLocation = req.Location
	row.EventDate = date
	if req.DateEnd != nil {
		end, err := time.Parse("2006-01-02", *req.DateEnd)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_end must be YYYY-MM-DD")
		}
		row.EventDateEnd = &end
	} else {
		row.EventDateEnd = nil
	}
	if req.StartTime != "" {
		row.EventStartTime = req.StartTime
	}
	if req.EndTime != "" {
		row.EventEndTime = req.EndTime
	}
	if req.Approved != nil {
		row.EventApproved = *req.Approved
	}
	if req.ImageURL != nil {
		row.EventImageURL = req.ImageURL
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] event update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(row))
}

func (ctrl *AdminContentController) DeleteEvent(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.EventModel{}, "event_id", "Event")
}

// ---------- Blog posts ----------

func (ctrl *AdminContentController) CreateBlogPost(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row := model.BlogPostModel{
		BlogPostTitle:      req.Title,
		BlogPostSlug:       helper.GenerateSlug(req.Title),
		BlogPostExcerpt:    req.Excerpt,
		BlogPostBody:       req.Body,
		BlogPostTags:       req.Tags,
		BlogPostCoverURL:   req.CoverURL,
		BlogPostAuthorName: req.AuthorName,
	}
	if req.IsPublished != nil && *req.IsPublished {
		now := time.Now()
		row.BlogPostIsPublished = true
		row.BlogPostPublishedAt = &now
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] blog create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, "Post created", dto.ToBlogPostResponse(row))
}

func (ctrl *AdminContentController) UpdateBlogPost(c *fiber.Ctx) error {
	var row model.BlogPostModel
	if err := ctrl.findByID(c, &row, "blog_post_id", "Post"); err != nil {
		return err
	}
	var req dto.BlogPostRequest
	if err := ctrl.parseAndValidate(c, &req); err != nil {
		return err
	}

	row.BlogPostTitle = req.Title
	row.BlogPostExcerpt = req.Excerpt
	row.BlogPostBody = req.Body
	row.BlogPostTags = req.Tags
	row.BlogPostCoverURL = req.CoverURL
	row.BlogPostAuthorName = req.AuthorName
	if req.IsPublished != nil {
		// PublishedAt sticks to the first publish, unpublish keeps it.
		if *req.IsPublished && row.BlogPostPublishedAt == nil {
			now := time.Now()
			row.BlogPostPublishedAt = &now
		}
		row.BlogPostIsPublished = *req.IsPublished
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] blog update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
	}
	return helper.JsonUpdated(c, "Post updated", dto.ToBlogPostResponse(row))
}

func (ctrl *AdminContentController) DeleteBlogPost(c *fiber.Ctx) error {
	return ctrl.deleteByID(c, &model.BlogPostModel{}, "blog_post_id", "Post")
}
