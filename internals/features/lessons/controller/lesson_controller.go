package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioe_backend/internals/constants"
	"studioe_backend/internals/features/lessons/dto"
	"studioe_backend/internals/features/lessons/model"
	"studioe_backend/internals/features/lessons/service"
	helper "studioe_backend/internals/helpers"
)

type LessonController struct {
	DB     *gorm.DB
	Mailer *service.InvoiceMailer
}

func NewLessonController(db *gorm.DB, mailer *service.InvoiceMailer) *LessonController {
	return &LessonController{DB: db, Mailer: mailer}
}

// POST /api/lessons
// New rows are always pending regardless of caller input.
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		fieldErrors := map[string][]string{}
		for _, f := range missing {
			fieldErrors[f] = []string{"required"}
		}
		return helper.JsonValidationError(c, fieldErrors)
	}

	invoiced, err := time.Parse("2006-01-02", req.InvoicedDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoiced_date must be YYYY-MM-DD")
	}

	lesson := model.LessonModel{
		LessonStudentID:         req.StudentID,
		LessonStudentName:       req.StudentName,
		LessonInstructorName:    req.InstructorName,
		LessonStart:             *req.LessonStart,
		LessonInvoicedDate:      invoiced,
		LessonInstructorPayRate: req.PayRate,
		LessonNumHours:          req.NumHours,
		LessonInvoiceNotes:      req.InvoiceNotes,
		LessonHomeworkNotes:     req.HomeworkNotes,
		LessonStatus:            constants.LessonStatusPending,
	}
	if helper.GetUserRole(c) == constants.RoleInstructor {
		lesson.LessonInstructorID = &callerID
	}
	if pay, ok := service.DerivePay(0, 0, &req.PayRate, &req.NumHours, nil); ok {
		lesson.LessonInstructorPay = pay
	}

	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		log.Printf("[ERROR] lesson create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save lesson")
	}
	return helper.JsonCreated(c, "Lesson created", dto.ToLessonResponse(&lesson))
}

// GET /api/lessons
// The caller's role imposes an implicit row filter; unknown roles get 403.
func (ctrl *LessonController) ListLessons(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	scope, ok := service.LessonScopeFilter(helper.GetUserRole(c), callerID)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	q := ctrl.DB.Model(&model.LessonModel{})
	if !scope.All {
		q = q.Where(scope.Column+" = ?", scope.Value)
	}
	if status := c.Query("status"); status != "" {
		if !constants.IsValidLessonStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("lesson_status = ?", status)
	}
	if sid := c.Query("student_id"); sid != "" {
		parsed, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("lesson_student_id = ?", parsed)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		q = q.Where("lesson_start >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		q = q.Where("lesson_start < ?", t.AddDate(0, 0, 1))
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] lesson count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
	}

	var lessons []model.LessonModel
	if err := q.Order("lesson_start DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&lessons).Error; err != nil {
		log.Printf("[ERROR] lesson list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
	}

	return helper.JsonList(c, "Lessons found", dto.ToLessonResponseList(lessons), helper.BuildPagination(total, paging))
}

// GET /api/lessons/:id
// Not-found and not-permitted both answer 404 so row existence never leaks.
func (ctrl *LessonController) GetLesson(c *fiber.Ctx) error {
	lesson, status, msg := ctrl.findScoped(c)
	if lesson == nil {
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "Lesson found", dto.ToLessonResponse(lesson))
}

// findScoped fetches one lesson with the caller's role filter applied in the
// query itself, returning (nil, status, message) on any miss.
func (ctrl *LessonController) findScoped(c *fiber.Ctx) (*model.LessonModel, int, string) {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, fiber.StatusUnauthorized, "Unauthorized"
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.StatusNotFound, "Lesson not found"
	}
	scope, ok := service.LessonScopeFilter(helper.GetUserRole(c), callerID)
	if !ok {
		return nil, fiber.StatusNotFound, "Lesson not found"
	}

	q := ctrl.DB.Where("lesson_id = ?", id)
	if !scope.All {
		q = q.Where(scope.Column+" = ?", scope.Value)
	}
	var lesson model.LessonModel
	if err := q.First(&lesson).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] lesson fetch: %v", err)
			return nil, fiber.StatusInternalServerError, "Failed to load lesson"
		}
		return nil, fiber.StatusNotFound, "Lesson not found"
	}
	return &lesson, fiber.StatusOK, ""
}

// PATCH /api/lessons/:id (PUT accepted as an alias)
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	var lesson model.LessonModel
	if err := ctrl.DB.Where("lesson_id = ?", id).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		log.Printf("[ERROR] lesson fetch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}
	if !service.CanModify(helper.GetUserRole(c), callerID, lesson.LessonInstructorID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the lesson's instructor or an admin may update it")
	}

	var req dto.LessonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["lesson_student_name"] = *req.StudentName
	}
	if req.InstructorName != nil {
		updates["lesson_instructor_name"] = *req.InstructorName
	}
	if req.LessonStart != nil {
		updates["lesson_start"] = *req.LessonStart
	}
	if req.InvoicedDate != nil {
		t, err := time.Parse("2006-01-02", *req.InvoicedDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invoiced_date must be YYYY-MM-DD")
		}
		updates["lesson_invoiced_date"] = t
	}
	if req.PayRate != nil {
		updates["lesson_instructor_pay_rate"] = *req.PayRate
	}
	if req.NumHours != nil {
		updates["lesson_num_hours"] = *req.NumHours
	}
	if req.InvoiceNotes != nil {
		updates["lesson_invoice_notes"] = *req.InvoiceNotes
	}
	if req.HomeworkNotes != nil {
		updates["lesson_homework_notes"] = *req.HomeworkNotes
	}

	// Pay derivation: recompute from rate x hours when either changes and the
	// payload does not supply pay itself.
	if pay, ok := service.DerivePay(
		lesson.LessonInstructorPayRate, lesson.LessonNumHours,
		req.PayRate, req.NumHours, req.InstructorPay,
	); ok {
		updates["lesson_instructor_pay"] = pay
	} else if req.InstructorPay != nil {
		updates["lesson_instructor_pay"] = *req.InstructorPay
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&lesson).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] lesson update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}
	if err := ctrl.DB.Where("lesson_id = ?", id).First(&lesson).Error; err != nil {
		log.Printf("[ERROR] lesson reload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload lesson")
	}
	return helper.JsonUpdated(c, "Lesson updated", dto.ToLessonResponse(&lesson))
}

// POST /api/lessons/:id/complete
// The one exposed status transition: pending -> completed.
func (ctrl *LessonController) CompleteLesson(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	var lesson model.LessonModel
	if err := ctrl.DB.Where("lesson_id = ?", id).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		log.Printf("[ERROR] lesson fetch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}
	if !service.CanModify(helper.GetUserRole(c), callerID, lesson.LessonInstructorID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the lesson's instructor or an admin may complete it")
	}
	if lesson.LessonStatus != constants.LessonStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Lesson is not pending")
	}

	if err := ctrl.DB.Model(&lesson).
		Update("lesson_status", constants.LessonStatusCompleted).Error; err != nil {
		log.Printf("[ERROR] lesson complete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete lesson")
	}
	lesson.LessonStatus = constants.LessonStatusCompleted

	if ctrl.Mailer != nil && lesson.LessonStudentID != nil {
		var studentEmail string
		if err := ctrl.DB.Table("users").
			Select("user_email").
			Where("user_id = ?", *lesson.LessonStudentID).
			Scan(&studentEmail).Error; err == nil {
			ctrl.Mailer.SendInvoiceNotice(&lesson, studentEmail)
		}
	}
	return helper.JsonUpdated(c, "Lesson completed", dto.ToLessonResponse(&lesson))
}

// DELETE /api/lessons/:id: admin only, enforced again here in case the route
// is ever registered without the role middleware.
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	if helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may delete lessons")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	res := ctrl.DB.Where("lesson_id = ?", id).Delete(&model.LessonModel{})
	if res.Error != nil {
		log.Printf("[ERROR] lesson delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"lesson_id": id})
}
