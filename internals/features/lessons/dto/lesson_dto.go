package dto

import (
	"time"

	"github.com/google/uuid"

	"studioe_backend/internals/features/lessons/model"
)

type LessonCreateRequest struct {
	StudentName    string     `json:"student_name"`
	InstructorName string     `json:"instructor_name"`
	LessonStart    *time.Time `json:"lesson_start"`
	InvoicedDate   string     `json:"invoiced_date"` // YYYY-MM-DD
	StudentID      *uuid.UUID `json:"student_id,omitempty"`
	PayRate        float64    `json:"instructor_pay_rate"`
	NumHours       float64    `json:"num_hours"`
	InvoiceNotes   *string    `json:"invoice_notes,omitempty"`
	HomeworkNotes  *string    `json:"homework_notes,omitempty"`
}

// MissingFields returns the names of required fields absent from the payload.
func (r *LessonCreateRequest) MissingFields() []string {
	var missing []string
	if r.StudentName == "" {
		missing = append(missing, "student_name")
	}
	if r.InstructorName == "" {
		missing = append(missing, "instructor_name")
	}
	if r.LessonStart == nil {
		missing = append(missing, "lesson_start")
	}
	if r.InvoicedDate == "" {
		missing = append(missing, "invoiced_date")
	}
	return missing
}

// LessonUpdateRequest uses pointers so "absent" and "zero" stay distinct;
// the pay derivation rule depends on that distinction.
type LessonUpdateRequest struct {
	StudentName    *string    `json:"student_name,omitempty"`
	InstructorName *string    `json:"instructor_name,omitempty"`
	LessonStart    *time.Time `json:"lesson_start,omitempty"`
	InvoicedDate   *string    `json:"invoiced_date,omitempty"`
	PayRate        *float64   `json:"instructor_pay_rate,omitempty"`
	NumHours       *float64   `json:"num_hours,omitempty"`
	InstructorPay  *float64   `json:"instructor_pay,omitempty"`
	InvoiceNotes   *string    `json:"invoice_notes,omitempty"`
	HomeworkNotes  *string    `json:"homework_notes,omitempty"`
}

type LessonResponse struct {
	LessonID       uuid.UUID  `json:"lesson_id"`
	StudentID      *uuid.UUID `json:"student_id,omitempty"`
	InstructorID   *uuid.UUID `json:"instructor_id,omitempty"`
	StudentName    string     `json:"student_name"`
	InstructorName string     `json:"instructor_name"`
	LessonStart    time.Time  `json:"lesson_start"`
	InvoicedDate   string     `json:"invoiced_date"`
	PayRate        float64    `json:"instructor_pay_rate"`
	NumHours       float64    `json:"num_hours"`
	InstructorPay  float64    `json:"instructor_pay"`
	InvoiceNotes   *string    `json:"invoice_notes,omitempty"`
	HomeworkNotes  *string    `json:"homework_notes,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToLessonResponse(m *model.LessonModel) *LessonResponse {
	return &LessonResponse{
		LessonID:       m.LessonID,
		StudentID:      m.LessonStudentID,
		InstructorID:   m.LessonInstructorID,
		StudentName:    m.LessonStudentName,
		InstructorName: m.LessonInstructorName,
		LessonStart:    m.LessonStart,
		InvoicedDate:   m.LessonInvoicedDate.Format("2006-01-02"),
		PayRate:        m.LessonInstructorPayRate,
		NumHours:       m.LessonNumHours,
		InstructorPay:  m.LessonInstructorPay,
		InvoiceNotes:   m.LessonInvoiceNotes,
		HomeworkNotes:  m.LessonHomeworkNotes,
		Status:         m.LessonStatus,
		CreatedAt:      m.LessonCreatedAt,
	}
}

func ToLessonResponseList(models []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToLessonResponse(&models[i]))
	}
	return out
}
