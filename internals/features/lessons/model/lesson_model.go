package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonModel struct {
	LessonID                uuid.UUID  `gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_id"`
	LessonStudentID         *uuid.UUID `gorm:"column:lesson_student_id;type:uuid;index:idx_lessons_student" json:"lesson_student_id,omitempty"`
	LessonInstructorID      *uuid.UUID `gorm:"column:lesson_instructor_id;type:uuid;index:idx_lessons_instructor" json:"lesson_instructor_id,omitempty"`
	LessonStudentName       string     `gorm:"column:lesson_student_name;size:255;not null" json:"lesson_student_name"`
	LessonInstructorName    string     `gorm:"column:lesson_instructor_name;size:255;not null" json:"lesson_instructor_name"`
	LessonStart             time.Time  `gorm:"column:lesson_start;not null" json:"lesson_start"`
	LessonInvoicedDate      time.Time  `gorm:"column:lesson_invoiced_date;type:date;not null" json:"lesson_invoiced_date"`
	LessonInstructorPayRate float64    `gorm:"column:lesson_instructor_pay_rate;type:numeric(10,2);not null;default:0" json:"lesson_instructor_pay_rate"`
	LessonNumHours          float64    `gorm:"column:lesson_num_hours;type:numeric(6,2);not null;default:0" json:"lesson_num_hours"`
	LessonInstructorPay     float64    `gorm:"column:lesson_instructor_pay;type:numeric(10,2);not null;default:0" json:"lesson_instructor_pay"`
	LessonInvoiceNotes      *string    `gorm:"column:lesson_invoice_notes;type:text" json:"lesson_invoice_notes,omitempty"`
	LessonHomeworkNotes     *string    `gorm:"column:lesson_homework_notes;type:text" json:"lesson_homework_notes,omitempty"`
	LessonStatus            string     `gorm:"column:lesson_status;type:varchar(20);not null;default:'pending'" json:"lesson_status"`
	LessonCreatedAt         time.Time  `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt         time.Time  `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
