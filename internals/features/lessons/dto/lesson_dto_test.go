package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	full := LessonCreateRequest{
		StudentName:    "Ana",
		InstructorName: "Luis",
		LessonStart:    &start,
		InvoicedDate:   "2025-01-01",
	}
	assert.Empty(t, full.MissingFields())

	empty := LessonCreateRequest{}
	assert.ElementsMatch(t,
		[]string{"student_name", "instructor_name", "lesson_start", "invoiced_date"},
		empty.MissingFields())

	partial := LessonCreateRequest{StudentName: "Ana", InvoicedDate: "2025-01-01"}
	assert.ElementsMatch(t,
		[]string{"instructor_name", "lesson_start"},
		partial.MissingFields())
}
