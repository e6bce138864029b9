package service

import (
	"math"

	"github.com/google/uuid"

	"studioe_backend/internals/constants"
)

// DerivePay applies the invoicing rule shared by the create and update paths:
// instructor_pay = rate x hours, unless the payload supplies pay explicitly.
// newRate/newHours/explicitPay are nil when absent from the payload; the
// stored values fill in whichever factor did not change.
func DerivePay(storedRate, storedHours float64, newRate, newHours, explicitPay *float64) (pay float64, derived bool) {
	if explicitPay != nil {
		return *explicitPay, false
	}
	if newRate == nil && newHours == nil {
		return 0, false
	}
	rate := storedRate
	if newRate != nil {
		rate = *newRate
	}
	hours := storedHours
	if newHours != nil {
		hours = *newHours
	}
	return round2(rate * hours), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ScopeFilter captures the implicit row filter a caller's role imposes on
// lesson queries. Admins see everything; unknown roles see nothing.
type ScopeFilter struct {
	Column string
	Value  uuid.UUID
	All    bool
}

func LessonScopeFilter(role string, callerID uuid.UUID) (ScopeFilter, bool) {
	switch role {
	case constants.RoleAdmin:
		return ScopeFilter{All: true}, true
	case constants.RoleInstructor:
		return ScopeFilter{Column: "lesson_instructor_id", Value: callerID}, true
	case constants.RoleStudent:
		return ScopeFilter{Column: "lesson_student_id", Value: callerID}, true
	}
	return ScopeFilter{}, false
}

// CanModify reports whether the caller may update or complete the lesson:
// its own instructor, or an admin.
func CanModify(role string, callerID uuid.UUID, instructorID *uuid.UUID) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if role != constants.RoleInstructor || instructorID == nil {
		return false
	}
	return *instructorID == callerID
}
