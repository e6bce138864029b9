package constants

// Account types stored on user_profiles.user_profile_account_type.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Lesson lifecycle.
const (
	LessonStatusPending   = "pending"
	LessonStatusCompleted = "completed"
	LessonStatusCancelled = "cancelled"
)

// Payment session / payment lifecycle.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

func IsValidLessonStatus(s string) bool {
	switch s {
	case LessonStatusPending, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}
