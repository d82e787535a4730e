package models

import "time"

const (
	ActivityLogin            = "login"
	ActivityLogout           = "logout"
	ActivityRegister         = "register"
	ActivityAttendanceMarked = "attendance_marked"
	ActivityStudentAdded     = "student_added"
	ActivityCourseAdded      = "course_added"
	ActivityUserApproved     = "user_approved"
	ActivityUserDenied       = "user_denied"
	ActivityPasswordChanged  = "password_changed"
	ActivityEmailVerified    = "email_verified"
)

type Activity struct {
	ID           int64             `json:"id"`
	UserID       *int              `json:"user_id,omitempty"` // NULL для системных событий
	ActivityType string            `json:"activity_type"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata"` // jsonb
	CreatedAt    time.Time         `json:"created_at"`
}
