package models

import "time"

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance — одна строка на (student, course, date); уникальность
// обеспечена constraint-ом в БД.
type Attendance struct {
	ID         int       `json:"id"`
	StudentID  int       `json:"student_id"`
	CourseID   int       `json:"course_id"`
	LecturerID int       `json:"lecturer_id"`
	SessionID  int       `json:"session_id"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"` // HH:MM:SS
	Status     string    `json:"status"`
	Semester   string    `json:"semester"`
	Level      string    `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// денормализованные поля для выдачи (JOIN-ом), в БД не пишутся
	StudentName string `json:"student_name,omitempty"`
	RegNo       string `json:"reg_no,omitempty"`
	CourseCode  string `json:"course_code,omitempty"`
}
