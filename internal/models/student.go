package models

import "time"

type Student struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	RegNo         string    `json:"reg_no"`
	Level         string    `json:"level"`
	FingerPrint   string    `json:"finger_print"`
	AdmissionYear string    `json:"admission_year"`
	Email         string    `json:"email"`
	CourseIDs     []int     `json:"course_ids"` // many-to-many через student_courses
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
