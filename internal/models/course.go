package models

import "time"

type Course struct {
	ID          int       `json:"id"`
	CourseTitle string    `json:"course_title"`
	CourseCode  string    `json:"course_code"`
	Semester    string    `json:"semester"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
