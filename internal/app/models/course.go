package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"course_id" db:"course_id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description,omitempty" db:"description"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// StudentCourse records a student's enrollment in a course
type StudentCourse struct {
	ID        int64     `json:"student_course_id" db:"student_course_id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
