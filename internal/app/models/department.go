package models

import "time"

// Department is the top level of the academic hierarchy
type Department struct {
	ID        int64     `json:"department_id" db:"department_id" example:"4"`
	Name      string    `json:"name" db:"name" example:"Computer Science"`
	Details   *string   `json:"details,omitempty" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Program is a program of study offered by exactly one department
type Program struct {
	ID           int64     `json:"program_id" db:"program_id" example:"12"`
	Name         string    `json:"name" db:"name" example:"BSc Information Systems"`
	Details      *string   `json:"details,omitempty" db:"details"`
	DepartmentID int64     `json:"department_id" db:"department_id" example:"4"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
