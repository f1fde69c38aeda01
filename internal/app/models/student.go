package models

import "time"

// Student defines the student model based on the 'student' table.
// AverageRating stays nil until the first rated request and is only written by rating reconciliation.
type Student struct {
	ID                  int64      `json:"student_id" db:"student_id" example:"1"`
	ProgramID           *int64     `json:"program_id" db:"program_id" example:"12"`
	FirstName           string     `json:"first_name" db:"first_name" example:"Sara"`
	LastName            string     `json:"last_name" db:"last_name" example:"Nashbat"`
	Email               string     `json:"email" db:"email" example:"sara@uni.ac.za"`
	PhoneNumber         *string    `json:"phone_number,omitempty" db:"phone_number"`
	PersonalDescription *string    `json:"personal_description,omitempty" db:"personal_description"`
	AverageRating       *float64   `json:"average_rating" db:"average_rating" example:"4.25"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	ActivatedAt         *time.Time `json:"activated_at,omitempty" db:"activated_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// FullName returns "First Last"
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
