package models

import "time"

// Staff is a university staff member who claims student availability
type Staff struct {
	ID           int64      `json:"staff_id" db:"staff_id"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Email        string     `json:"email" db:"email"`
	PhoneNumber  *string    `json:"phone_number,omitempty" db:"phone_number"`
	DepartmentID *int64     `json:"department_id" db:"department_id"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty" db:"activated_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Admin manages reference data and staff accounts
type Admin struct {
	ID          int64     `json:"admin_id" db:"admin_id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber *string   `json:"phone_number,omitempty" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
