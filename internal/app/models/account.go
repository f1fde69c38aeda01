package models

import "time"

// Account holds login credentials. SubjectID points at the admin, staff or
// student row named by Role.
type Account struct {
	ID           int64     `json:"account_id" db:"account_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         RoleType  `json:"role" db:"role"`
	SubjectID    int64     `json:"subject_id" db:"subject_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
