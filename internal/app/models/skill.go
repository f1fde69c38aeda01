package models

import "time"

// Skill is a free-text capability a student advertises
type Skill struct {
	ID          int64     `json:"skill_id" db:"skill_id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	DateAdded   time.Time `json:"date_added" db:"date_added"`
}
