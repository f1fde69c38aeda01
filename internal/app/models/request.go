package models

import (
	"fmt"
	"time"
)

// RequestStatus is the workflow state of a request
type RequestStatus string

const (
	RequestPending     RequestStatus = "Pending"
	RequestApproved    RequestStatus = "Approved"
	RequestDisapproved RequestStatus = "Disapproved"
)

// ParseRequestStatus accepts only the three known statuses, matched exactly.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case RequestPending, RequestApproved, RequestDisapproved:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// IsTerminal reports whether no further transition is possible
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestDisapproved
}

// CanTransitionTo allows Pending -> Approved and Pending -> Disapproved only.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == RequestPending && next.IsTerminal()
}

// Request is a staff member's claim on a student's time window. Rating and
// Feedback are set at most once, after approval, and are the only stored copy
// of the rating.
type Request struct {
	ID               int64         `json:"request_id" db:"request_id"`
	StaffID          int64         `json:"staff_id" db:"staff_id"`
	StudentID        int64         `json:"student_id" db:"student_id"`
	Title            string        `json:"title" db:"title"`
	Message          *string       `json:"message,omitempty" db:"message"`
	AvailabilityDate string        `json:"availability_date" db:"availability_date"`
	StartTime        string        `json:"start_time" db:"start_time"`
	EndTime          string        `json:"end_time" db:"end_time"`
	Status           RequestStatus `json:"status" db:"status"`
	Rating           *int          `json:"rating,omitempty" db:"rating"`
	Feedback         *string       `json:"feedback,omitempty" db:"feedback"`
	RatedAt          *time.Time    `json:"rated_at,omitempty" db:"rated_at"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// IsRated reports whether the request already carries a rating
func (r *Request) IsRated() bool {
	return r.Rating != nil
}

// RatingEntry is a ledger view over a rated request
type RatingEntry struct {
	ID          int64     `json:"rating_id"`
	RequestID   int64     `json:"request_id"`
	StudentID   int64     `json:"student_id"`
	StaffID     int64     `json:"staff_id"`
	RatingValue int       `json:"rating_value"`
	Feedback    *string   `json:"feedback,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LedgerEntry projects a rated request into a ledger entry. ok is false for unrated requests.
func (r *Request) LedgerEntry() (entry RatingEntry, ok bool) {
	if r.Rating == nil {
		return RatingEntry{}, false
	}
	entry = RatingEntry{
		ID:          r.ID,
		RequestID:   r.ID,
		StudentID:   r.StudentID,
		StaffID:     r.StaffID,
		RatingValue: *r.Rating,
		Feedback:    r.Feedback,
	}
	if r.RatedAt != nil {
		entry.CreatedAt = *r.RatedAt
	}
	return entry, true
}
