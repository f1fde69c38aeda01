package models

import (
	"errors"
	"time"
)

// Date and clock layouts used on the wire and in SQL to_char formatting
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate  = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidClock = errors.New("time must use the HH:MM format")
	ErrEmptyWindow  = errors.New("start time must be before end time")
)

// Availability is an open time window a student offers on one date
type Availability struct {
	ID               int64     `json:"availability_id" db:"availability_id"`
	StudentID        int64     `json:"student_id" db:"student_id"`
	AvailabilityDate string    `json:"availability_date" db:"availability_date" example:"2024-09-16"`
	StartTime        string    `json:"start_time" db:"start_time" example:"09:00"`
	EndTime          string    `json:"end_time" db:"end_time" example:"11:30"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// TimeWindow is the date and start/end clock values shared by availability and requests
type TimeWindow struct {
	Date  string
	Start string
	End   string
}

// Window returns the slot's time window
func (a *Availability) Window() TimeWindow {
	return TimeWindow{Date: a.AvailabilityDate, Start: a.StartTime, End: a.EndTime}
}

// Validate checks the date and clock formats and that the window is not empty.
func (w TimeWindow) Validate() error {
	if _, err := time.Parse(DateLayout, w.Date); err != nil {
		return ErrInvalidDate
	}
	start, err := time.Parse(ClockLayout, w.Start)
	if err != nil {
		return ErrInvalidClock
	}
	end, err := time.Parse(ClockLayout, w.End)
	if err != nil {
		return ErrInvalidClock
	}
	if !start.Before(end) {
		return ErrEmptyWindow
	}
	return nil
}
