package dto

// CreateRequestRequest is the legacy direct create. Status is accepted for
// compatibility and always replaced by Pending; the staff id comes from the token.
type CreateRequestRequest struct {
	StudentID        int64   `json:"student_id" binding:"required,gt=0"`
	Title            string  `json:"title" binding:"required,notblank,max=100"`
	Message          *string `json:"message"`
	AvailabilityDate string  `json:"availability_date" binding:"required,datetime=2006-01-02"`
	StartTime        string  `json:"start_time" binding:"required,clock"`
	EndTime          string  `json:"end_time" binding:"required,clock"`
	Status           string  `json:"status"`
}

// UpdateRequestRequest edits the descriptive fields of a request
type UpdateRequestRequest struct {
	Title   string  `json:"title" binding:"required,notblank,max=100"`
	Message *string `json:"message"`
}

// UpdateRequestStatusRequest moves a pending request to a terminal state
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Disapproved"`
}

// FromAvailabilityRequest claims an availability slot
type FromAvailabilityRequest struct {
	AvailabilityID int64   `json:"availability_id" binding:"required,gt=0"`
	Title          string  `json:"title" binding:"required,notblank,max=100"`
	Message        *string `json:"message"`
}

// CompleteWithRatingRequest rates an approved request. The range check happens
// in the service so out-of-range values get a dedicated error.
type CompleteWithRatingRequest struct {
	Rating   *int    `json:"rating" binding:"required"`
	Feedback *string `json:"feedback"`
}

// CreateRatingRequest is the ledger-style rating call; it rates RequestID.
type CreateRatingRequest struct {
	RequestID   int64   `json:"request_id" binding:"required,gt=0"`
	RatingValue *int    `json:"rating_value" binding:"required"`
	Feedback    *string `json:"feedback"`
}

// RatingResult is returned after a successful rating
type RatingResult struct {
	RequestID     int64   `json:"request_id"`
	StudentID     int64   `json:"student_id"`
	Rating        int     `json:"rating"`
	AverageRating float64 `json:"average_rating"`
	RatedCount    int     `json:"rated_count"`
}

// RecomputeRatingResponse reports a rebuilt average. AverageRating is null
// when the student has no rated requests.
type RecomputeRatingResponse struct {
	StudentID     int64    `json:"student_id"`
	AverageRating *float64 `json:"average_rating"`
	RatedCount    int      `json:"rated_count"`
}
