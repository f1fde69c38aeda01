package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// kindError is a specific error that also matches the broader kind it belongs to
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Account errors
var (
	ErrAccountNotFound    = newKind(ErrResourceNotFound, "account not found")
	ErrEmailAlreadyExists = newKind(ErrConflict, "email already exists")
)

// Reference data errors
var (
	ErrDepartmentNotFound = newKind(ErrResourceNotFound, "department not found")
	ErrProgramNotFound    = newKind(ErrResourceNotFound, "program of study not found")
	ErrCourseNotFound     = newKind(ErrResourceNotFound, "course not found")
	ErrAdminNotFound      = newKind(ErrResourceNotFound, "admin not found")
	ErrStaffNotFound      = newKind(ErrResourceNotFound, "staff not found")
	ErrInUse              = newKind(ErrConflict, "resource is still referenced and cannot be deleted")
	ErrUnknownReference   = newKind(ErrValidationFailed, "referenced resource does not exist")
)

// Student errors
var (
	ErrStudentNotFound = newKind(ErrResourceNotFound, "student not found")
	ErrNoStudentsFound = newKind(ErrResourceNotFound, "no students found")
)

// Student profile errors
var (
	ErrSkillNotFound         = newKind(ErrResourceNotFound, "skill not found")
	ErrStudentCourseNotFound = newKind(ErrResourceNotFound, "student course not found")
	ErrAlreadyEnrolled       = newKind(ErrConflict, "student is already enrolled in this course")
	ErrAvailabilityNotFound  = newKind(ErrResourceNotFound, "availability not found")
	ErrInvalidTimeRange      = newKind(ErrValidationFailed, "start time must be before end time")
)

// Request and rating errors
var (
	ErrRequestNotFound         = newKind(ErrResourceNotFound, "request not found")
	ErrInvalidStatus           = newKind(ErrValidationFailed, "invalid request status")
	ErrInvalidStatusTransition = newKind(ErrConflict, "request status transition not allowed")
	ErrAvailabilityClaimed     = newKind(ErrConflict, "availability slot has already been claimed")
	ErrTitleRequired           = newKind(ErrValidationFailed, "title is required")
	ErrRatingOutOfRange        = newKind(ErrValidationFailed, "rating must be an integer between 1 and 5")
	ErrRequestNotApproved      = newKind(ErrConflict, "only approved requests can be rated")
	ErrRequestAlreadyRated     = newKind(ErrConflict, "request has already been rated")
	ErrRatingNotFound          = newKind(ErrResourceNotFound, "rating not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input on a named field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewStepError marks err with the step of a multi-step operation where it happened.
// The wrapped error stays reachable through errors.Is / errors.As.
func NewStepError(step string, err error) error {
	var ce *CustomError
	if errors.As(err, &ce) {
		if ce.Details == nil {
			ce.Details = map[string]interface{}{}
		}
		if _, ok := ce.Details["step"]; !ok {
			ce.Details["step"] = step
		}
		return err
	}
	return &CustomError{
		Err:     err,
		Message: err.Error(),
		Details: map[string]interface{}{"step": step},
	}
}

// StepOf returns the failing step recorded on err, if any
func StepOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Details != nil {
		if step, ok := ce.Details["step"].(string); ok {
			return step
		}
	}
	return ""
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
