package dto

// DepartmentRequest is the create/update body for a department
type DepartmentRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Details *string `json:"details"`
}

// ProgramRequest is the create/update body for a program of study
type ProgramRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Details      *string `json:"details"`
	DepartmentID int64   `json:"department_id" binding:"required,gt=0"`
}

// CourseRequest is the create/update body for a course
type CourseRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  *string `json:"description"`
	DepartmentID int64   `json:"department_id" binding:"required,gt=0"`
}

// AdminRequest is the create/update body for an admin
type AdminRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=50"`
	LastName    string  `json:"last_name" binding:"required,max=50"`
	Email       string  `json:"email" binding:"required,email,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
}
