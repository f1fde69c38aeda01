package dto

import "github.com/yigit/wish2work/internal/app/models"

// CreateStaffRequest creates a staff member. A password also creates the login account.
type CreateStaffRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" binding:"required,email,max=100"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=20"`
	DepartmentID *int64  `json:"department_id" binding:"omitempty,gt=0"`
	Password     string  `json:"password" binding:"omitempty,min=8"`
}

// UpdateStaffRequest updates a staff member's profile
type UpdateStaffRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" binding:"required,email,max=100"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=20"`
	DepartmentID *int64  `json:"department_id" binding:"omitempty,gt=0"`
}

// UpdateStudentRequest updates a student's profile. average_rating is not accepted here.
type UpdateStudentRequest struct {
	FirstName           string  `json:"first_name" binding:"required,max=50"`
	LastName            string  `json:"last_name" binding:"required,max=50"`
	Email               string  `json:"email" binding:"required,email,max=100"`
	ProgramID           *int64  `json:"program_id" binding:"omitempty,gt=0"`
	PhoneNumber         *string `json:"phone_number" binding:"omitempty,max=20"`
	PersonalDescription *string `json:"personal_description"`
}

// StudentListResponse is one page of students
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	PaginationInfo
}

// SearchStudentsQuery holds the department-students search parameters. When
// Query is set the search runs in free-text mode and the discrete fields are ignored.
type SearchStudentsQuery struct {
	Name    string `form:"name"`
	Skill   string `form:"skill"`
	Course  string `form:"course"`
	Program string `form:"program"`
	Query   string `form:"query"`
	Rating  string `form:"rating"`
}
