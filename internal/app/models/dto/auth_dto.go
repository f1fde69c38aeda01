package dto

import "github.com/yigit/wish2work/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterStudentRequest is a student self-registration
type RegisterStudentRequest struct {
	Email               string  `json:"email" binding:"required,email,max=100"`
	Password            string  `json:"password" binding:"required,min=8"`
	FirstName           string  `json:"first_name" binding:"required,max=50"`
	LastName            string  `json:"last_name" binding:"required,max=50"`
	ProgramID           *int64  `json:"program_id" binding:"omitempty,gt=0"`
	PhoneNumber         *string `json:"phone_number" binding:"omitempty,max=20"`
	PersonalDescription *string `json:"personal_description"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token   TokenResponse `json:"token"`
	Account AccountInfo   `json:"account"`
}

// AccountInfo identifies the caller
type AccountInfo struct {
	AccountID int64           `json:"account_id"`
	Email     string          `json:"email"`
	Role      models.RoleType `json:"role" enums:"ADMIN,STAFF,STUDENT"`
	SubjectID int64           `json:"subject_id"`
}

// NewAccountInfo converts an account into its public view
func NewAccountInfo(a *models.Account) AccountInfo {
	return AccountInfo{
		AccountID: a.ID,
		Email:     a.Email,
		Role:      a.Role,
		SubjectID: a.SubjectID,
	}
}
