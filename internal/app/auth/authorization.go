package auth

import (
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// Principal is the authenticated caller, resolved from the access token.
// SubjectID is the id of the admin, staff or student row behind the account.
type Principal struct {
	AccountID int64
	Email     string
	Role      models.RoleType
	SubjectID int64
}

// IsAdmin reports whether the caller is an administrator
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// IsStudent reports whether the caller is the given student
func (p Principal) IsStudent(studentID int64) bool {
	return p.Role == models.RoleStudent && p.SubjectID == studentID
}

// IsStaff reports whether the caller is the given staff member
func (p Principal) IsStaff(staffID int64) bool {
	return p.Role == models.RoleStaff && p.SubjectID == staffID
}

// AuthorizationService decides whether a principal may act on a resource.
// It only looks at identities already loaded by the caller.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// RequireRole allows any of the listed roles
func (s *AuthorizationService) RequireRole(p Principal, roles ...models.RoleType) error {
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return apperrors.NewForbiddenError("this action is not available for your role")
}

// CanManageStudentProfile lets admins and the student themself edit profile data
// (skills, courses, availability, personal details).
func (s *AuthorizationService) CanManageStudentProfile(p Principal, studentID int64) error {
	if p.IsAdmin() || p.IsStudent(studentID) {
		return nil
	}
	return apperrors.NewForbiddenError("you can only manage your own profile")
}

// CanManageStaffProfile lets admins and the staff member themself edit staff data
func (s *AuthorizationService) CanManageStaffProfile(p Principal, staffID int64) error {
	if p.IsAdmin() || p.IsStaff(staffID) {
		return nil
	}
	return apperrors.NewForbiddenError("you can only manage your own profile")
}

// CanViewRequest allows the two parties of a request and admins
func (s *AuthorizationService) CanViewRequest(p Principal, req *models.Request) error {
	if p.IsAdmin() || p.IsStudent(req.StudentID) || p.IsStaff(req.StaffID) {
		return nil
	}
	return apperrors.NewForbiddenError("you are not a party to this request")
}

// CanRespondToRequest allows only the requested student to approve or disapprove
func (s *AuthorizationService) CanRespondToRequest(p Principal, req *models.Request) error {
	if p.IsStudent(req.StudentID) {
		return nil
	}
	return apperrors.NewForbiddenError("only the requested student can respond to this request")
}

// CanModifyRequest allows the requesting staff member and admins
func (s *AuthorizationService) CanModifyRequest(p Principal, req *models.Request) error {
	if p.IsAdmin() || p.IsStaff(req.StaffID) {
		return nil
	}
	return apperrors.NewForbiddenError("only the requesting staff member can change this request")
}

// CanRateRequest allows only the requesting staff member
func (s *AuthorizationService) CanRateRequest(p Principal, req *models.Request) error {
	if p.IsStaff(req.StaffID) {
		return nil
	}
	return apperrors.NewForbiddenError("only the requesting staff member can rate this request")
}
