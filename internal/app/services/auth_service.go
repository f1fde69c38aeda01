package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	stores     Stores
	tx         Transactor
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(stores Stores, tx Transactor, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		stores:     stores,
		tx:         tx,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.stores.Accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			s.logger.Warn().Str("email", email).Msg("Login attempt for unknown account")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding account: %w", err)
	}

	if err := auth.VerifyPassword(account.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, err
		}
		s.logger.Warn().Int64("accountID", account.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkActive(ctx, account); err != nil {
		return nil, err
	}

	return s.issue(account)
}

// checkActive rejects logins of deactivated staff members and students
func (s *AuthService) checkActive(ctx context.Context, account *models.Account) error {
	active := true
	switch account.Role {
	case models.RoleStaff:
		staff, err := s.stores.Staff.GetByID(ctx, account.SubjectID)
		if err != nil {
			return err
		}
		active = staff.IsActive
	case models.RoleStudent:
		student, err := s.stores.Students.GetByID(ctx, account.SubjectID)
		if err != nil {
			return err
		}
		active = student.IsActive
	}
	if !active {
		return apperrors.ErrAccountDisabled
	}
	return nil
}

// RegisterStudent creates the student and its login account in one transaction
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthResponse, error) {
	student := &models.Student{
		ProgramID:           req.ProgramID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		PersonalDescription: req.PersonalDescription,
	}
	if err := normalizePerson(&student.FirstName, &student.LastName, &student.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:        student.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Students.Create(ctx, student); err != nil {
			return err
		}
		account.SubjectID = student.ID
		return tx.Accounts.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Int64("accountID", account.ID).Msg("Student registered")
	return s.issue(account)
}

// Me returns the account behind the principal
func (s *AuthService) Me(ctx context.Context, p appauth.Principal) (*dto.AccountInfo, error) {
	account, err := s.stores.Accounts.GetByID(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}
	info := dto.NewAccountInfo(account)
	return &info, nil
}

func (s *AuthService) issue(account *models.Account) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(account)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Account: dto.NewAccountInfo(account),
	}, nil
}
