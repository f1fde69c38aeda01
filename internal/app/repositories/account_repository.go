package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var accountColumns = []string{"account_id", "email", "password_hash", "role", "subject_id", "created_at"}

// AccountRepository stores login credentials
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	q := psql.Insert("accounts").
		Columns("email", "password_hash", "role", "subject_id").
		Values(a.Email, a.PasswordHash, string(a.Role), a.SubjectID).
		Suffix("RETURNING account_id, created_at")
	return insertReturning(ctx, r.db, q, "account", &a.ID, &a.CreatedAt)
}

// GetByEmail matches the email case-insensitively
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	q := psql.Select(accountColumns...).From("accounts").Where(squirrel.Expr("LOWER(email) = LOWER(?)", email))
	return fetchOne[models.Account](ctx, r.db, q, "account", apperrors.ErrAccountNotFound)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	q := psql.Select(accountColumns...).From("accounts").Where(squirrel.Eq{"account_id": id})
	return fetchOne[models.Account](ctx, r.db, q, "account", apperrors.ErrAccountNotFound)
}

// DeleteBySubject removes the login of a deleted admin, staff member or student.
// A subject without an account is not an error.
func (r *AccountRepository) DeleteBySubject(ctx context.Context, role models.RoleType, subjectID int64) error {
	q := psql.Delete("accounts").Where(squirrel.Eq{"role": string(role), "subject_id": subjectID})
	err := execAffecting(ctx, r.db, q, "account", "deleting", apperrors.ErrAccountNotFound)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil
	}
	return err
}

// UpdateEmailBySubject keeps the login email in step with the profile email.
// A subject without an account is not an error.
func (r *AccountRepository) UpdateEmailBySubject(ctx context.Context, role models.RoleType, subjectID int64, email string) error {
	q := psql.Update("accounts").
		Set("email", email).
		Where(squirrel.Eq{"role": string(role), "subject_id": subjectID})
	err := execAffecting(ctx, r.db, q, "account", "updating", apperrors.ErrAccountNotFound)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil
	}
	return err
}
