package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/wish2work/internal/app/models"
	appRepos "github.com/yigit/wish2work/internal/app/repositories"
	"github.com/yigit/wish2work/internal/db"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/auth"
)

// Options controls the default admin account
type Options struct {
	AdminEmail    string
	AdminPassword string
}

type departmentSeed struct {
	name     string
	programs []string
	courses  []string
}

var defaultDepartments = []departmentSeed{
	{
		name:     "Computer Science",
		programs: []string{"BSc Computer Science", "BSc Information Systems"},
		courses:  []string{"Data Structures", "Databases", "Software Engineering"},
	},
	{
		name:     "Mathematics",
		programs: []string{"BSc Mathematics"},
		courses:  []string{"Linear Algebra", "Statistics"},
	},
}

// CreateDefaultData creates the reference departments, their programs and
// courses, and a first admin account if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, opts Options, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Departments/Programs/Courses)...")
	var finalErr error // collect errors without stopping the process

	for _, seed := range defaultDepartments {
		_, err := repos.DepartmentRepository.GetByName(ctx, seed.name)
		if err == nil {
			lgr.Debug().Str("department", seed.name).Msg("Department already exists, skipping")
			continue
		}
		if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
			lgr.Error().Err(err).Str("department", seed.name).Msg("Error looking up department")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if err := createDepartment(ctx, dbPool, seed); err != nil {
			lgr.Error().Err(err).Str("department", seed.name).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("department", seed.name).Msg("Default department created")
	}

	if err := createAdmin(ctx, dbPool, repos, opts, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// createDepartment writes a department with its programs and courses in one transaction
func createDepartment(ctx context.Context, dbPool *pgxpool.Pool, seed departmentSeed) error {
	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)

		dept := &appModels.Department{Name: seed.name}
		if err := repos.DepartmentRepository.Create(ctx, dept); err != nil {
			return err
		}
		for _, name := range seed.programs {
			if err := repos.ProgramRepository.Create(ctx, &appModels.Program{Name: name, DepartmentID: dept.ID}); err != nil {
				return err
			}
		}
		for _, name := range seed.courses {
			if err := repos.CourseRepository.Create(ctx, &appModels.Course{Name: name, DepartmentID: dept.ID}); err != nil {
				return err
			}
		}
		return nil
	})
}

func createAdmin(ctx context.Context, dbPool *pgxpool.Pool, repos *appRepos.Repositories, opts Options, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" || opts.AdminPassword == "" {
		lgr.Warn().Msg("Seed admin email or password not configured, skipping admin creation")
		return nil
	}

	_, err := repos.AccountRepository.GetByEmail(ctx, email)
	if err == nil {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		return err
	}

	lgr.Info().Msg("Creating default admin account...")
	hash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return err
	}

	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		txRepos := appRepos.NewRepositories(tx)

		admin := &appModels.Admin{FirstName: "System", LastName: "Administrator", Email: email}
		if err := txRepos.AdminRepository.Create(ctx, admin); err != nil {
			return err
		}
		account := &appModels.Account{
			Email:        email,
			PasswordHash: hash,
			Role:         appModels.RoleAdmin,
			SubjectID:    admin.ID,
		}
		if err := txRepos.AccountRepository.Create(ctx, account); err != nil {
			return err
		}
		lgr.Info().Int64("adminID", admin.ID).Msg("Default admin account created successfully")
		return nil
	})
}
