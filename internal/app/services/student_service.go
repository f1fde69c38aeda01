package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	ListStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	SetStudentActive(ctx context.Context, id int64, active bool) error
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentAvailability(ctx context.Context, id int64) ([]*models.Availability, error)
	GetStudentCourses(ctx context.Context, id int64) ([]*models.StudentCourse, error)
	GetStudentSkills(ctx context.Context, id int64) ([]*models.Skill, error)
	GetStudentRequests(ctx context.Context, id int64) ([]*models.Request, error)
}

type studentServiceImpl struct {
	stores Stores
	tx     Transactor
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(stores Stores, tx Transactor, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		stores: stores,
		tx:     tx,
		logger: logger,
	}
}

// ListStudents returns one page of students and the total count
func (s *studentServiceImpl) ListStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	return s.stores.Students.List(ctx, offset, limit)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if err := requireID("student_id", id); err != nil {
		return nil, err
	}
	return s.stores.Students.GetByID(ctx, id)
}

// UpdateStudent writes profile fields; the stored average rating is left untouched.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := requireID("student_id", student.ID); err != nil {
		return err
	}
	if err := normalizePerson(&student.FirstName, &student.LastName, &student.Email); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Students.Update(ctx, student); err != nil {
			return err
		}
		return tx.Accounts.UpdateEmailBySubject(ctx, models.RoleStudent, student.ID, student.Email)
	})
}

func (s *studentServiceImpl) SetStudentActive(ctx context.Context, id int64, active bool) error {
	if err := requireID("student_id", id); err != nil {
		return err
	}
	if err := s.stores.Students.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", id).Bool("active", active).Msg("Student activation changed")
	return nil
}

// DeleteStudent removes the student and their account. Skills, enrollments and
// availability go with the student row; requests block the delete.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := requireID("student_id", id); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Accounts.DeleteBySubject(ctx, models.RoleStudent, id); err != nil {
			return err
		}
		return tx.Students.Delete(ctx, id)
	})
}

// The child listings below answer 404 for an unknown student and for an empty list.

func (s *studentServiceImpl) GetStudentAvailability(ctx context.Context, id int64) ([]*models.Availability, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	slots, err := s.stores.Availability.GetByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no availability found for this student")
	}
	return slots, nil
}

func (s *studentServiceImpl) GetStudentCourses(ctx context.Context, id int64) ([]*models.StudentCourse, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	courses, err := s.stores.StudentCourses.GetByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no courses found for this student")
	}
	return courses, nil
}

func (s *studentServiceImpl) GetStudentSkills(ctx context.Context, id int64) ([]*models.Skill, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	skills, err := s.stores.Skills.GetByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no skills found for this student")
	}
	return skills, nil
}

func (s *studentServiceImpl) GetStudentRequests(ctx context.Context, id int64) ([]*models.Request, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	requests, err := s.stores.Requests.GetByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no requests found for this student")
	}
	return requests, nil
}
