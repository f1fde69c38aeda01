package services

import (
	"context"

	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
)

// StudentCourseService defines the interface for course enrollments
type StudentCourseService interface {
	Enroll(ctx context.Context, p appauth.Principal, studentID, courseID int64) (*models.StudentCourse, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.StudentCourse, error)
	GetAllEnrollments(ctx context.Context) ([]*models.StudentCourse, error)
	Unenroll(ctx context.Context, p appauth.Principal, courseID, studentID int64) error
}

type studentCourseServiceImpl struct {
	enrollments StudentCourseStore
	authz       *appauth.AuthorizationService
}

// NewStudentCourseService creates a new enrollment service instance
func NewStudentCourseService(enrollments StudentCourseStore, authz *appauth.AuthorizationService) StudentCourseService {
	return &studentCourseServiceImpl{enrollments: enrollments, authz: authz}
}

// Enroll links a student to a course once; a repeated enrollment is a conflict.
func (s *studentCourseServiceImpl) Enroll(ctx context.Context, p appauth.Principal, studentID, courseID int64) (*models.StudentCourse, error) {
	owner, err := profileOwner(s.authz, p, studentID)
	if err != nil {
		return nil, err
	}
	if err := requireID("course_id", courseID); err != nil {
		return nil, err
	}
	enrollment := &models.StudentCourse{StudentID: owner, CourseID: courseID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *studentCourseServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	if err := requireID("student_course_id", id); err != nil {
		return nil, err
	}
	return s.enrollments.GetByID(ctx, id)
}

func (s *studentCourseServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.StudentCourse, error) {
	return s.enrollments.GetAll(ctx)
}

func (s *studentCourseServiceImpl) Unenroll(ctx context.Context, p appauth.Principal, courseID, studentID int64) error {
	if err := requireID("course_id", courseID); err != nil {
		return err
	}
	if err := requireID("student_id", studentID); err != nil {
		return err
	}
	if err := s.authz.CanManageStudentProfile(p, studentID); err != nil {
		return err
	}
	return s.enrollments.Delete(ctx, courseID, studentID)
}
