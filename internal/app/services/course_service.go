package services

import (
	"context"
	"strings"

	"github.com/yigit/wish2work/internal/app/models"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	course.Name = strings.TrimSpace(course.Name)
	if err := requireText("name", course.Name); err != nil {
		return err
	}
	return requireID("department_id", course.DepartmentID)
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := requireID("course_id", id); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := requireID("course_id", course.ID); err != nil {
		return err
	}
	if err := s.validateCourse(course); err != nil {
		return err
	}
	return s.courses.Update(ctx, course)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := requireID("course_id", id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}
