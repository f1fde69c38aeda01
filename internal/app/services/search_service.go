package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// SearchQuery is a department-scoped student search. A non-blank Query selects
// free-text mode, in which Name, Skill, Course and Program are ignored.
type SearchQuery struct {
	DepartmentID int64
	Name         string
	Skill        string
	Course       string
	Program      string
	Query        string
	Rating       string
}

// IsFreeText reports whether the query runs in free-text mode
func (q SearchQuery) IsFreeText() bool {
	return strings.TrimSpace(q.Query) != ""
}

// SearchService defines the interface for department student search
type SearchService interface {
	Search(ctx context.Context, q SearchQuery) ([]*models.Student, error)
	Resolve(ctx context.Context, q SearchQuery) (*models.StudentSearch, error)
}

type searchServiceImpl struct {
	departments DepartmentStore
	programs    ProgramStore
	courses     CourseStore
	skills      SkillStore
	enrollments StudentCourseStore
	students    StudentStore
	logger      zerolog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(stores Stores, logger zerolog.Logger) SearchService {
	return &searchServiceImpl{
		departments: stores.Departments,
		programs:    stores.Programs,
		courses:     stores.Courses,
		skills:      stores.Skills,
		enrollments: stores.StudentCourses,
		students:    stores.Students,
		logger:      logger,
	}
}

// Search returns the students of a department matching q, ordered by id or,
// with rating=high, by average rating best first. No match is a not-found.
func (s *searchServiceImpl) Search(ctx context.Context, q SearchQuery) ([]*models.Student, error) {
	filter, err := s.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	students, err := s.students.Search(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Int64("departmentID", q.DepartmentID).Msg("Student search failed")
		return nil, err
	}

	if strings.EqualFold(strings.TrimSpace(q.Rating), models.RatingSortHigh) {
		SortByRatingDesc(students)
	}

	if len(students) == 0 {
		return nil, apperrors.ErrNoStudentsFound
	}
	return students, nil
}

// Resolve turns q into a compiled filter: the department's program ids, the
// name terms and the student id sets matched by skill and course text.
func (s *searchServiceImpl) Resolve(ctx context.Context, q SearchQuery) (*models.StudentSearch, error) {
	if err := requireID("department_id", q.DepartmentID); err != nil {
		return nil, err
	}
	if _, err := s.departments.GetByID(ctx, q.DepartmentID); err != nil {
		return nil, err
	}

	if q.IsFreeText() {
		return s.resolveFreeText(ctx, q.DepartmentID, strings.TrimSpace(q.Query))
	}
	return s.resolveDiscrete(ctx, q)
}

func (s *searchServiceImpl) resolveDiscrete(ctx context.Context, q SearchQuery) (*models.StudentSearch, error) {
	programIDs, err := s.programs.IDsByDepartment(ctx, q.DepartmentID, strings.TrimSpace(q.Program))
	if err != nil {
		return nil, err
	}

	filter := &models.StudentSearch{
		ProgramIDs: programIDs,
		NameTerm:   strings.TrimSpace(q.Name),
	}

	if skill := strings.TrimSpace(q.Skill); skill != "" {
		if filter.SkillStudentIDs, err = s.skills.StudentIDsMatching(ctx, skill); err != nil {
			return nil, err
		}
	}
	if course := strings.TrimSpace(q.Course); course != "" {
		if filter.CourseStudentIDs, err = s.studentsInCourses(ctx, course); err != nil {
			return nil, err
		}
	}
	return filter, nil
}

func (s *searchServiceImpl) resolveFreeText(ctx context.Context, departmentID int64, text string) (*models.StudentSearch, error) {
	programIDs, err := s.programs.IDsByDepartment(ctx, departmentID, "")
	if err != nil {
		return nil, err
	}

	filter := &models.StudentSearch{ProgramIDs: programIDs, FreeText: true}

	tokens := strings.Fields(text)
	switch len(tokens) {
	case 1:
		filter.NameTerm = tokens[0]
	case 2:
		// first token against first name OR second token against last name
		filter.FirstTerm = tokens[0]
		filter.LastTerm = tokens[1]
	default:
		filter.FullNameTerm = strings.Join(tokens, " ")
	}

	if filter.SkillStudentIDs, err = s.skills.StudentIDsMatching(ctx, text); err != nil {
		return nil, err
	}
	if filter.CourseStudentIDs, err = s.studentsInCourses(ctx, text); err != nil {
		return nil, err
	}
	return filter, nil
}

// studentsInCourses returns the students enrolled in any course whose name
// contains term. No matching course yields an empty, non-nil set.
func (s *searchServiceImpl) studentsInCourses(ctx context.Context, term string) ([]int64, error) {
	courseIDs, err := s.courses.IDsByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []int64{}, nil
	}
	return s.enrollments.StudentIDsByCourses(ctx, courseIDs)
}

// SortByRatingDesc orders students by average rating, highest first. Unrated
// students go last and equal ratings keep their current order.
func SortByRatingDesc(students []*models.Student) {
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i].AverageRating, students[j].AverageRating
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}
