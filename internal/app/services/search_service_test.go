package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

type searchWorld struct {
	*fixture
	cs, bio          *models.Department
	infoSys, softEng *models.Program
	genetics         *models.Program
	sara, nashbat    *models.Student
	saraSmith, john  *models.Student
	lindiwe, thabo   *models.Student
	svc              SearchService
}

func newSearchWorld(t *testing.T) *searchWorld {
	f := newFixture(t)
	w := &searchWorld{fixture: f}

	w.cs = f.department("Computer Science")
	w.bio = f.department("Biology")
	w.infoSys = f.program(w.cs.ID, "BSc Information Systems")
	w.softEng = f.program(w.cs.ID, "BSc Software Engineering")
	w.genetics = f.program(w.bio.ID, "BSc Genetics")

	w.sara = f.student(w.infoSys.ID, "Sara", "Nashbat", 3.5)
	w.nashbat = f.student(w.infoSys.ID, "Nashbat", "Sara", 4.8)
	w.saraSmith = f.student(w.softEng.ID, "Sara", "Smith")
	w.john = f.student(w.softEng.ID, "John", "Doe", 4.1)
	w.lindiwe = f.student(w.genetics.ID, "Lindiwe", "Sara", 5.0)
	w.thabo = f.student(w.genetics.ID, "Thabo", "Mokoena")

	f.skill(w.john.ID, "Tutoring", "co-tutored with Sara Nashbat")
	f.skill(w.sara.ID, "Python", "data analysis")
	f.skill(w.thabo.ID, "Python", "")

	databases := f.course(w.cs.ID, "Databases 101")
	f.enroll(w.saraSmith.ID, databases.ID)
	f.enroll(w.thabo.ID, databases.ID)

	w.svc = NewSearchService(f.stores, f.log)
	return w
}

func TestSearch_NoFiltersReturnsOnlyDepartmentStudents(t *testing.T) {
	w := newSearchWorld(t)

	students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{w.sara.ID, w.nashbat.ID, w.saraSmith.ID, w.john.ID}, studentIDs(students))

	students, err = w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.bio.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{w.lindiwe.ID, w.thabo.ID}, studentIDs(students))
}

func TestSearch_DiscreteFilters(t *testing.T) {
	w := newSearchWorld(t)

	tests := []struct {
		name  string
		query SearchQuery
		want  []int64
	}{
		{
			name:  "name matches first or last name",
			query: SearchQuery{Name: "sara"},
			want:  []int64{w.sara.ID, w.nashbat.ID, w.saraSmith.ID},
		},
		{
			name:  "program narrows the department",
			query: SearchQuery{Program: "software"},
			want:  []int64{w.saraSmith.ID, w.john.ID},
		},
		{
			name:  "skill matches title or description",
			query: SearchQuery{Skill: "nashbat"},
			want:  []int64{w.john.ID},
		},
		{
			name:  "course matches enrolled students",
			query: SearchQuery{Course: "databases"},
			want:  []int64{w.saraSmith.ID},
		},
		{
			name:  "filters intersect",
			query: SearchQuery{Name: "Sara", Skill: "python"},
			want:  []int64{w.sara.ID},
		},
		{
			name:  "name and program intersect",
			query: SearchQuery{Name: "Sara", Program: "Information"},
			want:  []int64{w.sara.ID, w.nashbat.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.DepartmentID = w.cs.ID
			students, err := w.svc.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, studentIDs(students))
		})
	}
}

func TestSearch_ZeroSkillOrCourseMatchesYieldNoStudents(t *testing.T) {
	w := newSearchWorld(t)

	for _, q := range []SearchQuery{
		{DepartmentID: w.cs.ID, Skill: "underwater welding"},
		{DepartmentID: w.cs.ID, Course: "Astrophysics"},
		{DepartmentID: w.cs.ID, Program: "Medicine"},
	} {
		filter, err := w.svc.Resolve(context.Background(), q)
		require.NoError(t, err)
		if q.Skill != "" {
			assert.NotNil(t, filter.SkillStudentIDs)
			assert.Empty(t, filter.SkillStudentIDs)
		}
		if q.Course != "" {
			assert.NotNil(t, filter.CourseStudentIDs)
			assert.Empty(t, filter.CourseStudentIDs)
		}

		students, err := w.svc.Search(context.Background(), q)
		assert.Nil(t, students)
		assert.ErrorIs(t, err, apperrors.ErrNoStudentsFound)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	}
}

func TestSearch_FreeTextTwoTokensIsUnionWithoutSwap(t *testing.T) {
	w := newSearchWorld(t)

	students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Query: "Sara Nashbat"})
	require.NoError(t, err)

	ids := studentIDs(students)
	assert.Contains(t, ids, w.sara.ID, "exact first and last name")
	assert.Contains(t, ids, w.saraSmith.ID, "first token matches first name only")
	assert.Contains(t, ids, w.john.ID, "skill description contains the whole query")
	assert.NotContains(t, ids, w.nashbat.ID, "tokens are not swapped across first and last name")
	assert.NotContains(t, ids, w.lindiwe.ID, "other departments stay out")
	assert.Equal(t, []int64{w.sara.ID, w.saraSmith.ID, w.john.ID}, ids)
}

func TestSearch_FreeTextModes(t *testing.T) {
	w := newSearchWorld(t)

	t.Run("one token matches first or last name", func(t *testing.T) {
		students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Query: "  sara "})
		require.NoError(t, err)
		// john comes in through his skill description
		assert.Equal(t, []int64{w.sara.ID, w.nashbat.ID, w.saraSmith.ID, w.john.ID}, studentIDs(students))
	})

	t.Run("course text joins the union", func(t *testing.T) {
		students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.bio.ID, Query: "Databases"})
		require.NoError(t, err)
		assert.Equal(t, []int64{w.thabo.ID}, studentIDs(students))
	})

	t.Run("three tokens match the full name", func(t *testing.T) {
		f := w.fixture
		ana := f.student(w.infoSys.ID, "Ana", "de la Cruz")
		students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Query: "ana de la"})
		require.NoError(t, err)
		assert.Equal(t, []int64{ana.ID}, studentIDs(students))
	})

	t.Run("query overrides discrete fields", func(t *testing.T) {
		filter, err := w.svc.Resolve(context.Background(), SearchQuery{
			DepartmentID: w.cs.ID, Query: "John", Program: "Information", Name: "Sara",
		})
		require.NoError(t, err)
		assert.True(t, filter.FreeText)
		assert.Equal(t, "John", filter.NameTerm)
		assert.ElementsMatch(t, []int64{w.infoSys.ID, w.softEng.ID}, filter.ProgramIDs)
	})

	t.Run("blank query falls back to discrete mode", func(t *testing.T) {
		filter, err := w.svc.Resolve(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Query: "   ", Name: "John"})
		require.NoError(t, err)
		assert.False(t, filter.FreeText)
		assert.Nil(t, filter.SkillStudentIDs)
		assert.Nil(t, filter.CourseStudentIDs)
	})
}

func TestSearch_RatingHighSortsDescendingWithUnratedLast(t *testing.T) {
	w := newSearchWorld(t)

	students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Rating: "high"})
	require.NoError(t, err)
	assert.Equal(t, []int64{w.nashbat.ID, w.john.ID, w.sara.ID, w.saraSmith.ID}, studentIDs(students))
}

func TestSortByRatingDesc_KeepsIDOrderForTies(t *testing.T) {
	four, three := 4.0, 3.0
	students := []*models.Student{
		{ID: 1}, {ID: 2, AverageRating: &three}, {ID: 3, AverageRating: &four},
		{ID: 4, AverageRating: &three}, {ID: 5},
	}
	SortByRatingDesc(students)
	assert.Equal(t, []int64{3, 2, 4, 1, 5}, studentIDs(students))
}

func TestSearch_IsIdempotent(t *testing.T) {
	w := newSearchWorld(t)

	for _, q := range []SearchQuery{
		{DepartmentID: w.cs.ID, Name: "sara", Rating: "high"},
		{DepartmentID: w.cs.ID, Query: "Sara Nashbat"},
	} {
		first, err := w.svc.Search(context.Background(), q)
		require.NoError(t, err)
		second, err := w.svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestSearch_Failures(t *testing.T) {
	w := newSearchWorld(t)

	t.Run("unknown department", func(t *testing.T) {
		_, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: 9999})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("invalid department id", func(t *testing.T) {
		_, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: 0})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("store error returns no partial result", func(t *testing.T) {
		boom := errors.New("connection reset")
		w.db.failures["Students.Search"] = boom
		defer delete(w.db.failures, "Students.Search")

		students, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID})
		assert.Nil(t, students)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("skill lookup error", func(t *testing.T) {
		boom := errors.New("timeout")
		w.db.failures["Skills.StudentIDsMatching"] = boom
		defer delete(w.db.failures, "Skills.StudentIDsMatching")

		_, err := w.svc.Search(context.Background(), SearchQuery{DepartmentID: w.cs.ID, Skill: "python"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestSearch_StudentsWithoutProgramNeverMatch(t *testing.T) {
	w := newSearchWorld(t)
	unplaced := &models.Student{ID: w.db.next(), FirstName: "Sara", LastName: "Unplaced", Email: "sara.unplaced@uni.test", IsActive: true}
	w.db.students[unplaced.ID] = *unplaced
	w.skill(unplaced.ID, "Python", "")

	for _, q := range []SearchQuery{
		{DepartmentID: w.cs.ID},
		{DepartmentID: w.cs.ID, Name: "Sara"},
		{DepartmentID: w.cs.ID, Query: "Sara"},
		{DepartmentID: w.cs.ID, Query: "Python"},
		{DepartmentID: w.bio.ID, Skill: "Python"},
	} {
		students, err := w.svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.NotContains(t, studentIDs(students), unplaced.ID, "%+v", q)
	}
}
