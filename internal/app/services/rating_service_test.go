package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

type ratingWorld struct {
	*fixture
	staff   *models.Staff
	student *models.Student
	svc     RatingService
}

func newRatingWorld(t *testing.T) *ratingWorld {
	f := newFixture(t)
	dept := f.department("Computer Science")
	prog := f.program(dept.ID, "BSc Information Systems")
	w := &ratingWorld{fixture: f}
	w.staff = f.staffMember("Naledi", true)
	w.student = f.student(prog.ID, "Sara", "Nashbat")
	w.svc = NewRatingService(f.stores.Requests, f.tx, f.authz, f.log)
	return w
}

func (w *ratingWorld) storedAverage() *float64 {
	return w.db.students[w.student.ID].AverageRating
}

func TestMeanRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    *float64
	}{
		{"no ratings", nil, nil},
		{"single", []int{5}, ptr(5.0)},
		{"whole mean", []int{5, 3, 4, 4}, ptr(4.0)},
		{"rounded down", []int{5, 4, 4}, ptr(4.33)},
		{"rounded up", []int{5, 5, 4}, ptr(4.67)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanRating(tt.ratings)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, ValidateRating(r))
	}
	for _, r := range []int{-1, 0, 6, 10} {
		assert.ErrorIs(t, ValidateRating(r), apperrors.ErrRatingOutOfRange)
	}
}

func TestCompleteWithRating_RecomputesAverageFromAllRatings(t *testing.T) {
	w := newRatingWorld(t)
	w.request(w.staff.ID, w.student.ID, models.RequestApproved, 5)
	w.request(w.staff.ID, w.student.ID, models.RequestApproved, 3)
	w.request(w.staff.ID, w.student.ID, models.RequestApproved, 4)
	target := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	w.resetWrites()
	feedback := "Reliable and punctual"

	outcome, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, 4, &feedback)
	require.NoError(t, err)

	require.NotNil(t, outcome.AverageRating)
	assert.InDelta(t, 4.0, *outcome.AverageRating, 1e-9)
	assert.Equal(t, 4, outcome.RatedCount)
	require.NotNil(t, outcome.Request.Rating)
	assert.Equal(t, 4, *outcome.Request.Rating)
	assert.NotNil(t, outcome.Request.RatedAt)

	require.NotNil(t, w.storedAverage())
	assert.InDelta(t, 4.0, *w.storedAverage(), 1e-9)
	assert.Equal(t, &feedback, w.db.requests[target.ID].Feedback)
	assert.Equal(t, []string{"Requests.SetRating", "Students.UpdateAverageRating"}, w.db.writes)
	assert.Equal(t, 1, w.tx.commits)
}

func TestCompleteWithRating_OutOfRangeRejectedWithoutWrites(t *testing.T) {
	w := newRatingWorld(t)
	target := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	w.resetWrites()

	for _, rating := range []int{0, 6} {
		_, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, rating, nil)
		assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	assert.Empty(t, w.db.writes)
	assert.Zero(t, w.tx.commits+w.tx.rollbacks, "no transaction is opened")
	assert.Nil(t, w.db.requests[target.ID].Rating)
}

func TestCompleteWithRating_Preconditions(t *testing.T) {
	w := newRatingWorld(t)
	other := w.staffMember("Pieter", true)
	pending := w.request(w.staff.ID, w.student.ID, models.RequestPending)
	rated := w.request(w.staff.ID, w.student.ID, models.RequestApproved, 5)
	approved := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	w.resetWrites()

	tests := []struct {
		name      string
		requestID int64
		caller    int64
		want      error
	}{
		{"pending request", pending.ID, w.staff.ID, apperrors.ErrRequestNotApproved},
		{"already rated", rated.ID, w.staff.ID, apperrors.ErrRequestAlreadyRated},
		{"another staff member", approved.ID, other.ID, apperrors.ErrPermissionDenied},
		{"unknown request", 9999, w.staff.ID, apperrors.ErrRequestNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(tt.caller), tt.requestID, 4, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := w.svc.CompleteWithRating(context.Background(), studentPrincipal(w.student.ID), approved.ID, 4, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	assert.Empty(t, w.db.writes)
	assert.Nil(t, w.storedAverage())
}

func TestCompleteWithRating_AverageFailureRollsBackRating(t *testing.T) {
	w := newRatingWorld(t)
	target := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	boom := errors.New("deadlock detected")
	w.db.failures["Students.UpdateAverageRating"] = boom

	_, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StepRecomputeAverage, apperrors.StepOf(err))

	assert.Nil(t, w.db.requests[target.ID].Rating, "rating is rolled back")
	assert.Nil(t, w.storedAverage())
	assert.Equal(t, 1, w.tx.rollbacks)

	delete(w.db.failures, "Students.UpdateAverageRating")
	outcome, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, 5, nil)
	require.NoError(t, err, "the request can be rated after the failed attempt")
	assert.InDelta(t, 5.0, *outcome.AverageRating, 1e-9)
}

func TestCompleteWithRating_SetRatingFailureTagsStep(t *testing.T) {
	w := newRatingWorld(t)
	target := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	w.db.failures["Requests.SetRating"] = errors.New("write failed")

	_, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, 3, nil)
	assert.Equal(t, StepRecordRating, apperrors.StepOf(err))
	assert.Nil(t, w.storedAverage())
}

func TestRecomputeAverage(t *testing.T) {
	w := newRatingWorld(t)

	t.Run("no ratings clears the average", func(t *testing.T) {
		stale := 2.5
		st := w.db.students[w.student.ID]
		st.AverageRating = &stale
		w.db.students[w.student.ID] = st

		avg, count, err := w.svc.RecomputeAverage(context.Background(), w.student.ID)
		require.NoError(t, err)
		assert.Nil(t, avg)
		assert.Zero(t, count)
		assert.Nil(t, w.storedAverage())
	})

	t.Run("is idempotent", func(t *testing.T) {
		w.request(w.staff.ID, w.student.ID, models.RequestApproved, 5)
		w.request(w.staff.ID, w.student.ID, models.RequestApproved, 4)
		w.request(w.staff.ID, w.student.ID, models.RequestApproved, 4)

		first, _, err := w.svc.RecomputeAverage(context.Background(), w.student.ID)
		require.NoError(t, err)
		second, count, err := w.svc.RecomputeAverage(context.Background(), w.student.ID)
		require.NoError(t, err)

		assert.Equal(t, 3, count)
		assert.Equal(t, first, second)
		assert.InDelta(t, 4.33, *w.storedAverage(), 1e-9)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, _, err := w.svc.RecomputeAverage(context.Background(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("read failure writes nothing", func(t *testing.T) {
		w.db.failures["Requests.RatingsByStudent"] = errors.New("timeout")
		defer delete(w.db.failures, "Requests.RatingsByStudent")
		before := *w.storedAverage()

		_, _, err := w.svc.RecomputeAverage(context.Background(), w.student.ID)
		require.Error(t, err)
		assert.InDelta(t, before, *w.storedAverage(), 1e-9)
	})
}

func TestLedger(t *testing.T) {
	w := newRatingWorld(t)
	other := w.staffMember("Pieter", true)
	first := w.request(w.staff.ID, w.student.ID, models.RequestApproved, 5)
	w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	second := w.request(other.ID, w.student.ID, models.RequestApproved, 2)

	entries, err := w.svc.LedgerByStudent(context.Background(), w.student.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].RequestID, "latest first")
	assert.Equal(t, 2, entries[0].RatingValue)
	assert.Equal(t, first.ID, entries[1].RequestID)

	entries, err = w.svc.LedgerByStaff(context.Background(), w.staff.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID)

	entry, err := w.svc.LedgerEntry(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, entry.StaffID)

	t.Run("empty results are not found", func(t *testing.T) {
		_, err := w.svc.LedgerByStudent(context.Background(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		lonely := w.staffMember("Lonely", true)
		_, err = w.svc.LedgerByStaff(context.Background(), lonely.ID)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		_, err = w.svc.LedgerEntry(context.Background(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrRatingNotFound)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestCompleteWithRating_ReloadFailureIsLoggedNotReturned(t *testing.T) {
	w := newRatingWorld(t)
	var logs bytes.Buffer
	w.svc = NewRatingService(w.stores.Requests, w.tx, w.authz, zerolog.New(&logs))
	target := w.request(w.staff.ID, w.student.ID, models.RequestApproved)
	w.db.failures["Requests.GetByID"] = errors.New("connection reset")

	outcome, err := w.svc.CompleteWithRating(context.Background(), staffPrincipal(w.staff.ID), target.ID, 5, nil)
	require.NoError(t, err)

	require.NotNil(t, outcome.Request)
	assert.Equal(t, target.ID, outcome.Request.ID)
	require.NotNil(t, outcome.Request.Rating)
	assert.Equal(t, 5, *outcome.Request.Rating)
	require.NotNil(t, w.storedAverage())
	assert.InDelta(t, 5.0, *w.storedAverage(), 1e-9)

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "Failed to reload rated request")
	assert.Contains(t, logs.String(), `"requestID":`)
}
