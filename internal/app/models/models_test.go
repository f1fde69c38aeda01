package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Disapproved"} {
		got, err := ParseRequestStatus(s)
		require.NoError(t, err)
		assert.Equal(t, RequestStatus(s), got)
	}

	for _, s := range []string{"", "approved", "APPROVED", "Rejected", " Pending"} {
		_, err := ParseRequestStatus(s)
		assert.Error(t, err, "status %q", s)
	}
}

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestPending.CanTransitionTo(RequestApproved))
	assert.True(t, RequestPending.CanTransitionTo(RequestDisapproved))
	assert.False(t, RequestPending.CanTransitionTo(RequestPending))

	assert.False(t, RequestApproved.CanTransitionTo(RequestDisapproved))
	assert.False(t, RequestApproved.CanTransitionTo(RequestPending))
	assert.False(t, RequestDisapproved.CanTransitionTo(RequestApproved))

	assert.False(t, RequestPending.IsTerminal())
	assert.True(t, RequestApproved.IsTerminal())
	assert.True(t, RequestDisapproved.IsTerminal())
}

func TestTimeWindowValidate(t *testing.T) {
	tests := []struct {
		name   string
		window TimeWindow
		want   error
	}{
		{"valid", TimeWindow{Date: "2024-09-16", Start: "09:00", End: "11:30"}, nil},
		{"bad date", TimeWindow{Date: "16/09/2024", Start: "09:00", End: "11:30"}, ErrInvalidDate},
		{"impossible date", TimeWindow{Date: "2024-02-30", Start: "09:00", End: "11:30"}, ErrInvalidDate},
		{"bad start", TimeWindow{Date: "2024-09-16", Start: "9am", End: "11:30"}, ErrInvalidClock},
		{"bad end", TimeWindow{Date: "2024-09-16", Start: "09:00", End: "25:00"}, ErrInvalidClock},
		{"equal", TimeWindow{Date: "2024-09-16", Start: "10:00", End: "10:00"}, ErrEmptyWindow},
		{"reversed", TimeWindow{Date: "2024-09-16", Start: "12:00", End: "10:00"}, ErrEmptyWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLedgerEntry(t *testing.T) {
	req := &Request{ID: 7, StaffID: 2, StudentID: 3, Status: RequestApproved}

	_, ok := req.LedgerEntry()
	assert.False(t, ok)
	assert.False(t, req.IsRated())

	rating := 4
	feedback := "great help"
	ratedAt := time.Date(2024, 9, 20, 10, 0, 0, 0, time.UTC)
	req.Rating, req.Feedback, req.RatedAt = &rating, &feedback, &ratedAt

	entry, ok := req.LedgerEntry()
	require.True(t, ok)
	assert.True(t, req.IsRated())
	assert.Equal(t, RatingEntry{
		ID:          7,
		RequestID:   7,
		StudentID:   3,
		StaffID:     2,
		RatingValue: 4,
		Feedback:    &feedback,
		CreatedAt:   ratedAt,
	}, entry)
}

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.False(t, RoleType("INSTRUCTOR").Valid())
	assert.False(t, RoleType("").Valid())
}

func TestStudentSearchHasNamePredicate(t *testing.T) {
	assert.False(t, (&StudentSearch{}).HasNamePredicate())
	assert.True(t, (&StudentSearch{NameTerm: "ada"}).HasNamePredicate())
	assert.True(t, (&StudentSearch{LastTerm: "lovelace"}).HasNamePredicate())
	assert.True(t, (&StudentSearch{FullNameTerm: "ada king lovelace"}).HasNamePredicate())
}
