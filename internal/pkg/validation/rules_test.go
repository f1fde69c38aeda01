package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClock(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "23:59", "12:05"} {
		assert.True(t, IsClock(s), s)
	}
	for _, s := range []string{"", "9:30", "24:00", "12:60", "12:5", "12-30", "12:30:00", " 12:30"} {
		assert.False(t, IsClock(s), s)
	}
}

type slotInput struct {
	Start string `validate:"required,clock"`
	Title string `validate:"notblank"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	assert.NoError(t, v.Struct(slotInput{Start: "08:15", Title: "Lab help"}))

	err := v.Struct(slotInput{Start: "8:15", Title: "   "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	tags := map[string]string{}
	for _, fe := range verrs {
		tags[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{"Start": TagClock, "Title": TagNotBlank}, tags)
}
