package core

import (
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsShutdown(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("boom")},
		{name: "shutdown", err: NewShutdownError("selecting studentName", sql.ErrConnDone), want: true},
		{name: "wrapped", err: errors.Wrap(NewShutdownError("upserting enrolledCourses", sql.ErrConnDone), "saving enrollments"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsShutdown(tt.err))
		})
	}
}

func TestShutdownError(t *testing.T) {
	err := errors.Wrap(NewShutdownError("selecting studentName", sql.ErrConnDone), "reading studentName")
	assert.EqualError(t, err, "reading studentName: selecting studentName: "+sql.ErrConnDone.Error())
	assert.True(t, errors.Is(err, sql.ErrConnDone))
}

func TestValidationError(t *testing.T) {
	cause := errors.New("invalid material")
	err := NewValidationError(cause, FieldError{Field: "url", Error: "this field is required"})
	assert.EqualError(t, err, "invalid material")
	assert.True(t, errors.Is(err, cause))
	assert.EqualError(t, NewValidationError(nil), "invalid input")
}
