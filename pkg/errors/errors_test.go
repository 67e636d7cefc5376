package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidation("full_name is required", nil), http.StatusBadRequest},
		{"invalid format", NewInvalidFormat("bad time", nil), http.StatusBadRequest},
		{"not found", NewNotFound("Doctor", nil), http.StatusNotFound},
		{"internal", NewInternal(stderrors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestAppError_Messages(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := NewInternal(cause)
	assert.Equal(t, "internal server error: connection refused", err.Error())
	assert.Equal(t, "internal server error", err.PublicMessage())
	assert.ErrorIs(t, err, cause)

	nf := NewNotFound("Patient", nil)
	assert.Equal(t, "Patient not found", nf.Error())
	assert.Equal(t, "Patient not found", nf.PublicMessage())
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFound("Appointment", nil))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}
