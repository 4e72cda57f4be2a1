package apperror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toby/expense-tracker-backend/internal/apperror"
)

func TestVariantStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *apperror.AppError
		want int
	}{
		{"validation", apperror.NewValidation("bad input"), http.StatusBadRequest},
		{"conflict", apperror.NewConflict("duplicate"), http.StatusConflict},
		{"authentication", apperror.NewAuthentication("denied"), http.StatusUnauthorized},
		{"account deactivation", apperror.NewAccountDeactivation("deactivated"), http.StatusForbidden},
		{"user not found", apperror.NewUserNotFound("gone"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status)
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestValidationCarriesFieldErrors(t *testing.T) {
	err := apperror.NewValidation("Validation failed",
		apperror.FieldError{Field: "email", Message: "email is required"},
		apperror.FieldError{Field: "", Message: "body must be an object"},
	)

	assert.Len(t, err.Errors, 2)
	assert.Equal(t, "email", err.Errors[0].Field)

	// Variants built without detail carry none.
	assert.Empty(t, apperror.NewValidation("Invalid email format").Errors)
}
