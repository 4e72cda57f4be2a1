package apperror

import "net/http"

// FieldError points a validation failure at a single request field. Field is
// empty when the violation has no associated path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an application failure carrying the HTTP status it maps to.
// Business logic returns these unmodified all the way up to the terminal
// error stage; nothing in between rewraps them.
type AppError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidation builds a 400 error, optionally with per-field detail.
func NewValidation(message string, errors ...FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Errors: errors}
}

// NewConflict builds a 409 error for duplicate-resource failures.
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// NewAuthentication builds a 401 error for missing or bad credentials.
func NewAuthentication(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// NewAccountDeactivation builds a 403 error. Reserved for deactivated
// accounts; no code path triggers it yet.
func NewAccountDeactivation(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// NewUserNotFound builds a 404 error for a valid token whose user is gone.
func NewUserNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}
