package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/toby/expense-tracker-backend/internal/apperror"
)

// Envelope is the uniform body shape for every endpoint, success or failure.
type Envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    any                   `json:"data,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
	Token   string                `json:"token,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandlerFunc is a handler that signals failure by returning an error instead
// of writing the error body itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler is the terminal error stage. Every failure from a handler or
// middleware funnels through WriteError; it is the only place that turns
// errors into response bodies.
type ErrorHandler struct {
	log        *slog.Logger
	production bool
}

func NewErrorHandler(log *slog.Logger, production bool) *ErrorHandler {
	return &ErrorHandler{log: log, production: production}
}

// Wrap adapts a HandlerFunc into an http.HandlerFunc that routes any returned
// error into the terminal stage.
func (h *ErrorHandler) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.WriteError(w, err)
		}
	}
}

// WriteError maps known application errors to their fixed status and message.
// Anything else becomes an opaque 500; its detail goes to the operator log
// only, and only outside production.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		JSON(w, appErr.Status, Envelope{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Errors,
		})
		return
	}

	if !h.production {
		h.log.Error("unhandled error",
			slog.String("error", err.Error()),
			slog.String("type", fmt.Sprintf("%T", err)),
			slog.String("stack", string(debug.Stack())),
		)
	}

	JSON(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Internal server error",
	})
}
