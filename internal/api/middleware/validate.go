package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/toby/expense-tracker-backend/internal/api/response"
	"github.com/toby/expense-tracker-backend/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field errors under their json names, matching the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type bodyKey struct{}

// ValidateBody parses and validates the JSON request body against T before
// the handler runs. Schema violations stop the request with a 400 and a
// field-error list; the handler receives the parsed body via Body.
func ValidateBody[T any](errs *response.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				errs.WriteError(w, apperror.NewValidation("Invalid request body"))
				return
			}

			if err := validate.Struct(&body); err != nil {
				var violations validator.ValidationErrors
				if !errors.As(err, &violations) {
					errs.WriteError(w, err)
					return
				}
				fields := make([]apperror.FieldError, 0, len(violations))
				for _, fe := range violations {
					fields = append(fields, apperror.FieldError{
						Field:   fe.Field(),
						Message: messageFor(fe),
					})
				}
				errs.WriteError(w, apperror.NewValidation("Validation failed", fields...))
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey{}, &body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Body returns the validated request body attached by ValidateBody.
func Body[T any](ctx context.Context) *T {
	body, _ := ctx.Value(bodyKey{}).(*T)
	return body
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
