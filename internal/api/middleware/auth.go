package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/toby/expense-tracker-backend/internal/api/response"
	"github.com/toby/expense-tracker-backend/internal/apperror"
	"github.com/toby/expense-tracker-backend/internal/domain"
	"github.com/toby/expense-tracker-backend/internal/repository"
	"github.com/toby/expense-tracker-backend/internal/service"
)

type contextKey string

const userKey contextKey = "user"

const bearerPrefix = "Bearer "

// Auth authenticates requests with a Bearer session token and attaches the
// password-stripped user to the request context. Every request re-verifies
// the token and re-reads the user; nothing is cached between requests.
func Auth(authService *service.AuthService, errs *response.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				errs.WriteError(w, apperror.NewAuthentication("Could not validate token"))
				return
			}

			result := authService.VerifyToken(authHeader[len(bearerPrefix):])
			if !result.Valid {
				errs.WriteError(w, apperror.NewAuthentication(result.Error))
				return
			}

			// A userId claim that is not a UUID never came from this server.
			userID, err := uuid.Parse(result.Payload.UserID)
			if err != nil {
				errs.WriteError(w, apperror.NewAuthentication("Invalid token"))
				return
			}

			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					errs.WriteError(w, apperror.NewUserNotFound("User not found"))
					return
				}
				errs.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user.Public())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the identity attached by Auth.
func CurrentUser(ctx context.Context) (*domain.PublicUser, bool) {
	user, ok := ctx.Value(userKey).(*domain.PublicUser)
	return user, ok
}
