package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/toby/expense-tracker-backend/internal/domain"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the store rejects a write against
	// the unique email index.
	ErrDuplicateEmail = errors.New("email already taken")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
