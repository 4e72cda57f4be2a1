package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/toby/expense-tracker-backend/internal/auth"
	"github.com/toby/expense-tracker-backend/internal/domain"
	"github.com/toby/expense-tracker-backend/internal/repository"
)

// FakeUserRepository is an in-memory repository.UserRepository for tests.
// Error fields inject failures for the unhappy paths.
type FakeUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User

	CreateErr error
	FindErr   error
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (f *FakeUserRepository) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateErr != nil {
		return f.CreateErr
	}

	user.Email = auth.NormalizeEmail(user.Email)
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
		user.UpdatedAt = user.CreatedAt
	}

	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *FakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.FindErr != nil {
		return nil, f.FindErr
	}

	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (f *FakeUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.FindErr != nil {
		return nil, f.FindErr
	}

	email = auth.NormalizeEmail(email)
	for _, u := range f.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Delete removes a user directly, bypassing any service logic. Used to model
// a valid token whose account has since disappeared.
func (f *FakeUserRepository) Delete(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}
