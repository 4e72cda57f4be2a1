package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toby/expense-tracker-backend/internal/apperror"
	"github.com/toby/expense-tracker-backend/internal/auth"
	"github.com/toby/expense-tracker-backend/internal/domain"
	"github.com/toby/expense-tracker-backend/internal/repository"
)

const (
	msgInvalidEmail   = "Invalid email format"
	msgWeakPassword   = "Password is not valid, must be at least 8 characters long, must contain alpha numeric characters and at least one uppercase and lowercase character"
	msgEmailTaken     = "User with this email already exists"
	msgBadCredentials = "Invalid email or password"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account and returns its public projection. Checks
// run cheapest-first: email format, then password strength, then the conflict
// lookup, and only then the hash and insert. The unique email index backs the
// conflict pre-check against concurrent registrations.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	email = auth.NormalizeEmail(email)

	if !auth.IsValidEmail(email) {
		return nil, apperror.NewValidation(msgInvalidEmail)
	}
	if !auth.IsStrongPassword(password) {
		return nil, apperror.NewValidation(msgWeakPassword)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperror.NewConflict(msgEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.NewConflict(msgEmailTaken)
		}
		return nil, err
	}

	return user.Public(), nil
}

// Login never reveals whether the account exists: an unknown email and a
// wrong password produce the same error. The password comparison runs even
// against a blank stored hash so the failure shape stays uniform.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewAuthentication(msgBadCredentials)
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, apperror.NewAuthentication(msgBadCredentials)
	}

	return user.Public(), nil
}

// GenerateToken issues a session token for the given identity.
func (s *AuthService) GenerateToken(user *domain.PublicUser) (string, error) {
	return s.tokens.Issue(auth.TokenPayload{UserID: user.ID.String(), Email: user.Email})
}

// VerifyToken forwards to the token service; callers branch on the result.
func (s *AuthService) VerifyToken(token string) auth.VerifyResult {
	return s.tokens.Verify(token)
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
