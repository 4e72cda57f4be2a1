package service

import (
	"github.com/toby/expense-tracker-backend/internal/auth"
	"github.com/toby/expense-tracker-backend/internal/repository"
)

type Services struct {
	Auth *AuthService
}

func NewServices(users repository.UserRepository, tokens *auth.TokenService) *Services {
	return &Services{
		Auth: NewAuthService(users, tokens),
	}
}
