// Seeds development accounts through the service layer so stored hashes and
// normalization match production behavior exactly.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/toby/expense-tracker-backend/internal/apperror"
	"github.com/toby/expense-tracker-backend/internal/auth"
	"github.com/toby/expense-tracker-backend/internal/config"
	"github.com/toby/expense-tracker-backend/internal/repository/postgres"
	"github.com/toby/expense-tracker-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	users := postgres.NewUserRepository(db)
	authService := service.NewAuthService(users, auth.NewTokenService(cfg.JWTSecret))

	seeds := []struct {
		name     string
		email    string
		password string
	}{
		{"Demo User", "demo@example.com", "DemoPass123"},
		{"Toby", "toby@example.com", "WeWork441$"},
	}

	ctx := context.Background()
	for _, s := range seeds {
		if _, err := authService.Register(ctx, s.name, s.email, s.password); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Status == http.StatusConflict {
				log.Printf("user %s already exists, skipping", s.email)
				continue
			}
			log.Fatalf("failed to seed %s: %v", s.email, err)
		}
		log.Printf("seeded user %s", s.email)
	}
}
