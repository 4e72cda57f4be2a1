package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/toby/expense-tracker-backend/internal/api/handlers"
	"github.com/toby/expense-tracker-backend/internal/api/middleware"
	"github.com/toby/expense-tracker-backend/internal/api/response"
	"github.com/toby/expense-tracker-backend/internal/config"
	"github.com/toby/expense-tracker-backend/internal/service"
)

func NewRouter(services *service.Services, log *slog.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	errs := response.NewErrorHandler(log, cfg.IsProduction())

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", handlers.Health)

	authHandler := handlers.NewAuthHandler(services.Auth)

	r.Route("/api/auth", func(r chi.Router) {
		// Public auth routes; bodies are validated before the handler runs.
		r.With(middleware.ValidateBody[handlers.RegisterRequest](errs)).
			Post("/register", errs.Wrap(authHandler.Register))
		r.With(middleware.ValidateBody[handlers.LoginRequest](errs)).
			Post("/login", errs.Wrap(authHandler.Login))

		// Protected auth routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, errs))
			r.Get("/me", errs.Wrap(authHandler.Me))
		})
	})

	return r
}
