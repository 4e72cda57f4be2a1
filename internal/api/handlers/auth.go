package handlers

import (
	"net/http"

	"github.com/toby/expense-tracker-backend/internal/api/middleware"
	"github.com/toby/expense-tracker-backend/internal/api/response"
	"github.com/toby/expense-tracker-backend/internal/apperror"
	"github.com/toby/expense-tracker-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	req := middleware.Body[RegisterRequest](r.Context())

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return err
	}

	response.JSON(w, http.StatusCreated, response.Envelope{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
		Token:   token,
	})
	return nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	req := middleware.Body[LoginRequest](r.Context())

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return err
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User logged in successfully",
		Data:    user,
		Token:   token,
	})
	return nil
}

// Me returns the identity the auth middleware attached to the request.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) error {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		return apperror.NewAuthentication("Could not validate token")
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    user,
	})
	return nil
}
