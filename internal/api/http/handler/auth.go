package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error)
	Login(ctx context.Context, params model.LoginParams) (model.AuthResult, error)
}

// Auth handles authentication endpoints.
type Auth struct {
	authService AuthService
	response    *response.Writer
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, response *response.Writer, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		response:    response,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.response.Error(w, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	result, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusCreated, "User registered successfully", result)
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.response.Error(w, err)
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	result, err := h.authService.Login(r.Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusOK, "Login successful", result)
}
