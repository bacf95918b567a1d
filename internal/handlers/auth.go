package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/sanctuary-tracker/api/internal/logger"
	"github.com/sanctuary-tracker/api/internal/request"
	"github.com/sanctuary-tracker/api/internal/services/auth"
	"github.com/sanctuary-tracker/api/internal/validation"
)

// AuthHandler handles registration, login, and identity lookups
type AuthHandler struct {
	auth   *auth.Service
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

type authResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body", h.logger)
		return
	}

	req.Username = validation.SanitizeText(req.Username)
	req.Email = validation.SanitizeText(req.Email)

	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation Error", "Invalid registration fields", h.logger)
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			respondError(w, http.StatusConflict, "Conflict", "Username or email already in use", h.logger)
			return
		}
		h.logger.Error("register_failed", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.logger.Error("token_generation_failed", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	h.logger.Info("user_registered",
		zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
	)
	respondJSON(w, http.StatusCreated, authResponse{User: user, Token: token}, h.logger)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body", h.logger)
		return
	}

	req.Login = validation.SanitizeText(req.Login)

	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation Error", "Login and password are required", h.logger)
		return
	}

	user, err := h.auth.Login(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "Invalid credentials", h.logger)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.logger.Error("token_generation_failed", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	h.logger.Info("user_logged_in",
		zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
	)
	respondJSON(w, http.StatusOK, authResponse{User: user, Token: token}, h.logger)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, user, h.logger)
}
