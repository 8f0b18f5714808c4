package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/domain"
)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Username) == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	Admin     *domain.Admin `json:"admin"`
}

// ChangePasswordRequest is the request body for POST /admin/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate implements Validator.
func (c ChangePasswordRequest) Validate() []string {
	var errs []string
	if c.CurrentPassword == "" {
		errs = append(errs, "current_password is required")
	}
	if c.NewPassword == "" {
		errs = append(errs, "new_password is required")
	}
	if c.ConfirmPassword == "" {
		errs = append(errs, "confirm_password is required")
	}
	return errs
}

// ChangePasswordResponse is the response body for POST /admin/password
type ChangePasswordResponse struct {
	Status string `json:"status"`
}

// AuthController handles admin authentication endpoints.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in as administrator
// @Description Authenticate with username and password. Returns a Bearer JWT for the admin endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, admin, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", Admin: admin})
}

// GetMe godoc
// @Summary Get the authenticated admin
// @Description Returns the admin account behind the Bearer token. Requires authentication.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the admin"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/me [get]
func (c *AuthController) GetMe(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	admin, err := c.Service.GetByID(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "admin not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}

// ChangePassword godoc
// @Summary Change the admin password
// @Description Verifies the current password and replaces it. The new password must be confirmed and at least 6 characters. Requires authentication.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (wrong current password)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/password [post]
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ChangePasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.ChangePassword(r.Context(), adminID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "current password is incorrect")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "admin not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChangePasswordResponse{Status: "updated"})
}
