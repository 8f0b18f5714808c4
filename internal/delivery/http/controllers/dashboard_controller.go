package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// HealthResponse is the response body for GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DashboardController handles the admin dashboard and the health check.
type DashboardController struct {
	Logger  *slog.Logger
	Service domain.StatsService
	DB      Pinger
}

func NewDashboardController(logger *slog.Logger, svc domain.StatsService, db Pinger) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Service: svc,
		DB:      db,
	}
}

// GetDashboard godoc
// @Summary Get dashboard statistics
// @Description Returns guest counts by status, the confirmation percentage, group totals with per-group confirmations, and the number of active gifts. Requires authentication.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the dashboard aggregates"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/dashboard [get]
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.Service.Dashboard(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}

// Health godoc
// @Summary Health check
// @Description Readiness probe. Pings the database and returns ok when it answers.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /healthz [get]
func (c *DashboardController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
