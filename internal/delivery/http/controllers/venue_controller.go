package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// VenueRequest is the request body for PUT /admin/venue.
// EventDate is "YYYY-MM-DD" and EventTime is "HH:MM"; both are optional,
// but a time without a date is rejected.
type VenueRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	MapLink     string `json:"map_link"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
}

// Validate implements Validator.
func (v VenueRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(v.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// VenueController handles the event venue endpoints, public and admin.
type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Service: svc,
	}
}

// GetVenue godoc
// @Summary Get the venue
// @Description Returns the single venue record with address, map link, and event date. No authentication required.
// @Tags venue
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the venue"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (venue not set yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/venue [get]
func (c *VenueController) GetVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := c.Service.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "venue not set")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// UpdateVenue godoc
// @Summary Set or update the venue
// @Description Creates the venue record on first call and replaces it afterwards; there is always at most one. Requires authentication.
// @Tags venue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VenueRequest true "Venue data"
// @Success 200 {object} helpers.APIResponse "data contains the venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (e.g. bad date format)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/venue [put]
func (c *VenueController) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	venue, err := c.Service.Update(r.Context(), domain.VenueInput{
		Name:        req.Name,
		Address:     req.Address,
		MapLink:     req.MapLink,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}
