package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// ConfirmRequest is the request body for POST /api/rsvp/guests/{guestID}
type ConfirmRequest struct {
	Attending bool `json:"attending"`
	PlusOnes  int  `json:"plus_ones"`
}

// Validate implements Validator.
func (c ConfirmRequest) Validate() []string {
	var errs []string
	if c.PlusOnes < 0 {
		errs = append(errs, "plus_ones cannot be negative")
	}
	return errs
}

// ConfirmGroupRequest is the request body for POST /api/rsvp/groups/{groupID}
type ConfirmGroupRequest struct {
	Attending bool `json:"attending"`
	// Override also flips guests who already answered the other way.
	Override bool `json:"override"`
}

// ConfirmGroupResponse is the response body for POST /api/rsvp/groups/{groupID}
type ConfirmGroupResponse struct {
	Updated int `json:"updated"`
}

// RSVPController handles the public guest-facing endpoints: name search,
// group lookup, and confirmations. None of them require authentication.
type RSVPController struct {
	Logger *slog.Logger
	Search domain.SearchService
	RSVP   domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, search domain.SearchService, rsvp domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger: logger,
		Search: search,
		RSVP:   rsvp,
	}
}

// SearchGuests godoc
// @Summary Search guests by name
// @Description Case-insensitive substring search on guest names. Queries shorter than 2 characters return an empty list. At most 10 matches, each with its group and groupmates.
// @Tags rsvp
// @Produce json
// @Param q query string true "Name fragment to search for"
// @Success 200 {object} helpers.APIResponse "data contains the matches"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/search [get]
func (c *RSVPController) SearchGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches, err := c.Search.Search(r.Context(), query)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}

// GetGuestGroup godoc
// @Summary Get a guest and its group
// @Description Returns the guest together with everyone sharing its group, so a whole family can answer in one screen. An ungrouped guest comes back alone.
// @Tags rsvp
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the guest with groupmates"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/{guestID}/group [get]
func (c *RSVPController) GetGuestGroup(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	match, err := c.Search.GuestGroup(r.Context(), guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, match)
}

// ConfirmGuest godoc
// @Summary Confirm or decline for one guest
// @Description Records the guest's answer. Declining forces plus_ones to 0; confirming accepts up to 10 companions. Repeating the same answer is a no-op that keeps the original timestamp.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body ConfirmRequest true "Attendance answer"
// @Success 200 {object} helpers.APIResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp/guests/{guestID} [post]
func (c *RSVPController) ConfirmGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	var req ConfirmRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.RSVP.Confirm(r.Context(), guestID, req.Attending, req.PlusOnes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// ConfirmGroup godoc
// @Summary Confirm or decline for a whole group
// @Description Applies the answer to every pending guest in the group atomically. With override=true, guests who already answered the other way are flipped too. Returns how many guests changed.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID (UUID)"
// @Param body body ConfirmGroupRequest true "Attendance answer for the group"
// @Success 200 {object} helpers.APIResponse "data contains the updated count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp/groups/{groupID} [post]
func (c *RSVPController) ConfirmGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	var req ConfirmGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.RSVP.ConfirmGroup(r.Context(), groupID, req.Attending, req.Override)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "group not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ConfirmGroupResponse{Updated: updated})
}
