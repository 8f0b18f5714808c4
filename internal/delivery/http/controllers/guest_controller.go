package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// CreateGuestRequest is the request body for POST /admin/guests
type CreateGuestRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	GroupID *string `json:"group_id"`
}

// Validate implements Validator.
func (g CreateGuestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UpdateGuestRequest is the request body for PUT /admin/guests/{guestID}
type UpdateGuestRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	GroupID    *string `json:"group_id"`
	RSVPStatus string  `json:"rsvp_status"`
}

// Validate implements Validator.
func (g UpdateGuestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, "name is required")
	}
	if g.RSVPStatus != "" && !domain.RSVPStatus(g.RSVPStatus).Valid() {
		errs = append(errs, "rsvp_status must be \"pending\", \"confirmed\", or \"declined\"")
	}
	return errs
}

// AssignGroupRequest is the request body for PUT /admin/guests/{guestID}/group
type AssignGroupRequest struct {
	GroupID string `json:"group_id"`
}

// Validate implements Validator.
func (a AssignGroupRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.GroupID) == "" {
		errs = append(errs, "group_id is required")
	}
	return errs
}

// DeleteGuestResponse is the response body for DELETE /admin/guests/{guestID}
type DeleteGuestResponse struct {
	Status string `json:"status"`
}

// GuestController handles the admin guest CRUD endpoints.
type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// ListGuests godoc
// @Summary List all guests
// @Description Returns every guest ordered by name. Requires authentication.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the guests"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guests)
}

// CreateGuest godoc
// @Summary Create a guest
// @Description Creates a guest with an optional phone and group. Guest names are unique. Requires authentication.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGuestRequest true "Guest data"
// @Success 201 {object} helpers.APIResponse "data contains the created guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests [post]
func (c *GuestController) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, err := c.Service.Create(r.Context(), req.Name, req.Phone, req.GroupID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a guest with this name already exists")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, guest)
}

// GetGuest godoc
// @Summary Get a guest
// @Description Returns one guest by ID. Requires authentication.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the guest"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests/{guestID} [get]
func (c *GuestController) GetGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	guest, err := c.Service.GetByID(r.Context(), guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// UpdateGuest godoc
// @Summary Update a guest
// @Description Replaces the guest's name, phone, group, and RSVP status. Setting the status back to pending clears the answer timestamp and plus-ones. Requires authentication.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body UpdateGuestRequest true "Guest fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests/{guestID} [put]
func (c *GuestController) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	var req UpdateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	status := domain.RSVPStatus(req.RSVPStatus)
	if req.RSVPStatus == "" {
		status = domain.RSVPPending
	}
	guest, err := c.Service.Update(r.Context(), guestID, req.Name, req.Phone, req.GroupID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a guest with this name already exists")
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

// DeleteGuest godoc
// @Summary Delete a guest
// @Description Removes the guest permanently. Requires authentication.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests/{guestID} [delete]
func (c *GuestController) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	if err := c.Service.Delete(r.Context(), guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGuestResponse{Status: "deleted"})
}

// AssignGroup godoc
// @Summary Assign a guest to a group
// @Description Moves the guest into the given group, replacing any previous membership. Requires authentication.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body AssignGroupRequest true "Target group"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (guest or group)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests/{guestID}/group [put]
func (c *GuestController) AssignGroup(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	var req AssignGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.AssignGroup(r.Context(), guestID, req.GroupID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest or group not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGuestResponse{Status: "assigned"})
}

// RemoveFromGroup godoc
// @Summary Remove a guest from its group
// @Description Clears the guest's group membership. The guest itself is kept. Requires authentication.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/guests/{guestID}/group [delete]
func (c *GuestController) RemoveFromGroup(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestID")
	if guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing guestID")
		return
	}
	if err := c.Service.RemoveFromGroup(r.Context(), guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGuestResponse{Status: "removed"})
}
