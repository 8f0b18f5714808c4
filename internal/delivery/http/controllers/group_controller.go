package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// GroupRequest is the request body for POST /admin/groups and PUT /admin/groups/{groupID}
type GroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (g GroupRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// DeleteGroupResponse is the response body for DELETE /admin/groups/{groupID}
type DeleteGroupResponse struct {
	Status string `json:"status"`
}

// GroupController handles the admin guest-group endpoints.
type GroupController struct {
	Logger  *slog.Logger
	Service domain.GroupService
}

func NewGroupController(logger *slog.Logger, svc domain.GroupService) *GroupController {
	return &GroupController{
		Logger:  logger,
		Service: svc,
	}
}

// ListGroups godoc
// @Summary List all groups
// @Description Returns every guest group ordered by name. Requires authentication.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the groups"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/groups [get]
func (c *GroupController) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create a group
// @Description Creates a guest group (a family or a table). Group names are unique. Requires authentication.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GroupRequest true "Group data"
// @Success 201 {object} helpers.APIResponse "data contains the created group"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/groups [post]
func (c *GroupController) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	group, err := c.Service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a group with this name already exists")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, group)
}

// UpdateGroup godoc
// @Summary Update a group
// @Description Replaces the group's name and description. Requires authentication.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID (UUID)"
// @Param body body GroupRequest true "Group fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated group"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/groups/{groupID} [put]
func (c *GroupController) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	var req GroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	group, err := c.Service.Update(r.Context(), groupID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "group not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a group with this name already exists")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, group)
}

// DeleteGroup godoc
// @Summary Delete a group
// @Description Removes an empty group. A group that still has guests is refused with 409; reassign or delete the guests first. Requires authentication.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (group not empty)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/groups/{groupID} [delete]
func (c *GroupController) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	if err := c.Service.Delete(r.Context(), groupID); err != nil {
		if errors.Is(err, domain.ErrGroupNotEmpty) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "group not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGroupResponse{Status: "deleted"})
}

// GetGroupMembers godoc
// @Summary List group members
// @Description Returns the group's members plus every ungrouped guest, so the admin screen can offer candidates to add. Requires authentication.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains members and available guests"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/groups/{groupID}/members [get]
func (c *GroupController) GetGroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing groupID")
		return
	}
	members, err := c.Service.Members(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "group not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}
