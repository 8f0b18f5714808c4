package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// GiftRequest is the request body for POST /admin/gifts and PUT /admin/gifts/{giftID}.
// Price is a decimal string like "149.90"; empty means no price.
type GiftRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	ImageURL       string `json:"image_url"`
	PixKey         string `json:"pix_key"`
	PixLink        string `json:"pix_link"`
	CreditCardLink string `json:"credit_card_link"`
	Active         bool   `json:"active"`
}

// Validate implements Validator.
func (g GiftRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

func (g GiftRequest) toInput() domain.GiftInput {
	return domain.GiftInput{
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		ImageURL:    g.ImageURL,
		PixKey:      g.PixKey,
		PixLink:     g.PixLink,
		CardLink:    g.CreditCardLink,
		Active:      g.Active,
	}
}

// DeleteGiftResponse is the response body for DELETE /admin/gifts/{giftID}
type DeleteGiftResponse struct {
	Status string `json:"status"`
}

// GiftController handles the gift registry endpoints, public and admin.
type GiftController struct {
	Logger  *slog.Logger
	Service domain.GiftService
}

func NewGiftController(logger *slog.Logger, svc domain.GiftService) *GiftController {
	return &GiftController{
		Logger:  logger,
		Service: svc,
	}
}

// GetRegistry godoc
// @Summary Get the public gift registry
// @Description Returns the gifts split into available and already-taken lists. No authentication required.
// @Tags gifts
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains available and taken gifts"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/gifts [get]
func (c *GiftController) GetRegistry(w http.ResponseWriter, r *http.Request) {
	registry, err := c.Service.Registry(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registry)
}

// ListGifts godoc
// @Summary List all gifts
// @Description Returns every gift, active or not, newest first. Requires authentication.
// @Tags gifts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the gifts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/gifts [get]
func (c *GiftController) ListGifts(w http.ResponseWriter, r *http.Request) {
	gifts, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gifts)
}

// CreateGift godoc
// @Summary Create a gift
// @Description Adds a gift to the registry with optional price and payment links (PIX key, PIX link, card link). Requires authentication.
// @Tags gifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GiftRequest true "Gift data"
// @Success 201 {object} helpers.APIResponse "data contains the created gift"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (e.g. malformed or negative price)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/gifts [post]
func (c *GiftController) CreateGift(w http.ResponseWriter, r *http.Request) {
	var req GiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gift, err := c.Service.Create(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, gift)
}

// UpdateGift godoc
// @Summary Update a gift
// @Description Replaces the gift's details. Deactivating a gift (active=false) marks it as taken on the public registry. Requires authentication.
// @Tags gifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param giftID path string true "Gift ID (UUID)"
// @Param body body GiftRequest true "Gift fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated gift"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/gifts/{giftID} [put]
func (c *GiftController) UpdateGift(w http.ResponseWriter, r *http.Request) {
	giftID := r.PathValue("giftID")
	if giftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing giftID")
		return
	}
	var req GiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gift, err := c.Service.Update(r.Context(), giftID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "gift not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, gift)
}

// DeleteGift godoc
// @Summary Delete a gift
// @Description Removes the gift from the registry permanently. Requires authentication.
// @Tags gifts
// @Produce json
// @Security BearerAuth
// @Param giftID path string true "Gift ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/gifts/{giftID} [delete]
func (c *GiftController) DeleteGift(w http.ResponseWriter, r *http.Request) {
	giftID := r.PathValue("giftID")
	if giftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing giftID")
		return
	}
	if err := c.Service.Delete(r.Context(), giftID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "gift not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteGiftResponse{Status: "deleted"})
}
