package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// SendNotificationsRequest is the request body for POST /admin/notifications.
// Template selects a canned message ("reminder", "thank_you", "venue_update",
// "gift_registry") or "custom", in which case Message is sent verbatim.
type SendNotificationsRequest struct {
	GuestIDs []string `json:"guest_ids"`
	Template string   `json:"template"`
	Message  string   `json:"message"`
}

// Validate implements Validator.
func (s SendNotificationsRequest) Validate() []string {
	var errs []string
	if len(s.GuestIDs) == 0 {
		errs = append(errs, "guest_ids is required")
	}
	if s.Template == "" {
		errs = append(errs, "template is required")
	}
	return errs
}

// NotificationStatusResponse is the response body for GET /admin/notifications/status
type NotificationStatusResponse struct {
	Enabled bool `json:"enabled"`
}

// NotificationController handles WhatsApp messaging endpoints.
type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendNotifications godoc
// @Summary Send WhatsApp messages to guests
// @Description Renders the chosen template (or the custom message) and sends it to each listed guest. Guests without a phone number are skipped; when the gateway is not configured every send is skipped. The report counts sent, skipped, and failed deliveries. Requires authentication.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendNotificationsRequest true "Recipients and message"
// @Success 200 {object} helpers.APIResponse "data contains the delivery report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown template, empty custom message)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/notifications [post]
func (c *NotificationController) SendNotifications(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report, err := c.Service.SendToGuests(r.Context(), req.GuestIDs, req.Template, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// ListRecipients godoc
// @Summary List reachable guests
// @Description Lists the guests that have a phone number on file, i.e. the candidates for a WhatsApp send. Requires authentication.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the guest list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/notifications/recipients [get]
func (c *NotificationController) ListRecipients(w http.ResponseWriter, r *http.Request) {
	guests, err := c.Service.Recipients(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guests)
}

// GetStatus godoc
// @Summary Get the messaging gateway status
// @Description Tells whether the WhatsApp gateway is configured. The admin UI hides the send button when it is not. Requires authentication.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains enabled"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/notifications/status [get]
func (c *NotificationController) GetStatus(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, NotificationStatusResponse{Enabled: c.Service.Enabled()})
}
