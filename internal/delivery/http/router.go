package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/delivery/http/web"
	"weddingrsvp/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	RSVP          *controllers.RSVPController
	Guests        *controllers.GuestController
	Groups        *controllers.GroupController
	Gifts         *controllers.GiftController
	Venue         *controllers.VenueController
	Dashboard     *controllers.DashboardController
	Notifications *controllers.NotificationController
	Pages         *web.Handler
}

// NewRouter initializes the HTTP router with all application routes.
// Everything under /admin requires a Bearer token; the /api routes and the
// pages are public.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Pages
	mux.HandleFunc("GET /{$}", c.Pages.Index)
	mux.HandleFunc("GET /rsvp", c.Pages.RSVP)
	mux.HandleFunc("GET /gifts-page", c.Pages.Gifts)

	// Public API
	mux.HandleFunc("GET /api/guests/search", c.RSVP.SearchGuests)
	mux.HandleFunc("GET /api/guests/{guestID}/group", c.RSVP.GetGuestGroup)
	mux.HandleFunc("POST /api/rsvp/guests/{guestID}", c.RSVP.ConfirmGuest)
	mux.HandleFunc("POST /api/rsvp/groups/{groupID}", c.RSVP.ConfirmGroup)
	mux.HandleFunc("GET /api/venue", c.Venue.GetVenue)
	mux.HandleFunc("GET /api/gifts", c.Gifts.GetRegistry)
	mux.HandleFunc("GET /healthz", c.Dashboard.Health)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Admin
	mux.HandleFunc("GET /admin/me", auth(c.Auth.GetMe))
	mux.HandleFunc("POST /admin/password", auth(c.Auth.ChangePassword))
	mux.HandleFunc("GET /admin/dashboard", auth(c.Dashboard.GetDashboard))

	mux.HandleFunc("GET /admin/guests", auth(c.Guests.ListGuests))
	mux.HandleFunc("POST /admin/guests", auth(c.Guests.CreateGuest))
	mux.HandleFunc("GET /admin/guests/{guestID}", auth(c.Guests.GetGuest))
	mux.HandleFunc("PUT /admin/guests/{guestID}", auth(c.Guests.UpdateGuest))
	mux.HandleFunc("DELETE /admin/guests/{guestID}", auth(c.Guests.DeleteGuest))
	mux.HandleFunc("PUT /admin/guests/{guestID}/group", auth(c.Guests.AssignGroup))
	mux.HandleFunc("DELETE /admin/guests/{guestID}/group", auth(c.Guests.RemoveFromGroup))

	mux.HandleFunc("GET /admin/groups", auth(c.Groups.ListGroups))
	mux.HandleFunc("POST /admin/groups", auth(c.Groups.CreateGroup))
	mux.HandleFunc("PUT /admin/groups/{groupID}", auth(c.Groups.UpdateGroup))
	mux.HandleFunc("DELETE /admin/groups/{groupID}", auth(c.Groups.DeleteGroup))
	mux.HandleFunc("GET /admin/groups/{groupID}/members", auth(c.Groups.GetGroupMembers))

	mux.HandleFunc("GET /admin/gifts", auth(c.Gifts.ListGifts))
	mux.HandleFunc("POST /admin/gifts", auth(c.Gifts.CreateGift))
	mux.HandleFunc("PUT /admin/gifts/{giftID}", auth(c.Gifts.UpdateGift))
	mux.HandleFunc("DELETE /admin/gifts/{giftID}", auth(c.Gifts.DeleteGift))

	mux.HandleFunc("GET /admin/venue", auth(c.Venue.GetVenue))
	mux.HandleFunc("PUT /admin/venue", auth(c.Venue.UpdateVenue))

	mux.HandleFunc("POST /admin/notifications", auth(c.Notifications.SendNotifications))
	mux.HandleFunc("GET /admin/notifications/status", auth(c.Notifications.GetStatus))
	mux.HandleFunc("GET /admin/notifications/recipients", auth(c.Notifications.ListRecipients))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
