// Package web serves the guest-facing HTML pages. The pages are embedded in
// the binary and rendered with html/template; dynamic data is fetched from
// the JSON API by the pages themselves.
package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Landing page shows only a teaser of the registry.
const indexGiftCount = 3

// PageData is passed to every page template.
type PageData struct {
	Title string
	Venue *domain.VenueInfo
	Gifts []*domain.Gift
}

// Handler renders the public pages.
type Handler struct {
	logger    *slog.Logger
	venueRepo domain.VenueRepository
	giftRepo  domain.GiftRepository
	templates *template.Template
}

// NewHandler parses the embedded page templates. It returns an error when a
// template fails to parse so a broken build is caught at startup.
func NewHandler(logger *slog.Logger, venueRepo domain.VenueRepository, giftRepo domain.GiftRepository) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		logger:    logger,
		venueRepo: venueRepo,
		giftRepo:  giftRepo,
		templates: tmpl,
	}, nil
}

// Index serves the landing page with the venue details and the newest gifts.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Wedding")
	gifts, err := h.giftRepo.List(r.Context(), true)
	if err != nil {
		h.logger.Warn("load gifts for landing page", "err", err)
	} else {
		if len(gifts) > indexGiftCount {
			gifts = gifts[:indexGiftCount]
		}
		data.Gifts = gifts
	}
	h.render(w, r, "index.html", data)
}

// RSVP serves the confirmation page.
func (h *Handler) RSVP(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "rsvp.html", h.pageData(r, "RSVP"))
}

// Gifts serves the gift registry page.
func (h *Handler) Gifts(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "gifts.html", h.pageData(r, "Gift Registry"))
}

func (h *Handler) pageData(r *http.Request, title string) PageData {
	data := PageData{Title: title}
	venue, err := h.venueRepo.Get(r.Context())
	if err == nil {
		data.Venue = venue
	} else if !errors.Is(err, domain.ErrNotFound) {
		h.logger.Warn("load venue for page", "err", err)
	}
	return data
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render page", "page", name, "err", err)
	}
}
