package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"weddingrsvp/internal/domain"
)

// templateCustom selects the admin-written message instead of a canned one.
const templateCustom = "custom"

var knownTemplates = map[string]bool{
	"reminder":      true,
	"thank_you":     true,
	"venue_update":  true,
	"gift_registry": true,
	templateCustom:  true,
}

type notificationService struct {
	guestRepo domain.GuestRepository
	venueRepo domain.VenueRepository
	messenger domain.Messenger
	renderer  domain.MessageRenderer
	baseURL   string
	logger    *slog.Logger
}

// NewNotificationService wires the messaging gateway to guest data. Sends are
// fire-and-forget with respect to stored data: no repository write ever
// depends on a delivery result.
func NewNotificationService(
	guestRepo domain.GuestRepository,
	venueRepo domain.VenueRepository,
	messenger domain.Messenger,
	renderer domain.MessageRenderer,
	baseURL string,
	logger *slog.Logger,
) domain.NotificationService {
	return &notificationService{
		guestRepo: guestRepo,
		venueRepo: venueRepo,
		messenger: messenger,
		renderer:  renderer,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

func (s *notificationService) Enabled() bool {
	return s.messenger.Enabled()
}

func (s *notificationService) Recipients(ctx context.Context) ([]*domain.Guest, error) {
	guests, err := s.guestRepo.ListWithPhone(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests with phone: %w", err)
	}
	return guests, nil
}

func (s *notificationService) SendToGuests(ctx context.Context, guestIDs []string, templateName, customMessage string) (*domain.SendReport, error) {
	if len(guestIDs) == 0 {
		return nil, fmt.Errorf("%w: no guests selected", domain.ErrInvalidInput)
	}
	if !knownTemplates[templateName] {
		return nil, fmt.Errorf("%w: unknown message template %q", domain.ErrInvalidInput, templateName)
	}
	if templateName == templateCustom && strings.TrimSpace(customMessage) == "" {
		return nil, fmt.Errorf("%w: custom message is empty", domain.ErrInvalidInput)
	}

	data := s.messageData(ctx)
	report := &domain.SendReport{Total: len(guestIDs)}

	for _, id := range guestIDs {
		guest, err := s.guestRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				report.Failed = append(report.Failed, domain.SendFailure{GuestID: id, Reason: "unknown guest"})
				continue
			}
			return nil, fmt.Errorf("get guest: %w", err)
		}
		if guest.Phone == "" {
			report.Skipped++
			continue
		}
		if !s.messenger.Enabled() {
			report.Skipped++
			continue
		}

		body := customMessage
		if templateName != templateCustom {
			data.GuestName = guest.Name
			body, err = s.renderer.Render(templateName, data)
			if err != nil {
				return nil, err
			}
		}
		if err := s.messenger.Send(ctx, guest.Phone, body); err != nil {
			s.logger.Warn("whatsapp send failed", "guest_id", guest.ID, "err", err)
			report.Failed = append(report.Failed, domain.SendFailure{GuestID: guest.ID, Name: guest.Name, Reason: err.Error()})
			continue
		}
		report.Sent++
	}
	return report, nil
}

func (s *notificationService) SendThankYou(ctx context.Context, guest *domain.Guest) error {
	if guest.Phone == "" {
		return nil
	}
	if !s.messenger.Enabled() {
		return domain.ErrProviderUnavailable
	}
	data := s.messageData(ctx)
	data.GuestName = guest.Name
	body, err := s.renderer.Render("thank_you", data)
	if err != nil {
		return err
	}
	return s.messenger.Send(ctx, guest.Phone, body)
}

// messageData builds template data from the venue singleton. A missing venue
// is not an error; the fields just stay blank.
func (s *notificationService) messageData(ctx context.Context) *domain.MessageData {
	data := &domain.MessageData{
		RSVPLink: s.baseURL + "/rsvp",
		GiftLink: s.baseURL + "/gifts-page",
	}
	venue, err := s.venueRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("load venue for message", "err", err)
		}
		return data
	}
	data.Venue = venue.Name
	data.Address = venue.Address
	if venue.EventAt != nil {
		data.Date = venue.EventAt.Format("02/01/2006")
		data.Time = venue.EventAt.Format("15:04")
	}
	return data
}
