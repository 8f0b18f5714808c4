package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type venueService struct {
	venueRepo domain.VenueRepository
}

// NewVenueService creates the venue singleton service.
func NewVenueService(venueRepo domain.VenueRepository) domain.VenueService {
	return &venueService{venueRepo: venueRepo}
}

func (s *venueService) Get(ctx context.Context) (*domain.VenueInfo, error) {
	venue, err := s.venueRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Update(ctx context.Context, in domain.VenueInput) (*domain.VenueInfo, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: venue name is required", domain.ErrInvalidInput)
	}

	eventAt, err := parseEventAt(strings.TrimSpace(in.EventDate), strings.TrimSpace(in.EventTime))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	venue, err := s.venueRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get venue: %w", err)
		}
		venue = &domain.VenueInfo{CreatedAt: now}
	}

	venue.Name = name
	venue.Address = strings.TrimSpace(in.Address)
	venue.MapLink = strings.TrimSpace(in.MapLink)
	venue.Description = strings.TrimSpace(in.Description)
	venue.EventAt = eventAt
	venue.UpdatedAt = now

	if err := s.venueRepo.Upsert(ctx, venue); err != nil {
		return nil, fmt.Errorf("save venue: %w", err)
	}
	return venue, nil
}

// parseEventAt combines the date ("2006-01-02") and time ("15:04") form
// fields. A date without a time defaults to midnight; a time without a date
// is rejected; both empty means no event datetime yet.
func parseEventAt(date, clock string) (*time.Time, error) {
	if date == "" {
		if clock != "" {
			return nil, fmt.Errorf("%w: event time given without a date", domain.ErrInvalidInput)
		}
		return nil, nil
	}
	layout, value := "2006-01-02", date
	if clock != "" {
		layout, value = "2006-01-02 15:04", date+" "+clock
	}
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed event date or time", domain.ErrInvalidInput)
	}
	return &t, nil
}
