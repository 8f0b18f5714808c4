package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"weddingrsvp/internal/domain"
)

func TestVenueService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("first save creates the singleton", func(t *testing.T) {
		repo := &mockVenueRepo{}
		svc := NewVenueService(repo)

		venue, err := svc.Update(ctx, domain.VenueInput{
			Name:      "Quinta do Lago",
			Address:   "Estrada Velha, 100",
			EventDate: "2026-09-12",
			EventTime: "17:30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if venue.ID == "" {
			t.Error("expected an ID after insert")
		}
		if venue.EventAt == nil {
			t.Fatal("expected event datetime")
		}
		want := time.Date(2026, 9, 12, 17, 30, 0, 0, time.Local)
		if !venue.EventAt.Equal(want) {
			t.Errorf("expected %v, got %v", want, venue.EventAt)
		}
	})

	t.Run("second save overwrites in place", func(t *testing.T) {
		repo := &mockVenueRepo{venue: &domain.VenueInfo{ID: "venue-1", Name: "Old place"}}
		svc := NewVenueService(repo)

		venue, err := svc.Update(ctx, domain.VenueInput{Name: "New place"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if venue.ID != "venue-1" {
			t.Errorf("expected existing ID kept, got %q", venue.ID)
		}
		if repo.venue.Name != "New place" {
			t.Errorf("expected name replaced, got %q", repo.venue.Name)
		}
	})

	t.Run("date without time defaults to midnight", func(t *testing.T) {
		svc := NewVenueService(&mockVenueRepo{})
		venue, err := svc.Update(ctx, domain.VenueInput{Name: "V", EventDate: "2026-09-12"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 9, 12, 0, 0, 0, 0, time.Local)
		if venue.EventAt == nil || !venue.EventAt.Equal(want) {
			t.Errorf("expected %v, got %v", want, venue.EventAt)
		}
	})

	t.Run("time without date is rejected", func(t *testing.T) {
		svc := NewVenueService(&mockVenueRepo{})
		if _, err := svc.Update(ctx, domain.VenueInput{Name: "V", EventTime: "17:30"}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		svc := NewVenueService(&mockVenueRepo{})
		if _, err := svc.Update(ctx, domain.VenueInput{Name: "V", EventDate: "12/09/2026"}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		svc := NewVenueService(&mockVenueRepo{})
		if _, err := svc.Update(ctx, domain.VenueInput{Name: " "}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestVenueService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not set yet", func(t *testing.T) {
		svc := NewVenueService(&mockVenueRepo{})
		if _, err := svc.Get(ctx); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
