package services

import (
	"context"
	"errors"
	"testing"

	"weddingrsvp/internal/domain"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	groupID := "group-1"

	t.Run("short or empty queries return an empty slice", func(t *testing.T) {
		repo := &mockGuestRepo{err: errors.New("should not be queried")}
		svc := NewSearchService(repo, &mockGroupRepo{})

		for _, q := range []string{"", " ", "a", "  a  "} {
			matches, err := svc.Search(ctx, q)
			if err != nil {
				t.Fatalf("query %q: unexpected error: %v", q, err)
			}
			if len(matches) != 0 {
				t.Errorf("query %q: expected no matches, got %d", q, len(matches))
			}
		}
	})

	t.Run("grouped match carries group name and all groupmates", func(t *testing.T) {
		maria := &domain.Guest{ID: "guest-1", Name: "Maria Silva", GroupID: &groupID}
		joao := &domain.Guest{ID: "guest-2", Name: "João Silva", GroupID: &groupID}
		repo := &mockGuestRepo{
			searchResults: []*domain.Guest{maria},
			guests:        map[string]*domain.Guest{"guest-1": maria, "guest-2": joao},
		}
		groups := &mockGroupRepo{groups: map[string]*domain.GuestGroup{
			groupID: {ID: groupID, Name: "Família Silva"},
		}}
		svc := NewSearchService(repo, groups)

		matches, err := svc.Search(ctx, "silva")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].GroupName != "Família Silva" {
			t.Errorf("expected group name, got %q", matches[0].GroupName)
		}
		if len(matches[0].Groupmates) != 2 {
			t.Errorf("expected 2 groupmates, got %d", len(matches[0].Groupmates))
		}
	})

	t.Run("ungrouped match is alone", func(t *testing.T) {
		ana := &domain.Guest{ID: "guest-3", Name: "Ana Souza"}
		repo := &mockGuestRepo{
			searchResults: []*domain.Guest{ana},
			guests:        map[string]*domain.Guest{"guest-3": ana},
		}
		svc := NewSearchService(repo, &mockGroupRepo{})

		matches, err := svc.Search(ctx, "souza")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].GroupName != "" {
			t.Errorf("expected no group name, got %q", matches[0].GroupName)
		}
		if len(matches[0].Groupmates) != 1 || matches[0].Groupmates[0].ID != "guest-3" {
			t.Errorf("expected the guest alone, got %v", matches[0].Groupmates)
		}
	})
}

func TestSearchService_GuestGroup(t *testing.T) {
	ctx := context.Background()
	groupID := "group-1"

	t.Run("returns guest with groupmates", func(t *testing.T) {
		maria := &domain.Guest{ID: "guest-1", Name: "Maria Silva", GroupID: &groupID}
		joao := &domain.Guest{ID: "guest-2", Name: "João Silva", GroupID: &groupID}
		repo := &mockGuestRepo{guests: map[string]*domain.Guest{"guest-1": maria, "guest-2": joao}}
		groups := &mockGroupRepo{groups: map[string]*domain.GuestGroup{
			groupID: {ID: groupID, Name: "Família Silva"},
		}}
		svc := NewSearchService(repo, groups)

		match, err := svc.GuestGroup(ctx, "guest-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match.Guest.ID != "guest-1" {
			t.Errorf("expected guest-1, got %s", match.Guest.ID)
		}
		if len(match.Groupmates) != 2 {
			t.Errorf("expected 2 groupmates, got %d", len(match.Groupmates))
		}
	})

	t.Run("unknown guest", func(t *testing.T) {
		svc := NewSearchService(&mockGuestRepo{}, &mockGroupRepo{})
		if _, err := svc.GuestGroup(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
