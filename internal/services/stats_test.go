package services

import (
	"context"
	"testing"

	"weddingrsvp/internal/domain"
)

func TestConfirmedPercent(t *testing.T) {
	tests := []struct {
		name      string
		confirmed int
		total     int
		want      float64
	}{
		{"no guests", 0, 0, 0},
		{"none confirmed", 0, 10, 0},
		{"all confirmed", 10, 10, 100},
		{"rounds to one decimal", 1, 3, 33.3},
		{"two thirds", 2, 3, 66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfirmedPercent(tt.confirmed, tt.total); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()

	guestRepo := &mockGuestRepo{stats: &domain.GuestStats{Total: 10, Confirmed: 6, Pending: 3, Declined: 1}}
	groupRepo := &mockGroupRepo{
		groups: map[string]*domain.GuestGroup{
			"group-1": {ID: "group-1"},
			"group-2": {ID: "group-2"},
		},
		stats: []*domain.GroupStats{
			{Group: &domain.GuestGroup{ID: "group-1", Name: "Família Silva"}, GuestTotal: 4, Confirmed: 2},
		},
	}
	giftRepo := &mockGiftRepo{active: 5}

	svc := NewStatsService(guestRepo, groupRepo, giftRepo)
	dash, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Guests.Total != 10 {
		t.Errorf("expected 10 guests, got %d", dash.Guests.Total)
	}
	if dash.ConfirmedPercent != 60 {
		t.Errorf("expected 60%%, got %v", dash.ConfirmedPercent)
	}
	if dash.TotalGroups != 2 {
		t.Errorf("expected 2 groups, got %d", dash.TotalGroups)
	}
	if dash.ActiveGifts != 5 {
		t.Errorf("expected 5 active gifts, got %d", dash.ActiveGifts)
	}
	if len(dash.Groups) != 1 {
		t.Errorf("expected 1 group stat, got %d", len(dash.Groups))
	}
}
