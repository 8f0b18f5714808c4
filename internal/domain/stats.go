package domain

import "context"

// Dashboard is the admin dashboard aggregate. Every field is recomputed from
// live data on each call; nothing is cached.
type Dashboard struct {
	Guests           *GuestStats   `json:"guests"`
	ConfirmedPercent float64       `json:"confirmed_percent"`
	TotalGroups      int           `json:"total_groups"`
	ActiveGifts      int           `json:"active_gifts"`
	Groups           []*GroupStats `json:"groups"`
}

// StatsService computes dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}
