package services

import (
	"context"
	"fmt"
	"math"

	"weddingrsvp/internal/domain"
)

type statsService struct {
	guestRepo domain.GuestRepository
	groupRepo domain.GroupRepository
	giftRepo  domain.GiftRepository
}

// NewStatsService creates the dashboard aggregate service.
func NewStatsService(guestRepo domain.GuestRepository, groupRepo domain.GroupRepository, giftRepo domain.GiftRepository) domain.StatsService {
	return &statsService{
		guestRepo: guestRepo,
		groupRepo: groupRepo,
		giftRepo:  giftRepo,
	}
}

// Dashboard recomputes every aggregate from live data; nothing is cached
// between calls.
func (s *statsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	guests, err := s.guestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count guests: %w", err)
	}
	totalGroups, err := s.groupRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count groups: %w", err)
	}
	activeGifts, err := s.giftRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count gifts: %w", err)
	}
	groupStats, err := s.groupRepo.ListWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("group stats: %w", err)
	}

	return &domain.Dashboard{
		Guests:           guests,
		ConfirmedPercent: ConfirmedPercent(guests.Confirmed, guests.Total),
		TotalGroups:      totalGroups,
		ActiveGifts:      activeGifts,
		Groups:           groupStats,
	}, nil
}

// ConfirmedPercent returns confirmed/total as a percentage rounded to one
// decimal place, 0 when there are no guests.
func ConfirmedPercent(confirmed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(confirmed)/float64(total)*1000) / 10
}
