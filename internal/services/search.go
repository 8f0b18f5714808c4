package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"weddingrsvp/internal/domain"
)

const searchLimit = 10

type searchService struct {
	guestRepo domain.GuestRepository
	groupRepo domain.GroupRepository
}

// NewSearchService creates the guest search used by the public RSVP page.
func NewSearchService(guestRepo domain.GuestRepository, groupRepo domain.GroupRepository) domain.SearchService {
	return &searchService{guestRepo: guestRepo, groupRepo: groupRepo}
}

// Search matches guest names case-insensitively on any substring, capped at
// ten results. Queries shorter than two runes after trimming (including the
// empty string) deterministically return an empty slice.
func (s *searchService) Search(ctx context.Context, query string) ([]*domain.GuestMatch, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []*domain.GuestMatch{}, nil
	}

	guests, err := s.guestRepo.SearchByName(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search guests: %w", err)
	}

	// Several matches often share a family; memoize group lookups.
	groupsByID := make(map[string]*domain.GuestGroup)
	membersByID := make(map[string][]*domain.Guest)

	matches := make([]*domain.GuestMatch, 0, len(guests))
	for _, g := range guests {
		match := &domain.GuestMatch{Guest: g, Groupmates: []*domain.Guest{g}}
		if g.GroupID != nil {
			group, ok := groupsByID[*g.GroupID]
			if !ok {
				group, err = s.groupRepo.GetByID(ctx, *g.GroupID)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						matches = append(matches, match)
						continue
					}
					return nil, fmt.Errorf("get group: %w", err)
				}
				groupsByID[*g.GroupID] = group
				members, err := s.guestRepo.ListByGroupID(ctx, *g.GroupID)
				if err != nil {
					return nil, fmt.Errorf("list group members: %w", err)
				}
				membersByID[*g.GroupID] = members
			}
			match.GroupName = group.Name
			match.Groupmates = membersByID[*g.GroupID]
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (s *searchService) GuestGroup(ctx context.Context, guestID string) (*domain.GuestMatch, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	match := &domain.GuestMatch{Guest: guest, Groupmates: []*domain.Guest{guest}}
	if guest.GroupID == nil {
		return match, nil
	}

	group, err := s.groupRepo.GetByID(ctx, *guest.GroupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return match, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	members, err := s.guestRepo.ListByGroupID(ctx, *guest.GroupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	match.GroupName = group.Name
	match.Groupmates = members
	return match, nil
}
