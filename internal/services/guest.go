package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type guestService struct {
	guestRepo domain.GuestRepository
	groupRepo domain.GroupRepository
}

// NewGuestService creates the admin-facing guest CRUD.
func NewGuestService(guestRepo domain.GuestRepository, groupRepo domain.GroupRepository) domain.GuestService {
	return &guestService{guestRepo: guestRepo, groupRepo: groupRepo}
}

func (s *guestService) Create(ctx context.Context, name, phone string, groupID *string) (*domain.Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: guest name is required", domain.ErrInvalidInput)
	}
	if groupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown group", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get group: %w", err)
		}
	}

	guest := domain.NewGuest(name, strings.TrimSpace(phone), groupID, time.Now())
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("create guest: %w", err)
	}
	return guest, nil
}

func (s *guestService) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return guest, nil
}

func (s *guestService) Update(ctx context.Context, id, name, phone string, groupID *string, status domain.RSVPStatus) (*domain.Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: guest name is required", domain.ErrInvalidInput)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown rsvp status %q", domain.ErrInvalidInput, status)
	}
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if groupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown group", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get group: %w", err)
		}
	}

	now := time.Now()
	guest.Name = name
	guest.Phone = strings.TrimSpace(phone)
	guest.GroupID = groupID
	guest.UpdatedAt = now
	// Keep the rsvp_at invariant: pending carries no timestamp, and a status
	// changed by the admin is stamped like one changed by the guest.
	if status != guest.RSVPStatus {
		guest.RSVPStatus = status
		if status == domain.RSVPPending {
			guest.RSVPAt = nil
		} else {
			guest.RSVPAt = &now
		}
		if status != domain.RSVPConfirmed {
			guest.PlusOnes = 0
		}
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update guest: %w", err)
	}
	return guest, nil
}

func (s *guestService) Delete(ctx context.Context, id string) error {
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

func (s *guestService) List(ctx context.Context) ([]*domain.Guest, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func (s *guestService) AssignGroup(ctx context.Context, guestID, groupID string) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get group: %w", err)
	}
	if err := s.guestRepo.AssignGroup(ctx, guestID, groupID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("assign group: %w", err)
	}
	return nil
}

func (s *guestService) RemoveFromGroup(ctx context.Context, guestID string) error {
	if err := s.guestRepo.ClearGroup(ctx, guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove from group: %w", err)
	}
	return nil
}
