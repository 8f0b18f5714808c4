package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type groupService struct {
	groupRepo domain.GroupRepository
	guestRepo domain.GuestRepository
}

// NewGroupService creates the admin-facing group CRUD.
func NewGroupService(groupRepo domain.GroupRepository, guestRepo domain.GuestRepository) domain.GroupService {
	return &groupService{groupRepo: groupRepo, guestRepo: guestRepo}
}

func (s *groupService) Create(ctx context.Context, name, description string) (*domain.GuestGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", domain.ErrInvalidInput)
	}
	group := domain.NewGuestGroup(name, strings.TrimSpace(description), time.Now())
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

func (s *groupService) GetByID(ctx context.Context, id string) (*domain.GuestGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}

func (s *groupService) Update(ctx context.Context, id, name, description string) (*domain.GuestGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", domain.ErrInvalidInput)
	}
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	group.Name = name
	group.Description = strings.TrimSpace(description)
	group.UpdatedAt = time.Now()
	if err := s.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}

// Delete refuses to remove a group that still has guests. Guests must be
// reassigned or deleted first; there is no cascade.
func (s *groupService) Delete(ctx context.Context, id string) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get group: %w", err)
	}
	n, err := s.groupRepo.CountGuests(ctx, id)
	if err != nil {
		return fmt.Errorf("count group guests: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d guest(s) still assigned", domain.ErrGroupNotEmpty, n)
	}
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

func (s *groupService) List(ctx context.Context) ([]*domain.GuestGroup, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) Members(ctx context.Context, id string) (*domain.GroupMembers, error) {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	members, err := s.guestRepo.ListByGroupID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	available, err := s.guestRepo.ListUngrouped(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ungrouped guests: %w", err)
	}
	return &domain.GroupMembers{Members: members, Available: available}, nil
}
