package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weddingrsvp/internal/domain"
)

const maxPlusOnes = 10

type rsvpService struct {
	guestRepo domain.GuestRepository
	notifier  domain.NotificationService
	logger    *slog.Logger
}

// NewRSVPService creates the RSVP workflow. notifier may be nil; confirmation
// then happens without thank-you messages.
func NewRSVPService(guestRepo domain.GuestRepository, notifier domain.NotificationService, logger *slog.Logger) domain.RSVPService {
	return &rsvpService{
		guestRepo: guestRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *rsvpService) Confirm(ctx context.Context, guestID string, attending bool, plusOnes int) (*domain.Guest, error) {
	if plusOnes < 0 || plusOnes > maxPlusOnes {
		return nil, fmt.Errorf("%w: plus_ones must be between 0 and %d", domain.ErrInvalidInput, maxPlusOnes)
	}
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	status := domain.RSVPDeclined
	if attending {
		status = domain.RSVPConfirmed
	} else {
		plusOnes = 0
	}

	// Repeating the same answer is a no-op: the original timestamp stays and
	// no second thank-you goes out.
	if guest.RSVPStatus == status && guest.PlusOnes == plusOnes {
		return guest, nil
	}

	now := time.Now()
	if err := s.guestRepo.UpdateStatus(ctx, guestID, status, plusOnes, &now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}

	guest.RSVPStatus = status
	guest.PlusOnes = plusOnes
	guest.RSVPAt = &now
	guest.UpdatedAt = now

	// The status is committed at this point; a failed thank-you message must
	// never surface to the guest.
	if attending {
		s.sendThankYou(ctx, guest)
	}
	return guest, nil
}

func (s *rsvpService) ConfirmGroup(ctx context.Context, groupID string, attending, override bool) (int, error) {
	status := domain.RSVPDeclined
	if attending {
		status = domain.RSVPConfirmed
	}

	updatedIDs, err := s.guestRepo.ConfirmGroup(ctx, groupID, status, override, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("confirm group: %w", err)
	}

	// Thank only the guests this call moved; members who confirmed earlier
	// already got theirs.
	if attending && len(updatedIDs) > 0 {
		guests, err := s.guestRepo.ListByGroupID(ctx, groupID)
		if err != nil {
			s.logger.Error("list group guests for thank-you", "group_id", groupID, "err", err)
			return len(updatedIDs), nil
		}
		changed := make(map[string]bool, len(updatedIDs))
		for _, id := range updatedIDs {
			changed[id] = true
		}
		for _, g := range guests {
			if changed[g.ID] && g.RSVPStatus == domain.RSVPConfirmed {
				s.sendThankYou(ctx, g)
			}
		}
	}
	return len(updatedIDs), nil
}

func (s *rsvpService) sendThankYou(ctx context.Context, guest *domain.Guest) {
	if s.notifier == nil || guest.Phone == "" {
		return
	}
	if err := s.notifier.SendThankYou(ctx, guest); err != nil {
		s.logger.Warn("thank-you message failed", "guest_id", guest.ID, "err", err)
	}
}
