package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"weddingrsvp/internal/domain"
)

type giftService struct {
	giftRepo domain.GiftRepository
}

// NewGiftService creates the gift registry CRUD.
func NewGiftService(giftRepo domain.GiftRepository) domain.GiftService {
	return &giftService{giftRepo: giftRepo}
}

func (s *giftService) Create(ctx context.Context, in domain.GiftInput) (*domain.Gift, error) {
	gift, err := s.buildGift(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	gift.CreatedAt = now
	gift.UpdatedAt = now
	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return nil, fmt.Errorf("create gift: %w", err)
	}
	return gift, nil
}

func (s *giftService) Update(ctx context.Context, id string, in domain.GiftInput) (*domain.Gift, error) {
	existing, err := s.giftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get gift: %w", err)
	}
	gift, err := s.buildGift(in)
	if err != nil {
		return nil, err
	}
	gift.ID = existing.ID
	gift.CreatedAt = existing.CreatedAt
	gift.UpdatedAt = time.Now()
	if err := s.giftRepo.Update(ctx, gift); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update gift: %w", err)
	}
	return gift, nil
}

func (s *giftService) Delete(ctx context.Context, id string) error {
	if err := s.giftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete gift: %w", err)
	}
	return nil
}

func (s *giftService) List(ctx context.Context) ([]*domain.Gift, error) {
	gifts, err := s.giftRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	return gifts, nil
}

// Registry groups gifts for the public page: active items are available,
// inactive ones have already been taken.
func (s *giftService) Registry(ctx context.Context) (*domain.GiftRegistry, error) {
	gifts, err := s.giftRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	reg := &domain.GiftRegistry{
		Available: []*domain.Gift{},
		Taken:     []*domain.Gift{},
	}
	for _, g := range gifts {
		if g.Active {
			reg.Available = append(reg.Available, g)
		} else {
			reg.Taken = append(reg.Taken, g)
		}
	}
	return reg, nil
}

func (s *giftService) buildGift(in domain.GiftInput) (*domain.Gift, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: gift name is required", domain.ErrInvalidInput)
	}
	gift := &domain.Gift{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		PixKey:      strings.TrimSpace(in.PixKey),
		PixLink:     strings.TrimSpace(in.PixLink),
		CardLink:    strings.TrimSpace(in.CardLink),
		Active:      in.Active,
	}
	if raw := strings.TrimSpace(in.Price); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed price %q", domain.ErrInvalidInput, raw)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
		}
		gift.Price = &price
	}
	return gift, nil
}
