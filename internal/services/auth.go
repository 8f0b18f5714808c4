package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

const minPasswordLen = 6

type authService struct {
	adminRepo   domain.AdminRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates the admin authentication service.
func NewAuthService(adminRepo domain.AdminRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	username = strings.TrimSpace(username)
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same answer as a wrong password so usernames can't be probed.
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("get admin: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := s.tokenIssuer.Issue(admin.ID, admin.Username, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, admin, nil
}

func (s *authService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

func (s *authService) ChangePassword(ctx context.Context, adminID, current, newPassword, confirm string) error {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get admin: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, current); err != nil {
		return domain.ErrUnauthorized
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: new password must have at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: password confirmation does not match", domain.ErrInvalidInput)
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// EnsureDefaultAdmin seeds the bootstrap credential on first run. It does
// nothing once any admin row exists, so a changed password is never reset.
func (s *authService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	n, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
