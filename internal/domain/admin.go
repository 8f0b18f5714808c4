package domain

import (
	"context"
	"time"
)

// Admin is an administrator account. The first one is seeded at boot from
// configuration and must change its password afterwards.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(adminID, username string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the admin ID.
type TokenVerifier interface {
	Verify(token string) (adminID string, err error)
}

// AdminRepository defines the interface for admin account storage.
type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int, error)
}

// AuthService handles admin login and password management.
type AuthService interface {
	// Login returns a signed session token. Unknown usernames and wrong
	// passwords both return ErrUnauthorized.
	Login(ctx context.Context, username, password string) (token string, admin *Admin, err error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	ChangePassword(ctx context.Context, adminID, current, newPassword, confirm string) error
	// EnsureDefaultAdmin seeds the bootstrap account when no admin exists.
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}
