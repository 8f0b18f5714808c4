package domain

import (
	"context"
	"time"
)

// GuestGroup is a family or party of guests managed and confirmed together.
type GuestGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGuestGroup returns a new GuestGroup. ID is set by the repository on create.
func NewGuestGroup(name, description string, createdAt time.Time) *GuestGroup {
	return &GuestGroup{
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// GroupStats is the per-group confirmation aggregate shown on the dashboard.
type GroupStats struct {
	Group      *GuestGroup `json:"group"`
	GuestTotal int         `json:"guest_total"`
	Confirmed  int         `json:"confirmed"`
}

// GroupRepository defines the interface for guest group storage.
type GroupRepository interface {
	Create(ctx context.Context, g *GuestGroup) error
	GetByID(ctx context.Context, id string) (*GuestGroup, error)
	Update(ctx context.Context, g *GuestGroup) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*GuestGroup, error)
	Count(ctx context.Context) (int, error)
	CountGuests(ctx context.Context, groupID string) (int, error)
	ListWithStats(ctx context.Context) ([]*GroupStats, error)
}

// GroupMembers pairs a group's current guests with the guests available to be
// added, for the admin group editor.
type GroupMembers struct {
	Members   []*Guest `json:"members"`
	Available []*Guest `json:"available"`
}

// GroupService is the admin-facing group CRUD and membership management.
type GroupService interface {
	Create(ctx context.Context, name, description string) (*GuestGroup, error)
	GetByID(ctx context.Context, id string) (*GuestGroup, error)
	Update(ctx context.Context, id, name, description string) (*GuestGroup, error)
	// Delete refuses to remove a group that still has guests; callers get
	// ErrGroupNotEmpty and must reassign or delete the guests first.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*GuestGroup, error)
	Members(ctx context.Context, id string) (*GroupMembers, error)
}
