package domain

import (
	"context"
	"time"
)

// RSVPStatus is a guest's attendance reply.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// Valid reports whether s is one of the recognized statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	}
	return false
}

// Guest represents an invited wedding guest. GroupID is nil for ungrouped
// guests. RSVPAt is non-nil exactly when the status is confirmed or declined.
type Guest struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone,omitempty"`
	GroupID    *string    `json:"group_id,omitempty"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`
	PlusOnes   int        `json:"plus_ones"`
	RSVPAt     *time.Time `json:"rsvp_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewGuest returns a pending Guest. ID is set by the repository on create.
func NewGuest(name, phone string, groupID *string, createdAt time.Time) *Guest {
	return &Guest{
		Name:       name,
		Phone:      phone,
		GroupID:    groupID,
		RSVPStatus: RSVPPending,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

// GuestStats holds guest counts aggregated by RSVP status.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
}

// GuestMatch is one search result: the matched guest plus every member of
// its group (the guest included) so the RSVP page can offer whole-family
// confirmation. Ungrouped guests have Groupmates of length one.
type GuestMatch struct {
	Guest      *Guest   `json:"guest"`
	GroupName  string   `json:"group_name,omitempty"`
	Groupmates []*Guest `json:"groupmates"`
}

// GuestRepository defines the interface for guest storage.
type GuestRepository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Guest, error)
	ListByGroupID(ctx context.Context, groupID string) ([]*Guest, error)
	ListUngrouped(ctx context.Context) ([]*Guest, error)
	ListWithPhone(ctx context.Context) ([]*Guest, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*Guest, error)
	AssignGroup(ctx context.Context, guestID, groupID string) error
	ClearGroup(ctx context.Context, guestID string) error
	// UpdateStatus sets the status, plus-one count, and rsvp timestamp of one
	// guest. rsvpAt must be nil iff status is pending.
	UpdateStatus(ctx context.Context, guestID string, status RSVPStatus, plusOnes int, rsvpAt *time.Time) error
	// ConfirmGroup applies status to the group's guests inside a single
	// transaction. Without override, only guests currently pending or already
	// in the same direction are touched (same-direction guests are left as
	// they are, which makes the call idempotent). With override, every guest
	// in the group is set. Returns the IDs of the guests actually updated.
	ConfirmGroup(ctx context.Context, groupID string, status RSVPStatus, override bool, rsvpAt time.Time) ([]string, error)
	CountByStatus(ctx context.Context) (*GuestStats, error)
}

// SearchService looks guests up by name for the public RSVP page.
type SearchService interface {
	// Search performs a case-insensitive substring match on guest names.
	// Queries that are empty, whitespace-only, or shorter than two runes
	// after trimming always return an empty slice.
	Search(ctx context.Context, query string) ([]*GuestMatch, error)
	// GuestGroup returns the guest and everyone sharing its group (just the
	// guest itself when ungrouped).
	GuestGroup(ctx context.Context, guestID string) (*GuestMatch, error)
}

// RSVPService applies confirmation-status changes.
type RSVPService interface {
	Confirm(ctx context.Context, guestID string, attending bool, plusOnes int) (*Guest, error)
	ConfirmGroup(ctx context.Context, groupID string, attending, override bool) (int, error)
}

// GuestService is the admin-facing guest CRUD.
type GuestService interface {
	Create(ctx context.Context, name, phone string, groupID *string) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	Update(ctx context.Context, id, name, phone string, groupID *string, status RSVPStatus) (*Guest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Guest, error)
	AssignGroup(ctx context.Context, guestID, groupID string) error
	RemoveFromGroup(ctx context.Context, guestID string) error
}
