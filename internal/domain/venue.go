package domain

import (
	"context"
	"time"
)

// VenueInfo is the single-event venue record. At most one row is active;
// updates overwrite it.
type VenueInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address,omitempty"`
	MapLink     string     `json:"map_link,omitempty"`
	Description string     `json:"description,omitempty"`
	EventAt     *time.Time `json:"event_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VenueRepository defines the interface for the venue singleton.
type VenueRepository interface {
	// Get returns the venue row, or ErrNotFound when none has been saved yet.
	Get(ctx context.Context) (*VenueInfo, error)
	// Upsert inserts the row on first save and overwrites it afterwards.
	Upsert(ctx context.Context, v *VenueInfo) error
}

// VenueInput carries the writable venue fields. EventDate and EventTime are
// raw form values ("2006-01-02" and "15:04"); the service parses them.
type VenueInput struct {
	Name        string
	Address     string
	MapLink     string
	Description string
	EventDate   string
	EventTime   string
}

// VenueService reads and updates the venue singleton.
type VenueService interface {
	Get(ctx context.Context) (*VenueInfo, error)
	Update(ctx context.Context, in VenueInput) (*VenueInfo, error)
}
