package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Gift is one item of the gift registry. Payment links (PIX and card) are
// opaque URLs; Price is optional.
type Gift struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	PixKey      string           `json:"pix_key,omitempty"`
	PixLink     string           `json:"pix_link,omitempty"`
	CardLink    string           `json:"card_link,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// GiftInput carries the writable gift fields. Price is the raw form value;
// the service parses and validates it.
type GiftInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	PixKey      string
	PixLink     string
	CardLink    string
	Active      bool
}

// GiftRegistry is the public gift page payload, grouped by availability.
type GiftRegistry struct {
	Available []*Gift `json:"available"`
	Taken     []*Gift `json:"taken"`
}

// GiftRepository defines the interface for gift storage.
type GiftRepository interface {
	Create(ctx context.Context, g *Gift) error
	GetByID(ctx context.Context, id string) (*Gift, error)
	Update(ctx context.Context, g *Gift) error
	Delete(ctx context.Context, id string) error
	// List returns gifts ordered by creation time, newest first. With
	// activeOnly, inactive gifts are filtered out.
	List(ctx context.Context, activeOnly bool) ([]*Gift, error)
	CountActive(ctx context.Context) (int, error)
}

// GiftService is the gift registry CRUD plus the public grouped listing.
type GiftService interface {
	Create(ctx context.Context, in GiftInput) (*Gift, error)
	Update(ctx context.Context, id string, in GiftInput) (*Gift, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Gift, error)
	Registry(ctx context.Context) (*GiftRegistry, error)
}
