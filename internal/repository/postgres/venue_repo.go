package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddingrsvp/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func (r *venueRepository) Get(ctx context.Context) (*domain.VenueInfo, error) {
	query := `
		SELECT id, name, address, map_link, description, event_at, created_at, updated_at
		FROM venue_info
		ORDER BY created_at
		LIMIT 1
	`
	v := &domain.VenueInfo{}
	var eventAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query).
		Scan(&v.ID, &v.Name, &v.Address, &v.MapLink, &v.Description, &eventAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if eventAt.Valid {
		t := eventAt.Time
		v.EventAt = &t
	}
	return v, nil
}

// Upsert keeps venue_info a singleton: the first save inserts, later saves
// overwrite the existing row in place.
func (r *venueRepository) Upsert(ctx context.Context, v *domain.VenueInfo) error {
	if v.ID == "" {
		query := `
			INSERT INTO venue_info (name, address, map_link, description, event_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		return r.DB.QueryRowContext(ctx, query,
			v.Name, v.Address, v.MapLink, v.Description, nullableTime(v.EventAt), v.CreatedAt, v.UpdatedAt).
			Scan(&v.ID)
	}
	query := `
		UPDATE venue_info
		SET name = $1, address = $2, map_link = $3, description = $4, event_at = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query,
		v.Name, v.Address, v.MapLink, v.Description, nullableTime(v.EventAt), v.UpdatedAt, v.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
