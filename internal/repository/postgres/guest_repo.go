package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"weddingrsvp/internal/domain"
)

const guestColumns = `id, name, phone, group_id, rsvp_status, plus_ones, rsvp_at, created_at, updated_at`

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func scanGuest(row interface{ Scan(...any) error }) (*domain.Guest, error) {
	g := &domain.Guest{}
	var groupID sql.NullString
	var rsvpAt sql.NullTime
	err := row.Scan(&g.ID, &g.Name, &g.Phone, &groupID, &g.RSVPStatus, &g.PlusOnes, &rsvpAt, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if groupID.Valid {
		g.GroupID = &groupID.String
	}
	if rsvpAt.Valid {
		t := rsvpAt.Time
		g.RSVPAt = &t
	}
	return g, nil
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (name, phone, group_id, rsvp_status, plus_ones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		g.Name, g.Phone, nullableString(g.GroupID), g.RSVPStatus, g.PlusOnes, g.CreatedAt, g.UpdatedAt).
		Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $1, phone = $2, group_id = $3, rsvp_status = $4, plus_ones = $5, rsvp_at = $6, updated_at = $7
		WHERE id = $8
	`
	res, err := r.DB.ExecContext(ctx, query,
		g.Name, g.Phone, nullableString(g.GroupID), g.RSVPStatus, g.PlusOnes, nullableTime(g.RSVPAt), g.UpdatedAt, g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return requireRowsAffected(res)
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *guestRepository) List(ctx context.Context) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY name`
	return r.queryGuests(ctx, query)
}

func (r *guestRepository) ListByGroupID(ctx context.Context, groupID string) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE group_id = $1 ORDER BY name`
	return r.queryGuests(ctx, query, groupID)
}

func (r *guestRepository) ListUngrouped(ctx context.Context) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE group_id IS NULL ORDER BY name`
	return r.queryGuests(ctx, query)
}

func (r *guestRepository) ListWithPhone(ctx context.Context) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE phone <> '' ORDER BY name`
	return r.queryGuests(ctx, query)
}

func (r *guestRepository) SearchByName(ctx context.Context, query string, limit int) ([]*domain.Guest, error) {
	q := `SELECT ` + guestColumns + ` FROM guests WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT $2`
	return r.queryGuests(ctx, q, query, limit)
}

func (r *guestRepository) AssignGroup(ctx context.Context, guestID, groupID string) error {
	query := `UPDATE guests SET group_id = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, groupID, guestID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *guestRepository) ClearGroup(ctx context.Context, guestID string) error {
	query := `UPDATE guests SET group_id = NULL, updated_at = NOW() WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, guestID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *guestRepository) UpdateStatus(ctx context.Context, guestID string, status domain.RSVPStatus, plusOnes int, rsvpAt *time.Time) error {
	query := `
		UPDATE guests
		SET rsvp_status = $1, plus_ones = $2, rsvp_at = $3, updated_at = NOW()
		WHERE id = $4
	`
	res, err := r.DB.ExecContext(ctx, query, status, plusOnes, nullableTime(rsvpAt), guestID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

// ConfirmGroup runs the whole group update inside one transaction so a failure
// leaves every guest unchanged and concurrent confirmations on the same group
// serialize on the row locks.
func (r *guestRepository) ConfirmGroup(ctx context.Context, groupID string, status domain.RSVPStatus, override bool, rsvpAt time.Time) ([]string, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM guest_groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Without override only pending guests move; guests already in the
	// requested direction keep their original timestamp, so replaying the
	// same call is a no-op.
	where := `group_id = $4 AND rsvp_status = 'pending'`
	if override {
		where = `group_id = $4 AND rsvp_status <> $1`
	}
	query := `UPDATE guests
		SET rsvp_status = $1, rsvp_at = $2, updated_at = $3,
		    plus_ones = CASE WHEN $1 = 'declined' THEN 0 ELSE plus_ones END
		WHERE ` + where + `
		RETURNING id`

	rows, err := tx.QueryContext(ctx, query, status, rsvpAt, rsvpAt, groupID)
	if err != nil {
		return nil, fmt.Errorf("update group guests: %w", err)
	}
	var updated []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		updated = append(updated, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return updated, nil
}

func (r *guestRepository) CountByStatus(ctx context.Context) (*domain.GuestStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE rsvp_status = 'confirmed'),
		       COUNT(*) FILTER (WHERE rsvp_status = 'pending'),
		       COUNT(*) FILTER (WHERE rsvp_status = 'declined')
		FROM guests
	`
	stats := &domain.GuestStats{}
	err := r.DB.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Confirmed, &stats.Pending, &stats.Declined)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *guestRepository) queryGuests(ctx context.Context, query string, args ...any) ([]*domain.Guest, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []*domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	return guests, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
