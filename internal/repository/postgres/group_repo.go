package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddingrsvp/internal/domain"
)

type groupRepository struct {
	DB *sql.DB
}

func NewGroupRepository(db *sql.DB) domain.GroupRepository {
	return &groupRepository{DB: db}
}

func (r *groupRepository) Create(ctx context.Context, g *domain.GuestGroup) error {
	query := `
		INSERT INTO guest_groups (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.Name, g.Description, g.CreatedAt, g.UpdatedAt).Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*domain.GuestGroup, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM guest_groups WHERE id = $1`
	g := &domain.GuestGroup{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *groupRepository) Update(ctx context.Context, g *domain.GuestGroup) error {
	query := `
		UPDATE guest_groups
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`
	res, err := r.DB.ExecContext(ctx, query, g.Name, g.Description, g.UpdatedAt, g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return requireRowsAffected(res)
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM guest_groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *groupRepository) List(ctx context.Context) ([]*domain.GuestGroup, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM guest_groups ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*domain.GuestGroup
	for rows.Next() {
		g := &domain.GuestGroup{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []*domain.GuestGroup{}
	}
	return groups, nil
}

func (r *groupRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM guest_groups`).Scan(&n)
	return n, err
}

func (r *groupRepository) CountGuests(ctx context.Context, groupID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM guests WHERE group_id = $1`, groupID).Scan(&n)
	return n, err
}

func (r *groupRepository) ListWithStats(ctx context.Context) ([]*domain.GroupStats, error) {
	query := `
		SELECT gg.id, gg.name, gg.description, gg.created_at, gg.updated_at,
		       COUNT(g.id),
		       COUNT(g.id) FILTER (WHERE g.rsvp_status = 'confirmed')
		FROM guest_groups gg
		LEFT JOIN guests g ON g.group_id = gg.id
		GROUP BY gg.id, gg.name, gg.description, gg.created_at, gg.updated_at
		ORDER BY gg.name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.GroupStats
	for rows.Next() {
		s := &domain.GroupStats{Group: &domain.GuestGroup{}}
		g := s.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt, &s.GuestTotal, &s.Confirmed); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []*domain.GroupStats{}
	}
	return stats, nil
}
