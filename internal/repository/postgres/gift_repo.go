package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"weddingrsvp/internal/domain"
)

const giftColumns = `id, name, description, price, image_url, pix_key, pix_link, card_link, active, created_at, updated_at`

type giftRepository struct {
	DB *sql.DB
}

func NewGiftRepository(db *sql.DB) domain.GiftRepository {
	return &giftRepository{DB: db}
}

func scanGift(row interface{ Scan(...any) error }) (*domain.Gift, error) {
	g := &domain.Gift{}
	var price decimal.NullDecimal
	err := row.Scan(&g.ID, &g.Name, &g.Description, &price, &g.ImageURL,
		&g.PixKey, &g.PixLink, &g.CardLink, &g.Active, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if price.Valid {
		p := price.Decimal
		g.Price = &p
	}
	return g, nil
}

func (r *giftRepository) Create(ctx context.Context, g *domain.Gift) error {
	query := `
		INSERT INTO gifts (name, description, price, image_url, pix_key, pix_link, card_link, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		g.Name, g.Description, nullablePrice(g.Price), g.ImageURL,
		g.PixKey, g.PixLink, g.CardLink, g.Active, g.CreatedAt, g.UpdatedAt).
		Scan(&g.ID)
}

func (r *giftRepository) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1`
	g, err := scanGift(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *giftRepository) Update(ctx context.Context, g *domain.Gift) error {
	query := `
		UPDATE gifts
		SET name = $1, description = $2, price = $3, image_url = $4,
		    pix_key = $5, pix_link = $6, card_link = $7, active = $8, updated_at = $9
		WHERE id = $10
	`
	res, err := r.DB.ExecContext(ctx, query,
		g.Name, g.Description, nullablePrice(g.Price), g.ImageURL,
		g.PixKey, g.PixLink, g.CardLink, g.Active, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *giftRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM gifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *giftRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gifts []*domain.Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if gifts == nil {
		gifts = []*domain.Gift{}
	}
	return gifts, nil
}

func (r *giftRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM gifts WHERE active`).Scan(&n)
	return n, err
}

func nullablePrice(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return p.String()
}
