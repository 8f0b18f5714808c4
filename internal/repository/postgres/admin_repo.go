package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddingrsvp/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.Username, a.PasswordHash, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE id = $1`
	return r.scanAdmin(r.DB.QueryRowContext(ctx, query, id))
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`
	return r.scanAdmin(r.DB.QueryRowContext(ctx, query, username))
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

func (r *adminRepository) scanAdmin(row *sql.Row) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
