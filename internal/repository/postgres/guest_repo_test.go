package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"weddingrsvp/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var guestCols = []string{"id", "name", "phone", "group_id", "rsvp_status", "plus_ones", "rsvp_at", "created_at", "updated_at"}

func TestGuestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		guest   *domain.Guest
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			guest: &domain.Guest{
				Name:       "Maria Silva",
				Phone:      "+5511999990000",
				RSVPStatus: domain.RSVPPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO guests \(name, phone, group_id, rsvp_status, plus_ones, created_at, updated_at\)`).
					WithArgs("Maria Silva", "+5511999990000", nil, domain.RSVPPending, 0, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("guest-1"))
			},
			wantID: "guest-1",
		},
		{
			name: "duplicate name",
			guest: &domain.Guest{
				Name:       "Maria Silva",
				RSVPStatus: domain.RSVPPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO guests`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewGuestRepository(db)
			err = repo.Create(ctx, tt.guest)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.guest.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGuestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with group and answer", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		answered := now.Add(time.Hour)
		mock.ExpectQuery(`SELECT id, name, phone, group_id, rsvp_status, plus_ones, rsvp_at, created_at, updated_at FROM guests WHERE id = \$1`).
			WithArgs("guest-1").
			WillReturnRows(sqlmock.NewRows(guestCols).
				AddRow("guest-1", "Maria Silva", "+5511999990000", "group-1", "confirmed", 2, answered, now, answered))

		repo := NewGuestRepository(db)
		g, err := repo.GetByID(ctx, "guest-1")
		require.NoError(t, err)
		require.Equal(t, "Maria Silva", g.Name)
		require.NotNil(t, g.GroupID)
		require.Equal(t, "group-1", *g.GroupID)
		require.Equal(t, domain.RSVPConfirmed, g.RSVPStatus)
		require.NotNil(t, g.RSVPAt)
		require.Equal(t, answered, *g.RSVPAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ungrouped pending guest has nil group and rsvp_at", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM guests WHERE id = \$1`).
			WithArgs("guest-2").
			WillReturnRows(sqlmock.NewRows(guestCols).
				AddRow("guest-2", "João Souza", "", nil, "pending", 0, nil, now, now))

		repo := NewGuestRepository(db)
		g, err := repo.GetByID(ctx, "guest-2")
		require.NoError(t, err)
		require.Nil(t, g.GroupID)
		require.Nil(t, g.RSVPAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM guests WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewGuestRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGuestRepository_SearchByName(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM guests WHERE name ILIKE '%' \|\| \$1 \|\| '%' ORDER BY name LIMIT \$2`).
		WithArgs("silva", 10).
		WillReturnRows(sqlmock.NewRows(guestCols).
			AddRow("guest-1", "Ana Silva", "", nil, "pending", 0, nil, now, now).
			AddRow("guest-2", "Maria Silva", "", "group-1", "confirmed", 1, now, now, now))

	repo := NewGuestRepository(db)
	guests, err := repo.SearchByName(ctx, "silva", 10)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	require.Equal(t, "Ana Silva", guests[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_ListWithPhone(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM guests WHERE phone <> '' ORDER BY name`).
		WillReturnRows(sqlmock.NewRows(guestCols).
			AddRow("guest-1", "Ana Silva", "+5511999990001", nil, "pending", 0, nil, now, now))

	repo := NewGuestRepository(db)
	guests, err := repo.ListWithPhone(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	require.Equal(t, "+5511999990001", guests[0].Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE guests`).
			WithArgs(domain.RSVPConfirmed, 2, now, "guest-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewGuestRepository(db)
		require.NoError(t, repo.UpdateStatus(ctx, "guest-1", domain.RSVPConfirmed, 2, &now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown guest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE guests`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewGuestRepository(db)
		err = repo.UpdateStatus(ctx, "missing", domain.RSVPDeclined, 0, &now)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGuestRepository_ConfirmGroup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("updates pending guests and commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM guest_groups WHERE id = \$1\)`).
			WithArgs("group-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`UPDATE guests`).
			WithArgs(domain.RSVPConfirmed, now, now, "group-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).
				AddRow("guest-1").AddRow("guest-2").AddRow("guest-3"))
		mock.ExpectCommit()

		repo := NewGuestRepository(db)
		ids, err := repo.ConfirmGroup(ctx, "group-1", domain.RSVPConfirmed, false, now)
		require.NoError(t, err)
		require.Equal(t, []string{"guest-1", "guest-2", "guest-3"}, ids)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown group rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		repo := NewGuestRepository(db)
		_, err = repo.ConfirmGroup(ctx, "missing", domain.RSVPConfirmed, false, now)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("group-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`UPDATE guests`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewGuestRepository(db)
		_, err = repo.ConfirmGroup(ctx, "group-1", domain.RSVPDeclined, true, now)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuestRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "pending", "declined"}).
			AddRow(10, 6, 3, 1))

	repo := NewGuestRepository(db)
	stats, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, &domain.GuestStats{Total: 10, Confirmed: 6, Pending: 3, Declined: 1}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}
