package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
		db.Close()
	})
	return &dbpg.DB{Master: db}, m
}

func TestListingRepository_Deactivate(t *testing.T) {
	today := domain.StartOfDay(sqlNow)

	t.Run("upcoming bookings", func(t *testing.T) {
		db, m := newMockDB(t)
		repo := &ListingRepository{db: db, strategy: fastStrategy()}

		m.ExpectBegin()
		expectListingLock(m, "l1")
		m.ExpectQuery(q(`SELECT COUNT(*) FROM bookings WHERE listing_id = $1 AND status = ANY($2) AND end_date >= $3`)).
			WithArgs("l1", sqlmock.AnyArg(), today).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		m.ExpectRollback()

		err := repo.Deactivate(context.Background(), "l1", today, sqlNow)

		assert.ErrorIs(t, err, domain.ErrHasBookings)
	})

	t.Run("no upcoming bookings", func(t *testing.T) {
		db, m := newMockDB(t)
		repo := &ListingRepository{db: db, strategy: fastStrategy()}

		m.ExpectBegin()
		expectListingLock(m, "l1")
		m.ExpectQuery(q(`SELECT COUNT(*) FROM bookings`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		m.ExpectExec(q(`UPDATE listings SET is_active = FALSE, updated_at = $2 WHERE id = $1`)).
			WithArgs("l1", sqlNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		m.ExpectCommit()

		require.NoError(t, repo.Deactivate(context.Background(), "l1", today, sqlNow))
	})
}

func TestListingRepository_Update_NotFound(t *testing.T) {
	db, m := newMockDB(t)
	repo := &ListingRepository{db: db, strategy: fastStrategy()}

	m.ExpectExec(q(`UPDATE listings`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Listing{ID: "missing"})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestReviewRepository_Update_RecomputesPublicRating(t *testing.T) {
	db, m := newMockDB(t)
	repo := &ReviewRepository{db: db, strategy: fastStrategy()}

	m.ExpectBegin()
	expectListingLock(m, "l1")
	m.ExpectExec(q(`UPDATE reviews`)).
		WithArgs("r1", 2, "meh", false, false, "", nil, nil, "admin", sqlNow, sqlNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectExec(q(`FROM reviews WHERE listing_id = $1 AND is_public`)).
		WithArgs("l1", sqlNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectCommit()

	moderatedAt := sqlNow
	err := repo.Update(context.Background(), &domain.Review{
		ID:          "r1",
		ListingID:   "l1",
		Rating:      2,
		Comment:     "meh",
		ModeratedBy: "admin",
		ModeratedAt: &moderatedAt,
		UpdatedAt:   sqlNow,
	})

	require.NoError(t, err)
}

func TestReviewRepository_Create_Duplicate(t *testing.T) {
	db, m := newMockDB(t)
	repo := &ReviewRepository{db: db, strategy: fastStrategy()}

	m.ExpectBegin()
	expectListingLock(m, "l1")
	m.ExpectExec(q(`INSERT INTO reviews`)).
		WillReturnError(&pq.Error{Code: "23505"})
	m.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Review{ID: "r1", ListingID: "l1", BookingID: "b1", Rating: 5})

	assert.ErrorIs(t, err, domain.ErrReviewExists)
}
