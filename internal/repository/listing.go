package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const listingColumns = `id, host_id, title, description, city, address, category, amenities,
	price, max_guests, cancellation_policy, is_active, is_verified, verified_at,
	total_bookings, average_rating, review_count, version, created_at, updated_at`

func scanListing(s scanner) (*domain.Listing, error) {
	var l domain.Listing
	err := s.Scan(
		&l.ID, &l.HostID, &l.Title, &l.Description, &l.City, &l.Address, &l.Category,
		pq.Array(&l.Amenities), &l.Price, &l.MaxGuests, &l.CancellationPolicy,
		&l.IsActive, &l.IsVerified, &l.VerifiedAt, &l.TotalBookings, &l.AverageRating,
		&l.ReviewCount, &l.Version, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, host_id, title, description, city, address, category,
			  amenities, price, max_guests, cancellation_policy, is_active, is_verified,
			  created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.HostID, l.Title, l.Description, l.City, l.Address, l.Category,
		pq.Array(l.Amenities), l.Price, l.MaxGuests, l.CancellationPolicy,
		l.IsActive, l.IsVerified, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

// GetByID loads the listing together with its blocked ranges.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE id = $1`

	l, err := withRetry(ctx, r.strategy, func() (*domain.Listing, error) {
		return scanListing(r.db.QueryRowContext(ctx, query, id))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l.BlockedDates, err = r.blockedRanges(ctx, id)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *ListingRepository) blockedRanges(ctx context.Context, listingID string) ([]domain.BlockedRange, error) {
	query := `SELECT id, listing_id, start_date, end_date, reason, booking_id, created_at
			  FROM blocked_ranges
			  WHERE listing_id = $1
			  ORDER BY start_date`

	return withRetry(ctx, r.strategy, func() ([]domain.BlockedRange, error) {
		rows, err := r.db.QueryContext(ctx, query, listingID)
		if err != nil {
			return nil, fmt.Errorf("list blocked ranges: %w", err)
		}
		defer rows.Close()

		var res []domain.BlockedRange
		for rows.Next() {
			var b domain.BlockedRange
			var bookingID sql.NullString
			if err = rows.Scan(&b.ID, &b.ListingID, &b.StartDate, &b.EndDate, &b.Reason, &bookingID, &b.CreatedAt); err != nil {
				return nil, fmt.Errorf("scan blocked range: %w", err)
			}
			b.StartDate = b.StartDate.UTC()
			b.EndDate = b.EndDate.UTC()
			b.BookingID = bookingID.String
			res = append(res, b)
		}

		return res, rows.Err()
	})
}

// List returns active, verified listings. Blocked ranges are not loaded.
func (r *ListingRepository) List(ctx context.Context, f domain.ListingFilter) (*domain.ListingPage, error) {
	where := `WHERE is_active AND is_verified
			    AND ($1::text = '' OR city ILIKE '%' || $1 || '%')
			    AND ($2::bigint IS NULL OR price >= $2)
			    AND ($3::bigint IS NULL OR price <= $3)
			    AND max_guests >= $4`
	args := []any{f.City, f.MinPrice, f.MaxPrice, f.Guests}

	return withRetry(ctx, r.strategy, func() (*domain.ListingPage, error) {
		page := &domain.ListingPage{Listings: []*domain.Listing{}}
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings `+where, args...).Scan(&page.Total); err != nil {
			return nil, fmt.Errorf("count listings: %w", err)
		}

		query := `SELECT ` + listingColumns + ` FROM listings ` + where + `
				  ORDER BY created_at DESC
				  LIMIT $5 OFFSET $6`
		rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
		if err != nil {
			return nil, fmt.Errorf("list listings: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			l, err := scanListing(rows)
			if err != nil {
				return nil, fmt.Errorf("scan listing: %w", err)
			}
			page.Listings = append(page.Listings, l)
		}

		return page, rows.Err()
	})
}

func (r *ListingRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE host_id = $1
			  ORDER BY created_at DESC`

	return withRetry(ctx, r.strategy, func() ([]*domain.Listing, error) {
		return r.queryListings(ctx, query, hostID)
	})
}

// AppendBlockedRange adds a range to the ledger under the listing row lock.
func (r *ListingRepository) AppendBlockedRange(ctx context.Context, b *domain.BlockedRange) error {
	tx, err := r.db.BeginTxWithRetry(ctx, r.strategy, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, b.ListingID); err != nil {
		return err
	}

	if err = insertBlockedRange(ctx, tx, b); err != nil {
		return err
	}

	if err = bumpVersion(ctx, tx, b.ListingID, b.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ListingRepository) SetVerified(ctx context.Context, id string, verified bool, at time.Time) error {
	query := `UPDATE listings
			  SET is_verified = $2,
			      verified_at = CASE WHEN $2 THEN $3::timestamptz ELSE NULL END,
			      updated_at  = $3
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, verified, at)
	if err != nil {
		return fmt.Errorf("verify listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET title = $2, description = $3, city = $4, address = $5, category = $6,
			      amenities = $7, price = $8, max_guests = $9, cancellation_policy = $10,
			      is_verified = $11, verified_at = $12, updated_at = $13
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		l.ID, l.Title, l.Description, l.City, l.Address, l.Category,
		pq.Array(l.Amenities), l.Price, l.MaxGuests, l.CancellationPolicy,
		l.IsVerified, l.VerifiedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// Deactivate checks for upcoming bookings under the listing row lock, so a
// booking created concurrently either lands before the check or fails on the
// inactive listing.
func (r *ListingRepository) Deactivate(ctx context.Context, id string, from, at time.Time) error {
	tx, err := r.db.BeginTxWithRetry(ctx, r.strategy, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, id); err != nil {
		return err
	}

	var upcoming int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE listing_id = $1 AND status = ANY($2) AND end_date >= $3`,
		id, pq.Array(domain.ActiveStatuses), from,
	).Scan(&upcoming)
	if err != nil {
		return fmt.Errorf("count upcoming bookings: %w", err)
	}
	if upcoming > 0 {
		return domain.ErrHasBookings
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE listings SET is_active = FALSE, updated_at = $2 WHERE id = $1`, id, at,
	); err != nil {
		return fmt.Errorf("deactivate listing: %w", err)
	}

	return tx.Commit()
}

// ListAll is the admin index: every listing, optionally narrowed by status and a title/city search.
func (r *ListingRepository) ListAll(ctx context.Context, f domain.AdminListingFilter) (*domain.ListingPage, error) {
	where := `WHERE ($1::text = ''
				    OR ($1 = 'pending' AND NOT is_verified)
				    OR ($1 = 'verified' AND is_verified)
				    OR ($1 = 'inactive' AND NOT is_active))
				AND ($2::text = '' OR title ILIKE '%' || $2 || '%' OR city ILIKE '%' || $2 || '%')`
	args := []any{string(f.Status), f.Search}

	return withRetry(ctx, r.strategy, func() (*domain.ListingPage, error) {
		page := &domain.ListingPage{Listings: []*domain.Listing{}}
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings `+where, args...).Scan(&page.Total); err != nil {
			return nil, fmt.Errorf("count listings: %w", err)
		}

		query := `SELECT ` + listingColumns + ` FROM listings ` + where + `
				  ORDER BY created_at DESC
				  LIMIT $3 OFFSET $4`
		listings, err := r.queryListings(ctx, query, append(args, f.Limit, f.Offset())...)
		if err != nil {
			return nil, err
		}
		page.Listings = append(page.Listings, listings...)

		return page, nil
	})
}

func (r *ListingRepository) ListFeatured(ctx context.Context, minRating float64, limit int) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE is_active AND is_verified AND average_rating >= $1
			  ORDER BY average_rating DESC, review_count DESC
			  LIMIT $2`

	return withRetry(ctx, r.strategy, func() ([]*domain.Listing, error) {
		return r.queryListings(ctx, query, minRating, limit)
	})
}

func (r *ListingRepository) queryListings(ctx context.Context, query string, args ...any) ([]*domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

// lockListing takes the per-listing row lock that serializes ledger and booking writes.
func lockListing(ctx context.Context, tx *sql.Tx, listingID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, listingID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}
	return nil
}

func insertBlockedRange(ctx context.Context, tx *sql.Tx, b *domain.BlockedRange) error {
	query := `INSERT INTO blocked_ranges (id, listing_id, start_date, end_date, reason, booking_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (booking_id) DO NOTHING`

	var bookingID sql.NullString
	if b.BookingID != "" {
		bookingID = sql.NullString{String: b.BookingID, Valid: true}
	}

	_, err := tx.ExecContext(ctx, query,
		b.ID, b.ListingID, b.StartDate, b.EndDate, b.Reason, bookingID, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blocked range: %w", err)
	}
	return nil
}

func bumpVersion(ctx context.Context, tx *sql.Tx, listingID string, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE listings SET version = version + 1, updated_at = $2 WHERE id = $1`,
		listingID, at,
	)
	if err != nil {
		return fmt.Errorf("bump listing version: %w", err)
	}
	return nil
}
