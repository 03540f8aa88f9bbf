package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, listing_id, guest_id, host_id, start_date, end_date, adults, children,
	base_price, cleaning_fee, service_fee, taxes, total_price, status, payment_status,
	special_requests, host_notes, cancellation_reason, cancelled_at, cancelled_by, refund_amount,
	created_at, updated_at`

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		reason      sql.NullString
		cancelledBy sql.NullString
		cancelledAt sql.NullTime
		refund      decimal.NullDecimal
	)
	err := s.Scan(
		&b.ID, &b.ListingID, &b.GuestID, &b.HostID, &b.StartDate, &b.EndDate,
		&b.Guests.Adults, &b.Guests.Children,
		&b.PriceBreakdown.BasePrice, &b.PriceBreakdown.CleaningFee,
		&b.PriceBreakdown.ServiceFee, &b.PriceBreakdown.Taxes, &b.TotalPrice,
		&b.Status, &b.PaymentStatus, &b.SpecialRequests, &b.HostNotes,
		&reason, &cancelledAt, &cancelledBy, &refund,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.StartDate = b.StartDate.UTC()
	b.EndDate = b.EndDate.UTC()

	if cancelledAt.Valid {
		b.Cancellation = &domain.Cancellation{
			Reason:       reason.String,
			CancelledAt:  cancelledAt.Time,
			CancelledBy:  cancelledBy.String,
			RefundAmount: refund.Decimal,
		}
	}

	return &b, nil
}

// Create inserts a pending booking. The listing row is locked for the whole
// transaction so concurrent requests for the same listing are checked one at a time.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTxWithRetry(ctx, r.strategy, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, b.ListingID); err != nil {
		return err
	}

	// Повторная проверка под блокировкой
	var blocked bool
	blockedQuery := `SELECT EXISTS (
						SELECT 1 FROM blocked_ranges
						WHERE listing_id = $1 AND start_date <= $3 AND end_date >= $2
					 )`
	if err = tx.QueryRowContext(ctx, blockedQuery, b.ListingID, b.StartDate, b.EndDate).Scan(&blocked); err != nil {
		return fmt.Errorf("check blocked ranges: %w", err)
	}
	if blocked {
		return domain.ErrUnavailable
	}

	var overlapping int
	if err = tx.QueryRowContext(ctx, overlapQuery,
		b.ListingID, b.StartDate, b.EndDate, pq.Array(domain.ActiveStatuses),
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrUnavailable
	}

	query := `INSERT INTO bookings (id, listing_id, guest_id, host_id, start_date, end_date,
			  adults, children, base_price, cleaning_fee, service_fee, taxes, total_price,
			  status, payment_status, special_requests, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.ListingID, b.GuestID, b.HostID, b.StartDate, b.EndDate,
		b.Guests.Adults, b.Guests.Children,
		b.PriceBreakdown.BasePrice, b.PriceBreakdown.CleaningFee,
		b.PriceBreakdown.ServiceFee, b.PriceBreakdown.Taxes, b.TotalPrice,
		b.Status, b.PaymentStatus, b.SpecialRequests, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pqCode(err) == codeExclusionViolation {
			return domain.ErrUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE listings SET total_bookings = total_bookings + 1, updated_at = $2 WHERE id = $1`,
		b.ListingID, b.CreatedAt,
	); err != nil {
		return fmt.Errorf("increment total bookings: %w", err)
	}

	return tx.Commit()
}

const overlapQuery = `SELECT COUNT(*) FROM bookings
					  WHERE listing_id = $1
					    AND start_date <= $3 AND end_date >= $2
					    AND status = ANY($4)`

func (r *BookingRepository) CountOverlapping(ctx context.Context, listingID string, rng domain.DateRange) (int, error) {
	return withRetry(ctx, r.strategy, func() (int, error) {
		var n int
		err := r.db.QueryRowContext(ctx, overlapQuery,
			listingID, rng.Start, rng.End, pq.Array(domain.ActiveStatuses),
		).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("count overlapping bookings: %w", err)
		}
		return n, nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	b, err := withRetry(ctx, r.strategy, func() (*domain.Booking, error) {
		return scanBooking(r.db.QueryRowContext(ctx, query, id))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return b, nil
}

// ApplyTransition persists a status change and its ledger effects in one
// transaction. The status update only succeeds if the booking still has change.From.
func (r *BookingRepository) ApplyTransition(ctx context.Context, change domain.StatusChange) error {
	tx, err := r.db.BeginTxWithRetry(ctx, r.strategy, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, change.ListingID); err != nil {
		return err
	}

	var (
		reason      sql.NullString
		cancelledAt sql.NullTime
		cancelledBy sql.NullString
		refund      decimal.NullDecimal
	)
	if c := change.Cancellation; c != nil {
		reason = sql.NullString{String: c.Reason, Valid: true}
		cancelledAt = sql.NullTime{Time: c.CancelledAt, Valid: true}
		cancelledBy = sql.NullString{String: c.CancelledBy, Valid: true}
		refund = decimal.NullDecimal{Decimal: c.RefundAmount, Valid: true}
	}

	query := `UPDATE bookings
			  SET status = $3,
			      host_notes = COALESCE(NULLIF($4, ''), host_notes),
			      cancellation_reason = COALESCE($5, cancellation_reason),
			      cancelled_at = COALESCE($6, cancelled_at),
			      cancelled_by = COALESCE($7, cancelled_by),
			      refund_amount = COALESCE($8, refund_amount),
			      updated_at = $9
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query,
		change.BookingID, change.From, change.To, change.HostNotes,
		reason, cancelledAt, cancelledBy, refund, change.At,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		// Определяем причину: бронь не найдена или статус уже изменён
		var current domain.BookingStatus
		scanErr := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, change.BookingID).Scan(&current)
		if scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return &domain.TransitionError{From: current, To: change.To}
	}

	if change.Block != nil {
		if err = insertBlockedRange(ctx, tx, change.Block); err != nil {
			return err
		}
	}

	if change.ReleaseBlock {
		if _, err = tx.ExecContext(ctx, `DELETE FROM blocked_ranges WHERE booking_id = $1`, change.BookingID); err != nil {
			return fmt.Errorf("release blocked range: %w", err)
		}
	}

	if change.Block != nil || change.ReleaseBlock {
		if err = bumpVersion(ctx, tx, change.ListingID, change.At); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID string, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(ctx, `guest_id = $1`, guestID, f)
}

func (r *BookingRepository) ListByHost(ctx context.Context, hostID string, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(ctx, `host_id = $1`, hostID, f)
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(ctx, `$1::text = ''`, "", f)
}

// page runs a filtered, paginated booking query. cond must reference $1 only.
func (r *BookingRepository) page(ctx context.Context, cond string, arg string, f domain.BookingFilter) (*domain.BookingPage, error) {
	where := `WHERE ` + cond + ` AND ($2::text = '' OR status = $2)`

	return withRetry(ctx, r.strategy, func() (*domain.BookingPage, error) {
		page := &domain.BookingPage{Bookings: []*domain.Booking{}}
		if err := r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM bookings `+where, arg, f.Status,
		).Scan(&page.Total); err != nil {
			return nil, fmt.Errorf("count bookings: %w", err)
		}

		query := `SELECT ` + bookingColumns + ` FROM bookings ` + where + `
				  ORDER BY created_at DESC
				  LIMIT $3 OFFSET $4`
		rows, err := r.db.QueryContext(ctx, query, arg, f.Status, f.Limit, f.Offset())
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			b, err := scanBooking(rows)
			if err != nil {
				return nil, fmt.Errorf("scan booking: %w", err)
			}
			page.Bookings = append(page.Bookings, b)
		}

		return page, rows.Err()
	})
}

func (r *BookingRepository) ListFinished(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	return r.listByStatusBefore(ctx, domain.BookingStatusConfirmed, "end_date", before)
}

func (r *BookingRepository) ListStalePending(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	return r.listByStatusBefore(ctx, domain.BookingStatusPending, "start_date", before)
}

func (r *BookingRepository) listByStatusBefore(
	ctx context.Context,
	status domain.BookingStatus,
	column string,
	before time.Time,
) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND ` + column + ` < $2
			  ORDER BY ` + column

	return withRetry(ctx, r.strategy, func() ([]*domain.Booking, error) {
		rows, err := r.db.QueryContext(ctx, query, status, before)
		if err != nil {
			return nil, fmt.Errorf("list %s bookings: %w", status, err)
		}
		defer rows.Close()

		var res []*domain.Booking
		for rows.Next() {
			b, err := scanBooking(rows)
			if err != nil {
				return nil, fmt.Errorf("scan booking: %w", err)
			}
			res = append(res, b)
		}

		return res, rows.Err()
	})
}
