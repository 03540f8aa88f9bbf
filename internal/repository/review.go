package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const reviewColumns = `id, listing_id, booking_id, guest_id, rating, comment, is_public, is_flagged,
	flag_reason, host_response, host_responded_at, moderated_by, moderated_at, created_at, updated_at`

func scanReview(s scanner) (*domain.Review, error) {
	var (
		rv          domain.Review
		response    sql.NullString
		respondedAt sql.NullTime
		moderatedBy sql.NullString
		moderatedAt sql.NullTime
	)
	err := s.Scan(
		&rv.ID, &rv.ListingID, &rv.BookingID, &rv.GuestID, &rv.Rating, &rv.Comment,
		&rv.IsPublic, &rv.IsFlagged, &rv.FlagReason, &response, &respondedAt,
		&moderatedBy, &moderatedAt, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if response.Valid {
		rv.HostResponse = &domain.HostResponse{Comment: response.String, RespondedAt: respondedAt.Time}
	}
	rv.ModeratedBy = moderatedBy.String
	if moderatedAt.Valid {
		at := moderatedAt.Time
		rv.ModeratedAt = &at
	}

	return &rv, nil
}

// Create inserts the review and recomputes the listing's rating aggregate.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.inTx(ctx, rv, func(tx *sql.Tx) error {
		query := `INSERT INTO reviews (id, listing_id, booking_id, guest_id, rating, comment,
				  is_public, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := tx.ExecContext(ctx, query,
			rv.ID, rv.ListingID, rv.BookingID, rv.GuestID, rv.Rating, rv.Comment,
			rv.IsPublic, rv.CreatedAt, rv.UpdatedAt,
		)
		if err != nil {
			if pqCode(err) == codeUniqueViolation {
				return domain.ErrReviewExists
			}
			return fmt.Errorf("insert review: %w", err)
		}
		return nil
	})
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	rv, err := withRetry(ctx, r.strategy, func() (*domain.Review, error) {
		return scanReview(r.db.QueryRowContext(ctx, query, id))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return rv, nil
}

// Update writes every mutable column, so edits, flags, host responses and
// moderation all go through here.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.inTx(ctx, rv, func(tx *sql.Tx) error {
		var (
			response    sql.NullString
			respondedAt sql.NullTime
			moderatedBy sql.NullString
			moderatedAt sql.NullTime
		)
		if rv.HostResponse != nil {
			response = sql.NullString{String: rv.HostResponse.Comment, Valid: true}
			respondedAt = sql.NullTime{Time: rv.HostResponse.RespondedAt, Valid: true}
		}
		if rv.ModeratedBy != "" {
			moderatedBy = sql.NullString{String: rv.ModeratedBy, Valid: true}
		}
		if rv.ModeratedAt != nil {
			moderatedAt = sql.NullTime{Time: *rv.ModeratedAt, Valid: true}
		}

		query := `UPDATE reviews
				  SET rating = $2, comment = $3, is_public = $4, is_flagged = $5, flag_reason = $6,
				      host_response = $7, host_responded_at = $8, moderated_by = $9,
				      moderated_at = $10, updated_at = $11
				  WHERE id = $1`
		res, err := tx.ExecContext(ctx, query,
			rv.ID, rv.Rating, rv.Comment, rv.IsPublic, rv.IsFlagged, rv.FlagReason,
			response, respondedAt, moderatedBy, moderatedAt, rv.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		return expectOneRow(res, domain.ErrReviewNotFound)
	})
}

func (r *ReviewRepository) Delete(ctx context.Context, rv *domain.Review) error {
	return r.inTx(ctx, rv, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, rv.ID)
		if err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		return expectOneRow(res, domain.ErrReviewNotFound)
	})
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string, limit, offset int) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE listing_id = $1 AND is_public
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, listingID, limit, offset)
}

func (r *ReviewRepository) ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE guest_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, guestID, limit, offset)
}

func (r *ReviewRepository) ListFlagged(ctx context.Context, limit, offset int) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE is_flagged
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	return r.list(ctx, query, limit, offset)
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	return withRetry(ctx, r.strategy, func() ([]*domain.Review, error) {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}
		defer rows.Close()

		res := []*domain.Review{}
		for rows.Next() {
			rv, err := scanReview(rows)
			if err != nil {
				return nil, fmt.Errorf("scan review: %w", err)
			}
			res = append(res, rv)
		}

		return res, rows.Err()
	})
}

// inTx runs write under the listing row lock and then recomputes the
// listing's rating over its public reviews.
func (r *ReviewRepository) inTx(ctx context.Context, rv *domain.Review, write func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTxWithRetry(ctx, r.strategy, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, rv.ListingID); err != nil {
		return err
	}

	if err = write(tx); err != nil {
		return err
	}

	aggQuery := `UPDATE listings l
				 SET review_count = s.cnt,
				     average_rating = ROUND(s.avg, 1),
				     updated_at = $2
				 FROM (SELECT COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg
				       FROM reviews WHERE listing_id = $1 AND is_public) s
				 WHERE l.id = $1`
	if _, err = tx.ExecContext(ctx, aggQuery, rv.ListingID, rv.UpdatedAt); err != nil {
		return fmt.Errorf("update listing rating: %w", err)
	}

	return tx.Commit()
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
