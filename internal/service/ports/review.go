package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// ReviewRepo keeps the listing rating aggregate in step with public reviews:
// every write below recomputes it in the same transaction.
type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, r *domain.Review) error
	// ListByListing returns public reviews only.
	ListByListing(ctx context.Context, listingID string, limit, offset int) ([]*domain.Review, error)
	ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]*domain.Review, error)
	ListFlagged(ctx context.Context, limit, offset int) ([]*domain.Review, error)
}
