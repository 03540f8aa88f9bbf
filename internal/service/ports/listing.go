package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) (*domain.ListingPage, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Listing, error)
	AppendBlockedRange(ctx context.Context, b *domain.BlockedRange) error
	SetVerified(ctx context.Context, id string, verified bool, at time.Time) error
	Update(ctx context.Context, l *domain.Listing) error
	// Deactivate hides the listing unless it has pending or confirmed bookings ending on or after from.
	Deactivate(ctx context.Context, id string, from, at time.Time) error
	ListAll(ctx context.Context, filter domain.AdminListingFilter) (*domain.ListingPage, error)
	ListFeatured(ctx context.Context, minRating float64, limit int) ([]*domain.Listing, error)
}

// ListingCache returns (nil, nil) on a miss.
type ListingCache interface {
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Set(ctx context.Context, l *domain.Listing) error
	Invalidate(ctx context.Context, id string) error
}
