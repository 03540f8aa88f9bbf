package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepo interface {
	// Create re-checks both conflict sources and inserts atomically per listing.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, listingID string, r domain.DateRange) (int, error)
	ApplyTransition(ctx context.Context, change domain.StatusChange) error
	ListByGuest(ctx context.Context, guestID string, filter domain.BookingFilter) (*domain.BookingPage, error)
	ListByHost(ctx context.Context, hostID string, filter domain.BookingFilter) (*domain.BookingPage, error)
	List(ctx context.Context, filter domain.BookingFilter) (*domain.BookingPage, error)
	ListFinished(ctx context.Context, before time.Time) ([]*domain.Booking, error)
	ListStalePending(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}
