package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, host *domain.User, b *domain.Booking, l *domain.Listing)
	NotifyBookingConfirmed(ctx context.Context, guest *domain.User, b *domain.Booking, l *domain.Listing)
	NotifyBookingCancelled(ctx context.Context, guest, host *domain.User, b *domain.Booking, l *domain.Listing)
}
