package notification

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

// Multi fans every notification out to each wrapped notifier in order.
type Multi []ports.BookingNotifier

func NewMulti(notifiers ...ports.BookingNotifier) Multi {
	return Multi(notifiers)
}

func (m Multi) NotifyBookingCreated(ctx context.Context, host *domain.User, b *domain.Booking, l *domain.Listing) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, host, b, l)
	}
}

func (m Multi) NotifyBookingConfirmed(ctx context.Context, guest *domain.User, b *domain.Booking, l *domain.Listing) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, guest, b, l)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, guest, host *domain.User, b *domain.Booking, l *domain.Listing) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, guest, host, b, l)
	}
}
