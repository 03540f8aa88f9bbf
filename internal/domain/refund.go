package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	fullRefund = decimal.NewFromInt(1)
	halfRefund = decimal.RequireFromString("0.5")
)

// DaysUntil counts whole days from now to start, rounding up.
func DaysUntil(start, now time.Time) int {
	return ceilDays(start.Sub(now))
}

func (b *Booking) DaysUntilCheckin(now time.Time) int {
	return DaysUntil(b.StartDate, now)
}

// CanBeCancelled requires an active booking and at least one day before check-in.
func (b *Booking) CanBeCancelled(now time.Time) bool {
	return b.Status.IsActive() && b.DaysUntilCheckin(now) >= 1
}

// RefundFraction maps a policy and notice period to the refunded share of the total.
func RefundFraction(policy CancellationPolicy, days int) decimal.Decimal {
	switch policy {
	case PolicyFlexible:
		if days >= 1 {
			return fullRefund
		}
	case PolicyModerate:
		if days >= 5 {
			return fullRefund
		}
		if days >= 1 {
			return halfRefund
		}
	case PolicyStrict:
		if days >= 7 {
			return fullRefund
		}
		if days >= 3 {
			return halfRefund
		}
	}
	return decimal.Zero
}

// CalculateRefund is zero for bookings that can no longer be cancelled.
func CalculateRefund(b *Booking, policy CancellationPolicy, now time.Time) decimal.Decimal {
	if !b.CanBeCancelled(now) {
		return decimal.Zero
	}
	fraction := RefundFraction(policy, b.DaysUntilCheckin(now))
	return decimal.NewFromInt(b.TotalPrice).Mul(fraction).Round(2)
}
