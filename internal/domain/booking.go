package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRefunded  BookingStatus = "refunded"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// transitions is the only place allowed status changes are defined.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCancelled: nil,
	BookingStatusCompleted: nil,
	BookingStatusRefunded:  nil,
}

func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition consults the transition table. Unknown statuses never transition.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (g Guests) Total() int {
	return g.Adults + g.Children
}

type PriceBreakdown struct {
	BasePrice   int64 `json:"base_price"`
	CleaningFee int64 `json:"cleaning_fee"`
	ServiceFee  int64 `json:"service_fee"`
	Taxes       int64 `json:"taxes"`
}

func (p PriceBreakdown) Total() int64 {
	return p.BasePrice + p.CleaningFee + p.ServiceFee + p.Taxes
}

type Cancellation struct {
	Reason       string          `json:"reason"`
	CancelledAt  time.Time       `json:"cancelled_at"`
	CancelledBy  string          `json:"cancelled_by"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

type Booking struct {
	ID              string         `json:"id"`
	ListingID       string         `json:"listing_id"`
	GuestID         string         `json:"guest_id"`
	HostID          string         `json:"host_id"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	Guests          Guests         `json:"guests"`
	TotalPrice      int64          `json:"total_price"`
	PriceBreakdown  PriceBreakdown `json:"price_breakdown"`
	Status          BookingStatus  `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	SpecialRequests string         `json:"special_requests,omitempty"`
	HostNotes       string         `json:"host_notes,omitempty"`
	Cancellation    *Cancellation  `json:"cancellation,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

func (b *Booking) Nights() int {
	return b.Range().Nights()
}

type CreateBookingInput struct {
	ListingID       string
	GuestID         string
	StartDate       time.Time
	EndDate         time.Time
	Guests          Guests
	SpecialRequests string
}

type TransitionInput struct {
	BookingID string
	To        BookingStatus
	Actor     Actor
	Reason    string
	HostNotes string
}

// StatusChange is persisted as one unit: the status compare-and-set plus its ledger effects.
type StatusChange struct {
	BookingID    string
	ListingID    string
	From         BookingStatus
	To           BookingStatus
	HostNotes    string
	Cancellation *Cancellation
	Block        *BlockedRange
	ReleaseBlock bool
	At           time.Time
}

type BookingFilter struct {
	Status BookingStatus
	Page   int
	Limit  int
}

func (f BookingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type BookingPage struct {
	Bookings []*Booking `json:"bookings"`
	Total    int        `json:"total"`
}
