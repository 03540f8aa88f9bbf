package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepo(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create re-checks both conflict sources under the listing lock before inserting.
func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	unlock := r.store.lockListing(b.ListingID)
	defer unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[b.ListingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	if !l.IsAvailable(b.Range()) || r.overlapping(b.ListingID, b.Range()) > 0 {
		return domain.ErrUnavailable
	}

	r.store.bookings[b.ID] = copyBooking(b)
	l.TotalBookings++
	l.UpdatedAt = b.CreatedAt
	return nil
}

func (r *BookingRepository) overlapping(listingID string, rng domain.DateRange) int {
	n := 0
	for _, b := range r.store.bookings {
		if b.ListingID == listingID && b.Status.IsActive() && b.Range().Overlaps(rng) {
			n++
		}
	}
	return n
}

func (r *BookingRepository) CountOverlapping(_ context.Context, listingID string, rng domain.DateRange) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.overlapping(listingID, rng), nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

func (r *BookingRepository) ApplyTransition(_ context.Context, change domain.StatusChange) error {
	unlock := r.store.lockListing(change.ListingID)
	defer unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[change.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != change.From {
		return &domain.TransitionError{From: b.Status, To: change.To}
	}
	l, ok := r.store.listings[change.ListingID]
	if !ok {
		return domain.ErrListingNotFound
	}

	b.Status = change.To
	b.UpdatedAt = change.At
	if change.HostNotes != "" {
		b.HostNotes = change.HostNotes
	}
	if change.Cancellation != nil {
		c := *change.Cancellation
		b.Cancellation = &c
	}

	if change.Block != nil {
		appendBlock(l, *change.Block, change.At)
	}
	if change.ReleaseBlock {
		kept := l.BlockedDates[:0]
		for _, br := range l.BlockedDates {
			if br.BookingID != change.BookingID {
				kept = append(kept, br)
			}
		}
		l.BlockedDates = kept
		l.Version++
		l.UpdatedAt = change.At
	}

	return nil
}

func (r *BookingRepository) ListByGuest(_ context.Context, guestID string, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(func(b *domain.Booking) bool { return b.GuestID == guestID }, f), nil
}

func (r *BookingRepository) ListByHost(_ context.Context, hostID string, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(func(b *domain.Booking) bool { return b.HostID == hostID }, f), nil
}

func (r *BookingRepository) List(_ context.Context, f domain.BookingFilter) (*domain.BookingPage, error) {
	return r.page(func(*domain.Booking) bool { return true }, f), nil
}

func (r *BookingRepository) page(match func(*domain.Booking) bool, f domain.BookingFilter) *domain.BookingPage {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*domain.Booking
	for _, b := range r.store.bookings {
		if !match(b) || (f.Status != "" && b.Status != f.Status) {
			continue
		}
		matched = append(matched, copyBooking(b))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return &domain.BookingPage{
		Bookings: paginate(matched, f.Limit, f.Offset()),
		Total:    len(matched),
	}
}

func (r *BookingRepository) ListFinished(_ context.Context, before time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusConfirmed && b.EndDate.Before(before)
	}), nil
}

func (r *BookingRepository) ListStalePending(_ context.Context, before time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && b.StartDate.Before(before)
	}), nil
}

func (r *BookingRepository) filter(match func(*domain.Booking) bool) []*domain.Booking {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.store.bookings {
		if match(b) {
			res = append(res, copyBooking(b))
		}
	}
	return res
}
