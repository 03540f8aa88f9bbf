package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepository struct {
	store *Store
}

func NewListingRepo(store *Store) *ListingRepository {
	return &ListingRepository{store: store}
}

func (r *ListingRepository) Create(_ context.Context, l *domain.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.listings[l.ID] = copyListing(l)
	return nil
}

func (r *ListingRepository) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return copyListing(l), nil
}

func (r *ListingRepository) List(_ context.Context, f domain.ListingFilter) (*domain.ListingPage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*domain.Listing
	for _, l := range r.store.listings {
		if !l.Bookable() || l.MaxGuests < f.Guests {
			continue
		}
		if f.City != "" && !containsFold(l.City, f.City) {
			continue
		}
		if f.MinPrice != nil && l.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && l.Price > *f.MaxPrice {
			continue
		}
		c := copyListing(l)
		c.BlockedDates = nil
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return &domain.ListingPage{
		Listings: paginate(matched, f.Limit, f.Offset()),
		Total:    len(matched),
	}, nil
}

func (r *ListingRepository) ListByHost(_ context.Context, hostID string) ([]*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Listing
	for _, l := range r.store.listings {
		if l.HostID == hostID {
			res = append(res, copyListing(l))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *ListingRepository) AppendBlockedRange(_ context.Context, b *domain.BlockedRange) error {
	unlock := r.store.lockListing(b.ListingID)
	defer unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[b.ListingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	appendBlock(l, *b, b.CreatedAt)
	return nil
}

func (r *ListingRepository) SetVerified(_ context.Context, id string, verified bool, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.IsVerified = verified
	l.VerifiedAt = nil
	if verified {
		t := at
		l.VerifiedAt = &t
	}
	l.UpdatedAt = at
	return nil
}

func (r *ListingRepository) Update(_ context.Context, l *domain.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.listings[l.ID]
	if !ok {
		return domain.ErrListingNotFound
	}
	c := copyListing(l)
	c.BlockedDates = existing.BlockedDates
	c.Version = existing.Version
	c.TotalBookings = existing.TotalBookings
	c.AverageRating = existing.AverageRating
	c.ReviewCount = existing.ReviewCount
	r.store.listings[l.ID] = c
	return nil
}

func (r *ListingRepository) Deactivate(_ context.Context, id string, from, at time.Time) error {
	unlock := r.store.lockListing(id)
	defer unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	for _, b := range r.store.bookings {
		if b.ListingID == id && b.Status.IsActive() && !b.EndDate.Before(from) {
			return domain.ErrHasBookings
		}
	}
	l.IsActive = false
	l.UpdatedAt = at
	return nil
}

func (r *ListingRepository) ListAll(_ context.Context, f domain.AdminListingFilter) (*domain.ListingPage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*domain.Listing
	for _, l := range r.store.listings {
		if !f.Status.Matches(l) {
			continue
		}
		if f.Search != "" && !containsFold(l.Title, f.Search) && !containsFold(l.City, f.Search) {
			continue
		}
		c := copyListing(l)
		c.BlockedDates = nil
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return &domain.ListingPage{
		Listings: paginate(matched, f.Limit, f.Offset()),
		Total:    len(matched),
	}, nil
}

func (r *ListingRepository) ListFeatured(_ context.Context, minRating float64, limit int) ([]*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Listing
	for _, l := range r.store.listings {
		if l.Bookable() && l.AverageRating >= minRating {
			c := copyListing(l)
			c.BlockedDates = nil
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].AverageRating != res[j].AverageRating {
			return res[i].AverageRating > res[j].AverageRating
		}
		return res[i].ReviewCount > res[j].ReviewCount
	})

	return paginate(res, limit, 0), nil
}

// appendBlock skips a range already recorded for the same booking.
func appendBlock(l *domain.Listing, b domain.BlockedRange, at time.Time) {
	if b.BookingID != "" {
		for _, existing := range l.BlockedDates {
			if existing.BookingID == b.BookingID {
				return
			}
		}
	}
	l.BlockedDates = append(l.BlockedDates, b)
	sort.Slice(l.BlockedDates, func(i, j int) bool {
		return l.BlockedDates[i].StartDate.Before(l.BlockedDates[j].StartDate)
	})
	l.Version++
	l.UpdatedAt = at
}
