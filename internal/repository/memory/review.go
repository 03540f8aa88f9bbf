package memory

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ReviewRepository struct {
	store *Store
}

func NewReviewRepo(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

func copyReview(rv *domain.Review) *domain.Review {
	c := *rv
	if rv.HostResponse != nil {
		hr := *rv.HostResponse
		c.HostResponse = &hr
	}
	if rv.ModeratedAt != nil {
		at := *rv.ModeratedAt
		c.ModeratedAt = &at
	}
	return &c
}

func (r *ReviewRepository) Create(_ context.Context, rv *domain.Review) error {
	return r.write(rv.ListingID, rv.UpdatedAt, func() error {
		for _, existing := range r.store.reviews {
			if existing.BookingID == rv.BookingID {
				return domain.ErrReviewExists
			}
		}
		r.store.reviews[rv.ID] = copyReview(rv)
		return nil
	})
}

func (r *ReviewRepository) GetByID(_ context.Context, id string) (*domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rv, ok := r.store.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return copyReview(rv), nil
}

func (r *ReviewRepository) Update(_ context.Context, rv *domain.Review) error {
	return r.write(rv.ListingID, rv.UpdatedAt, func() error {
		if _, ok := r.store.reviews[rv.ID]; !ok {
			return domain.ErrReviewNotFound
		}
		r.store.reviews[rv.ID] = copyReview(rv)
		return nil
	})
}

func (r *ReviewRepository) Delete(_ context.Context, rv *domain.Review) error {
	return r.write(rv.ListingID, rv.UpdatedAt, func() error {
		if _, ok := r.store.reviews[rv.ID]; !ok {
			return domain.ErrReviewNotFound
		}
		delete(r.store.reviews, rv.ID)
		return nil
	})
}

func (r *ReviewRepository) ListByListing(_ context.Context, listingID string, limit, offset int) ([]*domain.Review, error) {
	return r.list(limit, offset, func(rv *domain.Review) bool {
		return rv.ListingID == listingID && rv.IsPublic
	}), nil
}

func (r *ReviewRepository) ListByGuest(_ context.Context, guestID string, limit, offset int) ([]*domain.Review, error) {
	return r.list(limit, offset, func(rv *domain.Review) bool {
		return rv.GuestID == guestID
	}), nil
}

func (r *ReviewRepository) ListFlagged(_ context.Context, limit, offset int) ([]*domain.Review, error) {
	return r.list(limit, offset, func(rv *domain.Review) bool {
		return rv.IsFlagged
	}), nil
}

func (r *ReviewRepository) list(limit, offset int, keep func(*domain.Review) bool) []*domain.Review {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res := []*domain.Review{}
	for _, rv := range r.store.reviews {
		if keep(rv) {
			res = append(res, copyReview(rv))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })

	return paginate(res, limit, offset)
}

// write applies fn under the listing lock and recomputes the rating over public reviews.
func (r *ReviewRepository) write(listingID string, at time.Time, fn func() error) error {
	unlock := r.store.lockListing(listingID)
	defer unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.listings[listingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	if err := fn(); err != nil {
		return err
	}

	sum, n := 0, 0
	for _, rv := range r.store.reviews {
		if rv.ListingID == listingID && rv.IsPublic {
			sum += rv.Rating
			n++
		}
	}
	l.ReviewCount = n
	l.AverageRating = 0
	if n > 0 {
		l.AverageRating = math.Round(float64(sum)/float64(n)*10) / 10
	}
	l.UpdatedAt = at
	return nil
}
