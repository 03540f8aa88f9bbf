// Package memory is a process-local storage driver. It honours the same
// atomicity contract as the Postgres repositories: every write that touches a
// listing's ledger or bookings runs under that listing's lock.
package memory

import (
	"strings"
	"sync"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	listings map[string]*domain.Listing
	bookings map[string]*domain.Booking
	reviews  map[string]*domain.Review

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		listings: make(map[string]*domain.Listing),
		bookings: make(map[string]*domain.Booking),
		reviews:  make(map[string]*domain.Review),
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockListing returns the unlock func for the listing's critical section.
func (s *Store) lockListing(id string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

func copyListing(l *domain.Listing) *domain.Listing {
	c := *l
	c.Amenities = append([]string(nil), l.Amenities...)
	c.BlockedDates = append([]domain.BlockedRange(nil), l.BlockedDates...)
	return &c
}

func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.Cancellation != nil {
		cc := *b.Cancellation
		c.Cancellation = &cc
	}
	return &c
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
