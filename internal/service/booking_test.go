package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func daysFromToday(n int) time.Time {
	return domain.StartOfDay(testNow).AddDate(0, 0, n)
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	listings *mocks.MockListingRepo
	users    *mocks.MockUserRepo
	cache    *mocks.MockListingCache
	notifier *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		listings: mocks.NewMockListingRepo(t),
		users:    mocks.NewMockUserRepo(t),
		cache:    mocks.NewMockListingCache(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.listings, d.users, d.cache, d.notifier, newTestLogger(t), true)
	svc.now = func() time.Time { return testNow }
	return svc, d
}

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:                 "l1",
		HostID:             "host",
		Title:              "Cabin",
		Price:              100,
		MaxGuests:          4,
		CancellationPolicy: domain.PolicyModerate,
		IsActive:           true,
		IsVerified:         true,
	}
}

func testBooking(status domain.BookingStatus, startIn int) *domain.Booking {
	start := daysFromToday(startIn)
	return &domain.Booking{
		ID:         "b1",
		ListingID:  "l1",
		GuestID:    "guest",
		HostID:     "host",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 5),
		Guests:     domain.Guests{Adults: 2},
		TotalPrice: 600,
		Status:     status,
	}
}

func createInput(startIn, nights int) domain.CreateBookingInput {
	start := daysFromToday(startIn)
	return domain.CreateBookingInput{
		ListingID: "l1",
		GuestID:   "guest",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, nights),
		Guests:    domain.Guests{Adults: 2, Children: 1},
	}
}

// --- Create ---

func TestBookingService_Create_Success(t *testing.T) {
	svc, d := newBookingService(t)

	listing := testListing()
	host := &domain.User{ID: "host", Name: "Hannah"}

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", mock.Anything).Return(0, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "host").Return(host, nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, host, mock.Anything, listing).Return()

	booking, err := svc.Create(context.Background(), createInput(10, 5))

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "host", booking.HostID)
	assert.Equal(t, domain.PriceBreakdown{BasePrice: 500, CleaningFee: 25, ServiceFee: 50, Taxes: 25}, booking.PriceBreakdown)
	assert.Equal(t, int64(600), booking.TotalPrice)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_StartsToday(t *testing.T) {
	svc, d := newBookingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", mock.Anything).Return(0, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "host").Return(&domain.User{ID: "host"}, nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), createInput(0, 1))

	require.NoError(t, err)
	assert.Equal(t, 1, booking.Nights())

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_ListingNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(nil, domain.ErrListingNotFound)

	_, err := svc.Create(context.Background(), createInput(10, 5))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBookingService_Create_ListingNotBookable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *domain.Listing)
	}{
		{"inactive", func(l *domain.Listing) { l.IsActive = false }},
		{"unverified", func(l *domain.Listing) { l.IsVerified = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)

			listing := testListing()
			tt.mutate(listing)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

			_, err := svc.Create(context.Background(), createInput(10, 5))

			assert.ErrorIs(t, err, domain.ErrListingNotFound)
		})
	}
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateBookingInput
	}{
		{"end equals start", createInput(10, 0)},
		{"end before start", createInput(10, -2)},
		{"start in the past", createInput(-1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
}

func TestBookingService_Create_GuestValidation(t *testing.T) {
	tests := []struct {
		name   string
		guests domain.Guests
		want   error
	}{
		{"no adults", domain.Guests{Adults: 0, Children: 2}, domain.ErrValidation},
		{"negative children", domain.Guests{Adults: 1, Children: -1}, domain.ErrValidation},
		{"exactly max guests", domain.Guests{Adults: 3, Children: 1}, nil},
		{"one over max guests", domain.Guests{Adults: 4, Children: 1}, domain.ErrCapacityExceeded},
		{"well over capacity", domain.Guests{Adults: 6, Children: 3}, domain.ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
			if tt.want == nil {
				d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", mock.Anything).Return(0, nil)
				d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return(nil)
				d.users.EXPECT().GetByID(mock.Anything, "host").Return(&domain.User{ID: "host"}, nil)
				d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
			}

			input := createInput(10, 5)
			input.Guests = tt.guests

			booking, err := svc.Create(context.Background(), input)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testListing().MaxGuests, booking.Guests.Total())

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestBookingService_Create_BlockedRangeTouchingCheckout(t *testing.T) {
	svc, d := newBookingService(t)

	listing := testListing()
	listing.BlockedDates = []domain.BlockedRange{
		{StartDate: daysFromToday(15), EndDate: daysFromToday(18), Reason: "Maintenance"},
	}
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	// checkout day equals the blocked range start
	_, err := svc.Create(context.Background(), createInput(10, 5))

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestBookingService_Create_OverlapsActiveBooking(t *testing.T) {
	svc, d := newBookingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", domain.DateRange{
		Start: daysFromToday(10),
		End:   daysFromToday(15),
	}).Return(1, nil)

	_, err := svc.Create(context.Background(), createInput(10, 5))

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestBookingService_Create_LosesRace(t *testing.T) {
	svc, d := newBookingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", mock.Anything).Return(0, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUnavailable)

	_, err := svc.Create(context.Background(), createInput(10, 5))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

// --- CheckAvailability ---

func TestBookingService_CheckAvailability(t *testing.T) {
	blocked := testListing()
	blocked.BlockedDates = []domain.BlockedRange{
		{StartDate: daysFromToday(12), EndDate: daysFromToday(13)},
	}

	tests := []struct {
		name    string
		listing *domain.Listing
		count   int
		want    bool
	}{
		{"free", testListing(), 0, true},
		{"active booking overlaps", testListing(), 2, false},
		{"blocked range overlaps", blocked, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(tt.listing, nil)
			if tt.count >= 0 {
				d.bookings.EXPECT().CountOverlapping(mock.Anything, "l1", mock.Anything).Return(tt.count, nil)
			}

			ok, err := svc.CheckAvailability(context.Background(), "l1", daysFromToday(10), daysFromToday(15))

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBookingService_CheckAvailability_Errors(t *testing.T) {
	svc, d := newBookingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)
	_, err := svc.CheckAvailability(context.Background(), "missing", daysFromToday(1), daysFromToday(2))
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	_, err = svc.CheckAvailability(context.Background(), "l1", daysFromToday(2), daysFromToday(2))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

// --- TransitionStatus ---

func TestBookingService_Confirm_ByHost(t *testing.T) {
	svc, d := newBookingService(t)

	booking := testBooking(domain.BookingStatusPending, 10)
	listing := testListing()
	guest := &domain.User{ID: "guest"}

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.From == domain.BookingStatusPending &&
			c.To == domain.BookingStatusConfirmed &&
			c.Block != nil &&
			c.Block.Reason == domain.BlockReasonBooked &&
			c.Block.BookingID == "b1" &&
			c.Block.StartDate.Equal(booking.StartDate) &&
			c.Block.EndDate.Equal(booking.EndDate) &&
			c.HostNotes == "see you"
	})).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "guest").Return(guest, nil)
	d.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, guest, mock.Anything, listing).Return()

	got, err := svc.TransitionStatus(context.Background(), domain.TransitionInput{
		BookingID: "b1",
		To:        domain.BookingStatusConfirmed,
		Actor:     domain.Actor{UserID: "host", Role: domain.RoleHost},
		HostNotes: "see you",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.Equal(t, "see you", got.HostNotes)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_ByGuestIsUnauthorized(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, 10), nil)

	_, err := svc.TransitionStatus(context.Background(), domain.TransitionInput{
		BookingID: "b1",
		To:        domain.BookingStatusConfirmed,
		Actor:     domain.Actor{UserID: "guest", Role: domain.RoleGuest},
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Complete_ByAdmin(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed, -6), nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.To == domain.BookingStatusCompleted && c.Block == nil && !c.ReleaseBlock
	})).Return(nil)

	got, err := svc.TransitionStatus(context.Background(), domain.TransitionInput{
		BookingID: "b1",
		To:        domain.BookingStatusCompleted,
		Actor:     domain.Actor{UserID: "root", Role: domain.RoleAdmin},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, got.Status)
}

func TestBookingService_Transition_RejectedByTable(t *testing.T) {
	tests := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{domain.BookingStatusCompleted, domain.BookingStatusConfirmed},
		{domain.BookingStatusPending, domain.BookingStatusCompleted},
		{domain.BookingStatusCancelled, domain.BookingStatusCancelled},
		{domain.BookingStatusCancelled, domain.BookingStatusPending},
		{domain.BookingStatusRefunded, domain.BookingStatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			svc, d := newBookingService(t)
			d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(tt.from, 10), nil)

			// admin still cannot bypass the table
			_, err := svc.TransitionStatus(context.Background(), domain.TransitionInput{
				BookingID: "b1",
				To:        tt.to,
				Actor:     domain.Actor{UserID: "root", Role: domain.RoleAdmin},
			})

			require.ErrorIs(t, err, domain.ErrInvalidTransition)
			var te *domain.TransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.from, te.From)
			assert.Equal(t, tt.to, te.To)
		})
	}
}

func TestBookingService_Transition_LostCompareAndSet(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, 10), nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.Anything).
		Return(&domain.TransitionError{From: domain.BookingStatusCancelled, To: domain.BookingStatusConfirmed})

	_, err := svc.TransitionStatus(context.Background(), domain.TransitionInput{
		BookingID: "b1",
		To:        domain.BookingStatusConfirmed,
		Actor:     domain.Actor{UserID: "host", Role: domain.RoleHost},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// --- Cancel ---

func TestBookingService_Cancel_RefundTiers(t *testing.T) {
	tests := []struct {
		name    string
		policy  domain.CancellationPolicy
		startIn int
		refund  string
	}{
		{"moderate six days", domain.PolicyModerate, 6, "600"},
		{"moderate three days", domain.PolicyModerate, 3, "300"},
		{"strict two days", domain.PolicyStrict, 2, "0"},
		{"strict seven days", domain.PolicyStrict, 7, "600"},
		{"flexible one day", domain.PolicyFlexible, 1, "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)

			listing := testListing()
			listing.CancellationPolicy = tt.policy
			guest := &domain.User{ID: "guest"}
			host := &domain.User{ID: "host"}

			d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, tt.startIn), nil)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
			d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
				return c.To == domain.BookingStatusCancelled && c.Cancellation != nil && !c.ReleaseBlock
			})).Return(nil)
			d.users.EXPECT().GetByID(mock.Anything, "guest").Return(guest, nil)
			d.users.EXPECT().GetByID(mock.Anything, "host").Return(host, nil)
			d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, guest, host, mock.Anything, listing).Return()

			got, err := svc.Cancel(context.Background(), "b1", domain.Actor{UserID: "guest", Role: domain.RoleGuest}, "plans changed")

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCancelled, got.Status)
			require.NotNil(t, got.Cancellation)
			assert.Equal(t, tt.refund, got.Cancellation.RefundAmount.String())
			assert.Equal(t, "plans changed", got.Cancellation.Reason)
			assert.Equal(t, "guest", got.Cancellation.CancelledBy)
			assert.Equal(t, testNow, got.Cancellation.CancelledAt)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestBookingService_Cancel_ConfirmedReleasesBlock(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed, 10), nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.ReleaseBlock && c.From == domain.BookingStatusConfirmed
	})).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Cancel(context.Background(), "b1", domain.Actor{UserID: "host", Role: domain.RoleHost}, "")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_KeepsBlockWhenReleaseDisabled(t *testing.T) {
	svc, d := newBookingService(t)
	svc.releaseOnCancel = false

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed, 10), nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return !c.ReleaseBlock
	})).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Cancel(context.Background(), "b1", domain.Actor{UserID: "guest", Role: domain.RoleGuest}, "")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_TooLate(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusConfirmed, 0), nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

	_, err := svc.Cancel(context.Background(), "b1", domain.Actor{UserID: "guest", Role: domain.RoleGuest}, "")

	assert.ErrorIs(t, err, domain.ErrNotCancellable)
}

func TestBookingService_Cancel_ByStranger(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, 10), nil)

	_, err := svc.Cancel(context.Background(), "b1", domain.Actor{UserID: "someone", Role: domain.RoleGuest}, "")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// --- Reads ---

func TestBookingService_Get_Authorization(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		want  error
	}{
		{"guest", domain.Actor{UserID: "guest", Role: domain.RoleGuest}, nil},
		{"host", domain.Actor{UserID: "host", Role: domain.RoleHost}, nil},
		{"admin", domain.Actor{UserID: "root", Role: domain.RoleAdmin}, nil},
		{"stranger", domain.Actor{UserID: "other", Role: domain.RoleHost}, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, 3), nil)

			got, err := svc.Get(context.Background(), "b1", tt.actor)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "b1", got.ID)
		})
	}
}

func TestBookingService_ListByGuest_DefaultsPagination(t *testing.T) {
	svc, d := newBookingService(t)

	page := &domain.BookingPage{Bookings: []*domain.Booking{testBooking(domain.BookingStatusPending, 3)}, Total: 1}
	d.bookings.EXPECT().ListByGuest(mock.Anything, "guest", domain.BookingFilter{Page: 1, Limit: 10}).Return(page, nil)

	got, err := svc.ListByGuest(context.Background(), "guest", domain.BookingFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
}

func TestBookingService_ListByHost_ClampsLimit(t *testing.T) {
	svc, d := newBookingService(t)

	filter := domain.BookingFilter{Status: domain.BookingStatusConfirmed, Page: 2, Limit: 100}
	d.bookings.EXPECT().ListByHost(mock.Anything, "host", filter).Return(&domain.BookingPage{}, nil)

	_, err := svc.ListByHost(context.Background(), "host", domain.BookingFilter{Status: domain.BookingStatusConfirmed, Page: 2, Limit: 500})

	require.NoError(t, err)
}

func TestBookingService_ListAll_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.ListAll(context.Background(), domain.BookingFilter{Status: "archived"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Sweeps ---

func TestBookingService_CompleteFinished(t *testing.T) {
	svc, d := newBookingService(t)

	finished := []*domain.Booking{
		{ID: "b1", ListingID: "l1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", ListingID: "l1", Status: domain.BookingStatusConfirmed},
	}
	d.bookings.EXPECT().ListFinished(mock.Anything, domain.StartOfDay(testNow)).Return(finished, nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.BookingID == "b1" && c.To == domain.BookingStatusCompleted
	})).Return(nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.BookingID == "b2"
	})).Return(errors.New("db error"))

	n, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBookingService_CompleteFinished_ListError(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().ListFinished(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteFinished(context.Background())

	assert.Error(t, err)
}

func TestBookingService_CancelStalePending(t *testing.T) {
	svc, d := newBookingService(t)

	stale := []*domain.Booking{testBooking(domain.BookingStatusPending, -1)}
	listing := testListing()

	d.bookings.EXPECT().ListStalePending(mock.Anything, domain.StartOfDay(testNow)).Return(stale, nil)
	d.bookings.EXPECT().ApplyTransition(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.From == domain.BookingStatusPending &&
			c.To == domain.BookingStatusCancelled &&
			c.Cancellation.Reason == "expired" &&
			c.Cancellation.CancelledBy == domain.SystemActorID &&
			c.Cancellation.RefundAmount.IsZero()
	})).Return(nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	d.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything, listing).Return()

	n, err := svc.CancelStalePending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)

	time.Sleep(50 * time.Millisecond)
}
