package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

const expiredReason = "expired"

type BookingService struct {
	bookingRepo     ports.BookingRepo
	listingRepo     ports.ListingRepo
	userRepo        ports.UserRepo
	cache           ports.ListingCache
	notifier        ports.BookingNotifier
	logger          logger.Logger
	releaseOnCancel bool
	now             func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	cache ports.ListingCache,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	releaseOnCancel bool,
) *BookingService {
	return &BookingService{
		bookingRepo:     bookingRepo,
		listingRepo:     listingRepo,
		userRepo:        userRepo,
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
		releaseOnCancel: releaseOnCancel,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// CheckAvailability reports whether [start, end] is free of blocked ranges and active bookings.
func (s *BookingService) CheckAvailability(ctx context.Context, listingID string, start, end time.Time) (bool, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return false, fmt.Errorf("get listing: %w", err)
	}

	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return false, err
	}

	return s.available(ctx, listing, r)
}

func (s *BookingService) available(ctx context.Context, listing *domain.Listing, r domain.DateRange) (bool, error) {
	if !listing.IsAvailable(r) {
		return false, nil
	}

	n, err := s.bookingRepo.CountOverlapping(ctx, listing.ID, r)
	if err != nil {
		return false, fmt.Errorf("count overlapping bookings: %w", err)
	}

	return n == 0, nil
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.Bookable() {
		return nil, domain.ErrListingNotFound
	}

	now := s.now()
	r, err := domain.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if r.Start.Before(domain.StartOfDay(now)) {
		return nil, fmt.Errorf("%w: start date is in the past", domain.ErrInvalidDateRange)
	}

	if input.Guests.Adults < 1 {
		return nil, fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	if input.Guests.Children < 0 {
		return nil, fmt.Errorf("%w: children must not be negative", domain.ErrValidation)
	}
	if input.Guests.Total() > listing.MaxGuests {
		return nil, fmt.Errorf("%w: listing allows at most %d guests", domain.ErrCapacityExceeded, listing.MaxGuests)
	}

	ok, err := s.available(ctx, listing, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnavailable
	}

	price := domain.ComputePrice(listing.Price, r.Nights())

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ListingID:       listing.ID,
		GuestID:         input.GuestID,
		HostID:          listing.HostID,
		StartDate:       r.Start,
		EndDate:         r.End,
		Guests:          input.Guests,
		TotalPrice:      price.Total(),
		PriceBreakdown:  price,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.invalidateListing(ctx, listing.ID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
		logger.String("guest_id", booking.GuestID),
		logger.Int64("total_price", booking.TotalPrice),
	)

	go s.notifyCreated(context.WithoutCancel(ctx), booking, listing)

	return booking, nil
}

// TransitionStatus moves a booking along the transition table on behalf of actor.
func (s *BookingService) TransitionStatus(ctx context.Context, input domain.TransitionInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !domain.CanTransition(booking.Status, input.To) {
		return nil, &domain.TransitionError{From: booking.Status, To: input.To}
	}

	if err = authorizeTransition(booking, input.To, input.Actor); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	change, err := s.buildChange(booking, listing, input)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.ApplyTransition(ctx, change); err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	booking.Status = change.To
	booking.UpdatedAt = change.At
	if change.HostNotes != "" {
		booking.HostNotes = change.HostNotes
	}
	booking.Cancellation = change.Cancellation

	if change.Block != nil || change.ReleaseBlock {
		s.invalidateListing(ctx, listing.ID)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("from", string(change.From)),
		logger.String("to", string(change.To)),
		logger.String("actor", input.Actor.UserID),
	)

	switch change.To {
	case domain.BookingStatusConfirmed:
		go s.notifyConfirmed(context.WithoutCancel(ctx), booking, listing)
	case domain.BookingStatusCancelled:
		go s.notifyCancelled(context.WithoutCancel(ctx), booking, listing)
	}

	return booking, nil
}

func (s *BookingService) buildChange(
	booking *domain.Booking,
	listing *domain.Listing,
	input domain.TransitionInput,
) (domain.StatusChange, error) {
	now := s.now()
	change := domain.StatusChange{
		BookingID: booking.ID,
		ListingID: booking.ListingID,
		From:      booking.Status,
		To:        input.To,
		HostNotes: input.HostNotes,
		At:        now,
	}

	switch input.To {
	case domain.BookingStatusConfirmed:
		change.Block = &domain.BlockedRange{
			ID:        uuid.New().String(),
			ListingID: booking.ListingID,
			StartDate: booking.StartDate,
			EndDate:   booking.EndDate,
			Reason:    domain.BlockReasonBooked,
			BookingID: booking.ID,
			CreatedAt: now,
		}

	case domain.BookingStatusCancelled:
		if !booking.CanBeCancelled(now) {
			return change, domain.ErrNotCancellable
		}
		change.Cancellation = &domain.Cancellation{
			Reason:       input.Reason,
			CancelledAt:  now,
			CancelledBy:  input.Actor.UserID,
			RefundAmount: domain.CalculateRefund(booking, listing.CancellationPolicy, now),
		}
		change.ReleaseBlock = s.releaseOnCancel && booking.Status == domain.BookingStatusConfirmed
	}

	return change, nil
}

func authorizeTransition(b *domain.Booking, to domain.BookingStatus, actor domain.Actor) error {
	if actor.IsAdmin() || actor.UserID == b.HostID {
		return nil
	}
	if to == domain.BookingStatusCancelled && actor.UserID == b.GuestID {
		return nil
	}
	return fmt.Errorf("%w: cannot set booking to %s", domain.ErrUnauthorized, to)
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.Booking, error) {
	return s.TransitionStatus(ctx, domain.TransitionInput{
		BookingID: bookingID,
		To:        domain.BookingStatusCancelled,
		Actor:     actor,
		Reason:    reason,
	})
}

func (s *BookingService) Get(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !actor.IsAdmin() && actor.UserID != booking.GuestID && actor.UserID != booking.HostID {
		return nil, domain.ErrUnauthorized
	}

	return booking, nil
}

func (s *BookingService) ListByGuest(ctx context.Context, guestID string, filter domain.BookingFilter) (*domain.BookingPage, error) {
	filter, err := normalizeBookingFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByGuest(ctx, guestID, filter)
}

func (s *BookingService) ListByHost(ctx context.Context, hostID string, filter domain.BookingFilter) (*domain.BookingPage, error) {
	filter, err := normalizeBookingFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByHost(ctx, hostID, filter)
}

func (s *BookingService) ListAll(ctx context.Context, filter domain.BookingFilter) (*domain.BookingPage, error) {
	filter, err := normalizeBookingFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.List(ctx, filter)
}

func normalizeBookingFilter(f domain.BookingFilter) (domain.BookingFilter, error) {
	if f.Status != "" && !f.Status.Valid() {
		return f, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, f.Status)
	}
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	return f, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// CompleteFinished marks confirmed stays whose checkout has passed as completed.
func (s *BookingService) CompleteFinished(ctx context.Context) (int, error) {
	now := s.now()
	finished, err := s.bookingRepo.ListFinished(ctx, domain.StartOfDay(now))
	if err != nil {
		return 0, fmt.Errorf("list finished: %w", err)
	}

	done := 0
	for _, b := range finished {
		err = s.bookingRepo.ApplyTransition(ctx, domain.StatusChange{
			BookingID: b.ID,
			ListingID: b.ListingID,
			From:      domain.BookingStatusConfirmed,
			To:        domain.BookingStatusCompleted,
			At:        now,
		})
		if err != nil {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to complete booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		done++
	}

	if done > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "finished bookings completed", logger.Int("count", done))
	}

	return done, nil
}

// CancelStalePending cancels pending requests whose check-in date has passed without confirmation.
func (s *BookingService) CancelStalePending(ctx context.Context) (int, error) {
	now := s.now()
	stale, err := s.bookingRepo.ListStalePending(ctx, domain.StartOfDay(now))
	if err != nil {
		return 0, fmt.Errorf("list stale pending: %w", err)
	}

	var cancelled []*domain.Booking
	for _, b := range stale {
		c := &domain.Cancellation{
			Reason:       expiredReason,
			CancelledAt:  now,
			CancelledBy:  domain.SystemActorID,
			RefundAmount: decimal.Zero,
		}
		err = s.bookingRepo.ApplyTransition(ctx, domain.StatusChange{
			BookingID:    b.ID,
			ListingID:    b.ListingID,
			From:         domain.BookingStatusPending,
			To:           domain.BookingStatusCancelled,
			Cancellation: c,
			At:           now,
		})
		if err != nil {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to cancel stale booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		b.Status = domain.BookingStatusCancelled
		b.Cancellation = c
		b.UpdatedAt = now
		cancelled = append(cancelled, b)
	}

	if len(cancelled) > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "stale pending bookings cancelled", logger.Int("count", len(cancelled)))
		go s.notifyCancelledBatch(context.WithoutCancel(ctx), cancelled)
	}

	return len(cancelled), nil
}

func (s *BookingService) invalidateListing(ctx context.Context, listingID string) {
	if err := s.cache.Invalidate(ctx, listingID); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to invalidate listing cache",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyCreated(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	host, err := s.userRepo.GetByID(ctx, b.HostID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get host for notification",
			logger.String("user_id", b.HostID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyBookingCreated(ctx, host, b, l)
}

func (s *BookingService) notifyConfirmed(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	guest, err := s.userRepo.GetByID(ctx, b.GuestID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get guest for notification",
			logger.String("user_id", b.GuestID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyBookingConfirmed(ctx, guest, b, l)
}

func (s *BookingService) notifyCancelled(ctx context.Context, b *domain.Booking, l *domain.Listing) {
	guest, err := s.userRepo.GetByID(ctx, b.GuestID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get guest for cancel notification",
			logger.String("user_id", b.GuestID),
		)
		return
	}
	host, err := s.userRepo.GetByID(ctx, b.HostID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get host for cancel notification",
			logger.String("user_id", b.HostID),
		)
		return
	}
	s.notifier.NotifyBookingCancelled(ctx, guest, host, b, l)
}

func (s *BookingService) notifyCancelledBatch(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
		if err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get listing for cancel notification",
				logger.String("listing_id", b.ListingID),
			)
			continue
		}
		s.notifyCancelled(ctx, b, listing)
	}
}
