package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")
)

var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrCapacityExceeded  = errors.New("guest count exceeds listing capacity")
	ErrUnavailable       = errors.New("selected dates are not available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("booking cannot be cancelled at this time")
	ErrUnauthorized      = errors.New("not allowed to perform this action")
)

var (
	ErrEmailTaken    = errors.New("email is already registered")
	ErrReviewExists  = errors.New("review already exists for this booking")
	ErrNotReviewable = errors.New("only completed stays can be reviewed")
	ErrReviewFlagged = errors.New("review is already flagged")
	ErrResponded     = errors.New("host has already responded to this review")
	ErrHasBookings   = errors.New("listing has upcoming bookings")
)

var (
	ErrValidation = errors.New("validation error")
)

// TransitionError reports a status change the transition table does not allow.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
