package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, hostID string, input domain.CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) (*domain.ListingPage, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Listing, error)
	BlockDates(ctx context.Context, input domain.BlockDatesInput) (*domain.BlockedRange, error)
	Verify(ctx context.Context, id string, verified bool) error
	Update(ctx context.Context, input domain.UpdateListingInput) (*domain.Listing, error)
	Deactivate(ctx context.Context, id string, actor domain.Actor) error
	ListAll(ctx context.Context, filter domain.AdminListingFilter) (*domain.ListingPage, error)
	Featured(ctx context.Context) ([]*domain.Listing, error)
}

type BookingSvc interface {
	CheckAvailability(ctx context.Context, listingID string, start, end time.Time) (bool, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string, actor domain.Actor) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, input domain.TransitionInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID string, filter domain.BookingFilter) (*domain.BookingPage, error)
	ListByHost(ctx context.Context, hostID string, filter domain.BookingFilter) (*domain.BookingPage, error)
	ListAll(ctx context.Context, filter domain.BookingFilter) (*domain.BookingPage, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string, page, limit int) ([]*domain.Review, error)
	ListByGuest(ctx context.Context, guestID string, page, limit int) ([]*domain.Review, error)
	Update(ctx context.Context, input domain.UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id string, actor domain.Actor) error
	Respond(ctx context.Context, id, hostID, comment string) (*domain.Review, error)
	Flag(ctx context.Context, id, userID, reason string) error
	ListFlagged(ctx context.Context, page, limit int) ([]*domain.Review, error)
	Moderate(ctx context.Context, input domain.ModerateReviewInput) (*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type Handler struct {
	listingService ListingSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	userService    UserSvc
}

func NewHandler(listingService ListingSvc, bookingService BookingSvc, reviewService ReviewSvc, userService UserSvc) *Handler {
	return &Handler{
		listingService: listingService,
		bookingService: bookingService,
		reviewService:  reviewService,
		userService:    userService,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// pathID reads a UUID path parameter, answering 400 when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func currentActor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
	}
	return actor, ok
}

// parseStay parses both dates in UTC. Range validation is left to the services.
func parseStay(start, end string) (time.Time, time.Time, error) {
	s, err := time.ParseInLocation(dto.DateLayout, start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date format, expected %s", dto.DateLayout)
	}
	e, err := time.ParseInLocation(dto.DateLayout, end, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date format, expected %s", dto.DateLayout)
	}
	return s, e, nil
}

func badRequest(c *ginext.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNotCancellable),
		errors.Is(err, domain.ErrReviewExists),
		errors.Is(err, domain.ErrNotReviewable),
		errors.Is(err, domain.ErrReviewFlagged),
		errors.Is(err, domain.ErrResponded),
		errors.Is(err, domain.ErrHasBookings):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
