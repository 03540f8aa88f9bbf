package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	cache       ports.ListingCache
	logger      logger.Logger
	now         func() time.Time
}

func NewReviewService(
	reviewRepo ports.ReviewRepo,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	cache ports.ListingCache,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		cache:       cache,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create accepts one review per completed stay, written by the stay's guest.
func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.GuestID != input.GuestID {
		return nil, fmt.Errorf("%w: only the guest can review a stay", domain.ErrUnauthorized)
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, domain.ErrNotReviewable
	}

	now := s.now()
	review := &domain.Review{
		ID:        uuid.New().String(),
		ListingID: booking.ListingID,
		BookingID: booking.ID,
		GuestID:   input.GuestID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.invalidate(ctx, review.ListingID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "review created",
		logger.String("review_id", review.ID),
		logger.String("listing_id", review.ListingID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

// Update lets the author edit rating or comment within the edit window.
func (s *ReviewService) Update(ctx context.Context, input domain.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	now := s.now()
	if !review.CanBeEdited(input.GuestID, now) {
		return nil, fmt.Errorf("%w: review can only be edited by its author within 30 days", domain.ErrUnauthorized)
	}

	if input.Rating != nil {
		if err = domain.ValidateRating(*input.Rating); err != nil {
			return nil, err
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	review.UpdatedAt = now

	if err = s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.invalidate(ctx, review.ListingID)

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if !actor.IsAdmin() && actor.UserID != review.GuestID {
		return fmt.Errorf("%w: only the author can delete a review", domain.ErrUnauthorized)
	}

	review.UpdatedAt = s.now()
	if err = s.reviewRepo.Delete(ctx, review); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.invalidate(ctx, review.ListingID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "review deleted",
		logger.String("review_id", id),
		logger.String("actor_id", actor.UserID),
	)

	return nil
}

// Respond records the listing host's single public reply.
func (s *ReviewService) Respond(ctx context.Context, id, hostID, comment string) (*domain.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: response is required", domain.ErrValidation)
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	listing, err := s.listingRepo.GetByID(ctx, review.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.HostID != hostID {
		return nil, fmt.Errorf("%w: only the listing host can respond", domain.ErrUnauthorized)
	}
	if review.HostResponse != nil {
		return nil, domain.ErrResponded
	}

	now := s.now()
	review.HostResponse = &domain.HostResponse{Comment: comment, RespondedAt: now}
	review.UpdatedAt = now

	if err = s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("respond to review: %w", err)
	}

	return review, nil
}

// Flag queues the review for moderation. It stays public until an admin decides.
func (s *ReviewService) Flag(ctx context.Context, id, userID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: flag reason is required", domain.ErrValidation)
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if review.IsFlagged {
		return domain.ErrReviewFlagged
	}

	review.IsFlagged = true
	review.FlagReason = reason
	review.UpdatedAt = s.now()

	if err = s.reviewRepo.Update(ctx, review); err != nil {
		return fmt.Errorf("flag review: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.WarnLevel, "review flagged",
		logger.String("review_id", id),
		logger.String("user_id", userID),
		logger.String("reason", reason),
	)

	return nil
}

// Moderate resolves a flag. Hiding a review drops it from the listing rating.
func (s *ReviewService) Moderate(ctx context.Context, input domain.ModerateReviewInput) (*domain.Review, error) {
	if !input.Action.Valid() {
		return nil, fmt.Errorf("%w: unknown moderation action %q", domain.ErrValidation, input.Action)
	}

	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	now := s.now()
	review.IsFlagged = false
	review.IsPublic = input.Action == domain.ModerationApprove
	review.ModeratedBy = input.AdminID
	review.ModeratedAt = &now
	review.UpdatedAt = now

	if err = s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("moderate review: %w", err)
	}

	s.invalidate(ctx, review.ListingID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "review moderated",
		logger.String("review_id", review.ID),
		logger.String("admin_id", input.AdminID),
		logger.String("action", string(input.Action)),
	)

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID string, page, limit int) ([]*domain.Review, error) {
	page, limit = normalizePage(page, limit)
	return s.reviewRepo.ListByListing(ctx, listingID, limit, (page-1)*limit)
}

func (s *ReviewService) ListByGuest(ctx context.Context, guestID string, page, limit int) ([]*domain.Review, error) {
	page, limit = normalizePage(page, limit)
	return s.reviewRepo.ListByGuest(ctx, guestID, limit, (page-1)*limit)
}

func (s *ReviewService) ListFlagged(ctx context.Context, page, limit int) ([]*domain.Review, error) {
	page, limit = normalizePage(page, limit)
	return s.reviewRepo.ListFlagged(ctx, limit, (page-1)*limit)
}

func (s *ReviewService) invalidate(ctx context.Context, listingID string) {
	if err := s.cache.Invalidate(ctx, listingID); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to invalidate listing cache",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}
}
