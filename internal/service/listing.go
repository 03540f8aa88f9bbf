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

const (
	defaultBlockReason = "Blocked by host"
	adminPageLimit     = 20
)

type ListingService struct {
	repo   ports.ListingRepo
	cache  ports.ListingCache
	logger logger.Logger
	now    func() time.Time
}

func NewListingService(repo ports.ListingRepo, cache ports.ListingCache, logger logger.Logger) *ListingService {
	return &ListingService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *ListingService) Create(ctx context.Context, hostID string, input domain.CreateListingInput) (*domain.Listing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.MaxGuests < 1 {
		return nil, fmt.Errorf("%w: max guests must be at least 1", domain.ErrValidation)
	}
	policy, err := domain.ParseCancellationPolicy(input.CancellationPolicy)
	if err != nil {
		return nil, err
	}

	now := s.now()
	listing := &domain.Listing{
		ID:                 uuid.New().String(),
		HostID:             hostID,
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		City:               input.City,
		Address:            input.Address,
		Category:           input.Category,
		Amenities:          input.Amenities,
		Price:              input.Price,
		MaxGuests:          input.MaxGuests,
		CancellationPolicy: policy,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err = s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing created",
		logger.String("listing_id", listing.ID),
		logger.String("host_id", hostID),
	)

	return listing, nil
}

// Get serves active listings, reading through the cache.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "listing cache read failed",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
	}
	if cached != nil {
		return cached, nil
	}

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.IsActive {
		return nil, domain.ErrListingNotFound
	}

	if err = s.cache.Set(ctx, listing); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "listing cache write failed",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
	}

	return listing, nil
}

func (s *ListingService) List(ctx context.Context, filter domain.ListingFilter) (*domain.ListingPage, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%w: min price exceeds max price", domain.ErrValidation)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *ListingService) ListByHost(ctx context.Context, hostID string) ([]*domain.Listing, error) {
	return s.repo.ListByHost(ctx, hostID)
}

// BlockDates appends a manual range to the listing ledger.
func (s *ListingService) BlockDates(ctx context.Context, input domain.BlockDatesInput) (*domain.BlockedRange, error) {
	listing, err := s.repo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !input.Actor.IsAdmin() && input.Actor.UserID != listing.HostID {
		return nil, fmt.Errorf("%w: only the host can block dates", domain.ErrUnauthorized)
	}

	r, err := domain.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = defaultBlockReason
	}

	block := &domain.BlockedRange{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		StartDate: r.Start,
		EndDate:   r.End,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	if err = s.repo.AppendBlockedRange(ctx, block); err != nil {
		return nil, fmt.Errorf("append blocked range: %w", err)
	}

	s.invalidate(ctx, listing.ID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "dates blocked",
		logger.String("listing_id", listing.ID),
		logger.Time("start", r.Start),
		logger.Time("end", r.End),
	)

	return block, nil
}

func (s *ListingService) Verify(ctx context.Context, id string, verified bool) error {
	if err := s.repo.SetVerified(ctx, id, verified, s.now()); err != nil {
		return fmt.Errorf("set verified: %w", err)
	}

	s.invalidate(ctx, id)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing verification changed",
		logger.String("listing_id", id),
		logger.Bool("verified", verified),
	)

	return nil
}

// Update applies a partial edit. A host edit sends the listing back to verification.
func (s *ListingService) Update(ctx context.Context, input domain.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !input.Actor.IsAdmin() && input.Actor.UserID != listing.HostID {
		return nil, fmt.Errorf("%w: only the host can edit the listing", domain.ErrUnauthorized)
	}

	if err = input.Apply(listing); err != nil {
		return nil, err
	}
	if !input.Actor.IsAdmin() {
		listing.IsVerified = false
		listing.VerifiedAt = nil
	}
	listing.UpdatedAt = s.now()

	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.invalidate(ctx, listing.ID)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing updated",
		logger.String("listing_id", listing.ID),
		logger.String("actor_id", input.Actor.UserID),
		logger.Bool("verified", listing.IsVerified),
	)

	return listing, nil
}

// Deactivate hides the listing. Upcoming pending or confirmed stays block it.
func (s *ListingService) Deactivate(ctx context.Context, id string, actor domain.Actor) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}
	if !actor.IsAdmin() && actor.UserID != listing.HostID {
		return fmt.Errorf("%w: only the host can deactivate the listing", domain.ErrUnauthorized)
	}

	now := s.now()
	if err = s.repo.Deactivate(ctx, id, domain.StartOfDay(now), now); err != nil {
		return fmt.Errorf("deactivate listing: %w", err)
	}

	s.invalidate(ctx, id)

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing deactivated",
		logger.String("listing_id", id),
		logger.String("actor_id", actor.UserID),
	)

	return nil
}

// ListAll is the admin index. It defaults to a larger page than the public search.
func (s *ListingService) ListAll(ctx context.Context, filter domain.AdminListingFilter) (*domain.ListingPage, error) {
	if filter.Limit < 1 {
		filter.Limit = adminPageLimit
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.ListAll(ctx, filter)
}

func (s *ListingService) Featured(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.ListFeatured(ctx, domain.FeaturedMinRating, domain.FeaturedLimit)
}

func (s *ListingService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to invalidate listing cache",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
	}
}
