package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateListing(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input := domain.CreateListingInput{
		Title:              req.Title,
		Description:        req.Description,
		City:               req.City,
		Address:            req.Address,
		Category:           req.Category,
		Amenities:          req.Amenities,
		Price:              req.Price,
		MaxGuests:          req.MaxGuests,
		CancellationPolicy: req.CancellationPolicy,
	}

	listing, err := h.listingService.Create(c.Request.Context(), actor.UserID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	listing, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	var q dto.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.listingService.List(c.Request.Context(), domain.ListingFilter{
		City:     q.City,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Guests:   q.Guests,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingPageResponse(page))
}

func (h *Handler) ListHostListings(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	listings, err := h.listingService.ListByHost(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	start, end, err := parseStay(q.StartDate, q.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	available, err := h.bookingService.CheckAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ListingID: id,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Available: available,
	})
}

func (h *Handler) BlockDates(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.BlockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	start, end, err := parseStay(req.StartDate, req.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	blocked, err := h.listingService.BlockDates(c.Request.Context(), domain.BlockDatesInput{
		ListingID: id,
		Actor:     actor,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlockedRangeResponse(blocked))
}

func (h *Handler) VerifyListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.VerifyListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.listingService.Verify(c.Request.Context(), id, *req.Verified); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"id": id, "is_verified": *req.Verified})
}

func (h *Handler) ListListingReviews(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), id, q.Page, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), domain.UpdateListingInput{
		ListingID:          id,
		Actor:              actor,
		Title:              req.Title,
		Description:        req.Description,
		City:               req.City,
		Address:            req.Address,
		Category:           req.Category,
		Amenities:          req.Amenities,
		Price:              req.Price,
		MaxGuests:          req.MaxGuests,
		CancellationPolicy: req.CancellationPolicy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) DeactivateListing(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	if err := h.listingService.Deactivate(c.Request.Context(), id, actor); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListFeaturedListings(c *ginext.Context) {
	listings, err := h.listingService.Featured(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAllListings(c *ginext.Context) {
	var q dto.AdminListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.listingService.ListAll(c.Request.Context(), domain.AdminListingFilter{
		Status: domain.ListingStatus(q.Status),
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingPageResponse(page))
}
