package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	start, end, err := parseStay(req.StartDate, req.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		ListingID:       req.ListingID,
		GuestID:         actor.UserID,
		StartDate:       start,
		EndDate:         end,
		Guests:          domain.Guests{Adults: req.Adults, Children: req.Children},
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	booking, err := h.bookingService.TransitionStatus(c.Request.Context(), domain.TransitionInput{
		BookingID: id,
		To:        domain.BookingStatus(req.Status),
		Actor:     actor,
		Reason:    req.Reason,
		HostNotes: req.HostNotes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CancelRequest
	// body is optional
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	page, err := h.bookingService.ListByGuest(c.Request.Context(), actor.UserID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingPageResponse(page))
}

func (h *Handler) ListHostBookings(c *ginext.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	page, err := h.bookingService.ListByHost(c.Request.Context(), actor.UserID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingPageResponse(page))
}

func (h *Handler) ListAllBookings(c *ginext.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	page, err := h.bookingService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingPageResponse(page))
}

func bookingFilter(c *ginext.Context) (domain.BookingFilter, bool) {
	var q dto.BookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return domain.BookingFilter{}, false
	}
	return domain.BookingFilter{
		Status: domain.BookingStatus(q.Status),
		Page:   q.Page,
		Limit:  q.Limit,
	}, true
}
