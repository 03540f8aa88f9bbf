package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BlockedRangeResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	BookingID string `json:"booking_id,omitempty"`
}

type ListingResponse struct {
	ID                 string                 `json:"id"`
	HostID             string                 `json:"host_id"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	City               string                 `json:"city"`
	Address            string                 `json:"address"`
	Category           string                 `json:"category"`
	Amenities          []string               `json:"amenities"`
	Price              int64                  `json:"price"`
	MaxGuests          int                    `json:"max_guests"`
	CancellationPolicy string                 `json:"cancellation_policy"`
	BlockedDates       []BlockedRangeResponse `json:"blocked_dates"`
	IsActive           bool                   `json:"is_active"`
	IsVerified         bool                   `json:"is_verified"`
	TotalBookings      int                    `json:"total_bookings"`
	AverageRating      float64                `json:"average_rating"`
	ReviewCount        int                    `json:"review_count"`
	CreatedAt          string                 `json:"created_at"`
}

type ListingPageResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

type AvailabilityResponse struct {
	ListingID string `json:"listing_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type CancellationResponse struct {
	Reason       string `json:"reason"`
	CancelledAt  string `json:"cancelled_at"`
	CancelledBy  string `json:"cancelled_by"`
	RefundAmount string `json:"refund_amount"`
}

type BookingResponse struct {
	ID              string                `json:"id"`
	ListingID       string                `json:"listing_id"`
	GuestID         string                `json:"guest_id"`
	HostID          string                `json:"host_id"`
	StartDate       string                `json:"start_date"`
	EndDate         string                `json:"end_date"`
	Nights          int                   `json:"nights"`
	Guests          domain.Guests         `json:"guests"`
	PriceBreakdown  domain.PriceBreakdown `json:"price_breakdown"`
	TotalPrice      int64                 `json:"total_price"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"payment_status"`
	SpecialRequests string                `json:"special_requests,omitempty"`
	HostNotes       string                `json:"host_notes,omitempty"`
	Cancellation    *CancellationResponse `json:"cancellation,omitempty"`
	CreatedAt       string                `json:"created_at"`
}

type BookingPageResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type HostResponseResponse struct {
	Comment     string `json:"comment"`
	RespondedAt string `json:"responded_at"`
}

type ReviewResponse struct {
	ID           string                `json:"id"`
	ListingID    string                `json:"listing_id"`
	BookingID    string                `json:"booking_id"`
	GuestID      string                `json:"guest_id"`
	Rating       int                   `json:"rating"`
	Comment      string                `json:"comment"`
	IsPublic     bool                  `json:"is_public"`
	IsFlagged    bool                  `json:"is_flagged"`
	FlagReason   string                `json:"flag_reason,omitempty"`
	HostResponse *HostResponseResponse `json:"host_response,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBlockedRangeResponse(b *domain.BlockedRange) BlockedRangeResponse {
	return BlockedRangeResponse{
		ID:        b.ID,
		StartDate: b.StartDate.Format(DateLayout),
		EndDate:   b.EndDate.Format(DateLayout),
		Reason:    b.Reason,
		BookingID: b.BookingID,
	}
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	blocked := make([]BlockedRangeResponse, 0, len(l.BlockedDates))
	for i := range l.BlockedDates {
		blocked = append(blocked, ToBlockedRangeResponse(&l.BlockedDates[i]))
	}

	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ListingResponse{
		ID:                 l.ID,
		HostID:             l.HostID,
		Title:              l.Title,
		Description:        l.Description,
		City:               l.City,
		Address:            l.Address,
		Category:           l.Category,
		Amenities:          amenities,
		Price:              l.Price,
		MaxGuests:          l.MaxGuests,
		CancellationPolicy: string(l.CancellationPolicy),
		BlockedDates:       blocked,
		IsActive:           l.IsActive,
		IsVerified:         l.IsVerified,
		TotalBookings:      l.TotalBookings,
		AverageRating:      l.AverageRating,
		ReviewCount:        l.ReviewCount,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingPageResponse(p *domain.ListingPage) ListingPageResponse {
	listings := make([]ListingResponse, 0, len(p.Listings))
	for _, l := range p.Listings {
		listings = append(listings, ToListingResponse(l))
	}
	return ListingPageResponse{Listings: listings, Total: p.Total}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestID:         b.GuestID,
		HostID:          b.HostID,
		StartDate:       b.StartDate.Format(DateLayout),
		EndDate:         b.EndDate.Format(DateLayout),
		Nights:          b.Nights(),
		Guests:          b.Guests,
		PriceBreakdown:  b.PriceBreakdown,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		SpecialRequests: b.SpecialRequests,
		HostNotes:       b.HostNotes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}

	if c := b.Cancellation; c != nil {
		resp.Cancellation = &CancellationResponse{
			Reason:       c.Reason,
			CancelledAt:  c.CancelledAt.Format(time.RFC3339),
			CancelledBy:  c.CancelledBy,
			RefundAmount: c.RefundAmount.StringFixed(2),
		}
	}

	return resp
}

func ToBookingPageResponse(p *domain.BookingPage) BookingPageResponse {
	bookings := make([]BookingResponse, 0, len(p.Bookings))
	for _, b := range p.Bookings {
		bookings = append(bookings, ToBookingResponse(b))
	}
	return BookingPageResponse{Bookings: bookings, Total: p.Total}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID,
		ListingID:  r.ListingID,
		BookingID:  r.BookingID,
		GuestID:    r.GuestID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IsPublic:   r.IsPublic,
		IsFlagged:  r.IsFlagged,
		FlagReason: r.FlagReason,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
	if r.HostResponse != nil {
		resp.HostResponse = &HostResponseResponse{
			Comment:     r.HostResponse.Comment,
			RespondedAt: r.HostResponse.RespondedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func ToReviewResponses(reviews []*domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, ToReviewResponse(r))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
