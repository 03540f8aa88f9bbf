package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "handler-test-secret"

type svcMocks struct {
	listings *hmocks.MockListingSvc
	bookings *hmocks.MockBookingSvc
	reviews  *hmocks.MockReviewSvc
	users    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()

	m := svcMocks{
		listings: hmocks.NewMockListingSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		reviews:  hmocks.NewMockReviewSvc(t),
		users:    hmocks.NewMockUserSvc(t),
	}
	h := NewHandler(m.listings, m.bookings, m.reviews, m.users)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/listings", h.ListListings)
		api.GET("/listings/featured", h.ListFeaturedListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/availability", h.CheckAvailability)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
		api.POST("/users", h.CreateUser)
	}
	auth := api.Group("", middleware.Auth(middleware.NewTokenValidator(testSecret)))
	{
		auth.POST("/listings", h.CreateListing)
		auth.POST("/listings/:id/blocked-dates", h.BlockDates)
		auth.PUT("/listings/:id", h.UpdateListing)
		auth.DELETE("/listings/:id", h.DeactivateListing)
		auth.GET("/admin/listings", h.ListAllListings)
		auth.POST("/bookings", h.CreateBooking)
		auth.GET("/bookings/my", h.ListMyBookings)
		auth.GET("/bookings/:id", h.GetBooking)
		auth.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		auth.PATCH("/bookings/:id/cancel", h.CancelBooking)
		auth.POST("/reviews", h.CreateReview)
		auth.GET("/reviews/my", h.ListMyReviews)
		auth.PUT("/reviews/:id", h.UpdateReview)
		auth.DELETE("/reviews/:id", h.DeleteReview)
		auth.POST("/reviews/:id/flag", h.FlagReview)
		auth.POST("/reviews/:id/respond", h.RespondToReview)
		auth.GET("/admin/reviews/flagged", h.ListFlaggedReviews)
		auth.PATCH("/admin/reviews/:id/moderate", h.ModerateReview)
		auth.GET("/users/me", h.GetMe)
		auth.PATCH("/admin/users/:id/active", h.SetUserActive)
	}

	return m, r
}

func token(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	return "Bearer " + testutil.Token(t, testSecret, userID, role, time.Hour)
}

func doRequest(r http.Handler, method, path string, body any, auth string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func day(s string) time.Time {
	d, _ := time.Parse(dto.DateLayout, s)
	return d
}

func sampleBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		ListingID:      uuid.NewString(),
		GuestID:        "guest-1",
		HostID:         "host-1",
		StartDate:      day("2025-07-01"),
		EndDate:        day("2025-07-06"),
		Guests:         domain.Guests{Adults: 2},
		PriceBreakdown: domain.PriceBreakdown{BasePrice: 500, CleaningFee: 25, ServiceFee: 50, Taxes: 25},
		TotalPrice:     600,
		Status:         domain.BookingStatusPending,
		PaymentStatus:  domain.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	m, r := setupRouter(t)

	listing := &domain.Listing{
		ID:                 uuid.NewString(),
		HostID:             "host-1",
		Title:              "Cabin",
		City:               "Sochi",
		Price:              100,
		MaxGuests:          4,
		CancellationPolicy: domain.PolicyStrict,
		CreatedAt:          time.Now(),
	}
	m.listings.EXPECT().Create(mock.Anything, "host-1", mock.MatchedBy(func(in domain.CreateListingInput) bool {
		return in.Title == "Cabin" && in.Price == 100 && in.CancellationPolicy == "strict"
	})).Return(listing, nil)

	w := doRequest(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		Title:              "Cabin",
		City:               "Sochi",
		Address:            "Lake st. 1",
		Price:              100,
		MaxGuests:          4,
		CancellationPolicy: "strict",
	}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, listing.ID, resp.ID)
	assert.Equal(t, "strict", resp.CancellationPolicy)
	assert.Empty(t, resp.BlockedDates)
	assert.NotNil(t, resp.Amenities)
}

func TestHandler_CreateListing_Validation(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/listings", map[string]any{
		"title": "Cabin", "city": "Sochi", "address": "x", "max_guests": 2,
		"cancellation_policy": "lenient",
	}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateListing_NoToken(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{Title: "Cabin"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/listings/not-a-uuid", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.listings.EXPECT().Get(mock.Anything, id).Return(nil, fmt.Errorf("get listing: %w", domain.ErrListingNotFound))

	w := doRequest(r, http.MethodGet, "/api/listings/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListListings_Filter(t *testing.T) {
	m, r := setupRouter(t)

	m.listings.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListingFilter) bool {
		return f.City == "Sochi" && f.MinPrice != nil && *f.MinPrice == 50 &&
			f.MaxPrice == nil && f.Guests == 3 && f.Page == 2
	})).Return(&domain.ListingPage{Listings: []*domain.Listing{{ID: "l1"}}, Total: 11}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings?city=Sochi&min_price=50&guests=3&page=2", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Listings, 1)
}

func TestHandler_CheckAvailability(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.bookings.EXPECT().CheckAvailability(mock.Anything, id, day("2025-07-01"), day("2025-07-05")).Return(false, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/availability?start_date=2025-07-01&end_date=2025-07-05", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "2025-07-01", resp.StartDate)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/listings/"+uuid.NewString()+"/availability?start_date=07/01/2025&end_date=2025-07-05", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_date")
}

func TestHandler_BlockDates_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.listings.EXPECT().BlockDates(mock.Anything, mock.MatchedBy(func(in domain.BlockDatesInput) bool {
		return in.ListingID == id && in.Actor.UserID == "host-2" && in.StartDate.Equal(day("2025-08-01"))
	})).Return(nil, domain.ErrUnauthorized)

	w := doRequest(r, http.MethodPost, "/api/listings/"+id+"/blocked-dates", dto.BlockDatesRequest{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-03",
	}, token(t, "host-2", domain.RoleHost))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListListingReviews(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.reviews.EXPECT().ListByListing(mock.Anything, id, 0, 5).Return([]*domain.Review{
		{ID: "r1", ListingID: id, Rating: 5, CreatedAt: time.Now()},
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/reviews?limit=5", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].Rating)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	listingID := uuid.NewString()
	booking := sampleBooking(uuid.NewString())
	m.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.ListingID == listingID &&
			in.GuestID == "guest-1" &&
			in.StartDate.Equal(day("2025-07-01")) &&
			in.EndDate.Equal(day("2025-07-06")) &&
			in.Guests == domain.Guests{Adults: 2, Children: 1}
	})).Return(booking, nil)

	w := doRequest(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: listingID,
		StartDate: "2025-07-01",
		EndDate:   "2025-07-06",
		Adults:    2,
		Children:  1,
	}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, int64(600), resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.Cancellation)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unavailable", domain.ErrUnavailable, http.StatusConflict},
		{"capacity", fmt.Errorf("%w: listing allows at most 4 guests", domain.ErrCapacityExceeded), http.StatusBadRequest},
		{"date range", domain.ErrInvalidDateRange, http.StatusBadRequest},
		{"listing missing", fmt.Errorf("get listing: %w", domain.ErrListingNotFound), http.StatusNotFound},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tc.err)

			w := doRequest(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
				ListingID: uuid.NewString(),
				StartDate: "2025-07-01",
				EndDate:   "2025-07-06",
				Adults:    1,
			}, token(t, "guest-1", domain.RoleGuest))

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
			}
		})
	}
}

func TestHandler_CreateBooking_NoAdults(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: uuid.NewString(),
		StartDate: "2025-07-01",
		EndDate:   "2025-07-06",
	}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.bookings.EXPECT().Get(mock.Anything, id, domain.Actor{UserID: "stranger", Role: domain.RoleGuest}).
		Return(nil, domain.ErrUnauthorized)

	w := doRequest(r, http.MethodGet, "/api/bookings/"+id, nil, token(t, "stranger", domain.RoleGuest))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateBookingStatus_Confirm(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	confirmed := sampleBooking(id)
	confirmed.Status = domain.BookingStatusConfirmed
	confirmed.HostNotes = "see you"

	m.bookings.EXPECT().TransitionStatus(mock.Anything, domain.TransitionInput{
		BookingID: id,
		To:        domain.BookingStatusConfirmed,
		Actor:     domain.Actor{UserID: "host-1", Role: domain.RoleHost},
		HostNotes: "see you",
	}).Return(confirmed, nil)

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateStatusRequest{
		Status:    "confirmed",
		HostNotes: "see you",
	}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "see you", resp.HostNotes)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.bookings.EXPECT().TransitionStatus(mock.Anything, mock.Anything).Return(nil,
		&domain.TransitionError{From: domain.BookingStatusCompleted, To: domain.BookingStatusConfirmed})

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateStatusRequest{
		Status: "confirmed",
	}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "cannot change status from completed to confirmed")
}

func TestHandler_UpdateBookingStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+uuid.NewString()+"/status", dto.UpdateStatusRequest{
		Status: "refunded",
	}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_WithoutBody(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	cancelled := sampleBooking(id)
	cancelled.Status = domain.BookingStatusCancelled
	cancelled.Cancellation = &domain.Cancellation{
		CancelledAt:  time.Now(),
		CancelledBy:  "guest-1",
		RefundAmount: decimal.NewFromInt(300),
	}

	m.bookings.EXPECT().Cancel(mock.Anything, id, domain.Actor{UserID: "guest-1", Role: domain.RoleGuest}, "").
		Return(cancelled, nil)

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/cancel", nil, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cancellation)
	assert.Equal(t, "300.00", resp.Cancellation.RefundAmount)
	assert.Equal(t, "guest-1", resp.Cancellation.CancelledBy)
}

func TestHandler_CancelBooking_NotCancellable(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.bookings.EXPECT().Cancel(mock.Anything, id, mock.Anything, "too late").Return(nil, domain.ErrNotCancellable)

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id+"/cancel", dto.CancelRequest{Reason: "too late"},
		token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().ListByGuest(mock.Anything, "guest-1", domain.BookingFilter{
		Status: domain.BookingStatusConfirmed,
		Page:   1,
		Limit:  20,
	}).Return(&domain.BookingPage{Bookings: []*domain.Booking{sampleBooking("b1")}, Total: 1}, nil)

	w := doRequest(r, http.MethodGet, "/api/bookings/my?status=confirmed&page=1&limit=20", nil,
		token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2025-07-01", resp.Bookings[0].StartDate)
}

// --- Reviews ---

func TestHandler_CreateReview(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.NewString()
	m.reviews.EXPECT().Create(mock.Anything, domain.CreateReviewInput{
		BookingID: bookingID,
		GuestID:   "guest-1",
		Rating:    4,
		Comment:   "cozy",
	}).Return(&domain.Review{ID: "r1", BookingID: bookingID, Rating: 4, Comment: "cozy", CreatedAt: time.Now()}, nil)

	w := doRequest(r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    4,
		Comment:   "cozy",
	}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_Exists(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewExists)

	w := doRequest(r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: uuid.NewString(),
		Rating:    5,
	}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	chatID := int64(12345)
	user := &domain.User{
		ID:             uuid.NewString(),
		Name:           "Alice",
		Email:          "alice@example.com",
		Role:           domain.RoleHost,
		TelegramChatID: &chatID,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	m.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Name:           "Alice",
		Email:          "alice@example.com",
		Role:           domain.RoleHost,
		TelegramChatID: &chatID,
	}).Return(user, nil)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:           "Alice",
		Email:          "alice@example.com",
		Role:           "host",
		TelegramChatID: &chatID,
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "host", resp.Role)
	assert.Equal(t, &chatID, resp.TelegramChatID)
}

func TestHandler_CreateUser_AdminRoleRejected(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Mallory",
		Email: "mallory@example.com",
		Role:  "admin",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMe(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().GetByID(mock.Anything, "guest-1").
		Return(&domain.User{ID: "guest-1", Name: "Gail", Role: domain.RoleGuest, CreatedAt: time.Now()}, nil)

	w := doRequest(r, http.MethodGet, "/api/users/me", nil, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Gail"`)
}

func TestHandler_SetUserActive(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.users.EXPECT().SetActive(mock.Anything, id, false).Return(nil)

	w := doRequest(r, http.MethodPatch, "/api/admin/users/"+id+"/active", map[string]any{"is_active": false},
		token(t, "admin-1", domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"is_active":false}`, id), w.Body.String())
}

func TestHandler_SetUserActive_MissingFlag(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/admin/users/"+uuid.NewString()+"/active", map[string]any{},
		token(t, "admin-1", domain.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Listing management ---

func TestHandler_UpdateListing_PartialBody(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.listings.EXPECT().Update(mock.Anything, mock.MatchedBy(func(in domain.UpdateListingInput) bool {
		return in.ListingID == id && in.Actor.UserID == "host-1" &&
			in.Price != nil && *in.Price == 150 && in.Title == nil && in.MaxGuests == nil
	})).Return(&domain.Listing{ID: id, HostID: "host-1", Price: 150, IsActive: true}, nil)

	w := doRequest(r, http.MethodPut, "/api/listings/"+id, map[string]any{"price": 150}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(150), resp.Price)
	assert.False(t, resp.IsVerified)
}

func TestHandler_UpdateListing_BadPolicy(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPut, "/api/listings/"+uuid.NewString(),
		map[string]any{"cancellation_policy": "lenient"}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeactivateListing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"deactivated", nil, http.StatusNoContent},
		{"upcoming bookings", domain.ErrHasBookings, http.StatusConflict},
		{"not the owner", domain.ErrUnauthorized, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			id := uuid.NewString()
			m.listings.EXPECT().Deactivate(mock.Anything, id, domain.Actor{UserID: "host-1", Role: domain.RoleHost}).Return(tt.err)

			w := doRequest(r, http.MethodDelete, "/api/listings/"+id, nil, token(t, "host-1", domain.RoleHost))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_ListFeaturedListings(t *testing.T) {
	m, r := setupRouter(t)

	m.listings.EXPECT().Featured(mock.Anything).Return([]*domain.Listing{
		{ID: "l1", AverageRating: 4.9, ReviewCount: 12},
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/featured", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 4.9, resp[0].AverageRating)
}

func TestHandler_ListAllListings(t *testing.T) {
	m, r := setupRouter(t)

	m.listings.EXPECT().ListAll(mock.Anything, domain.AdminListingFilter{
		Status: domain.ListingStatusInactive,
		Search: "porto",
		Page:   2,
	}).Return(&domain.ListingPage{Listings: []*domain.Listing{{ID: "l1"}}, Total: 21}, nil)

	w := doRequest(r, http.MethodGet, "/api/admin/listings?status=inactive&search=porto&page=2", nil, token(t, "root", domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 21, resp.Total)
}

func TestHandler_ListAllListings_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/admin/listings?status=archived", nil, token(t, "root", domain.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Review management ---

func TestHandler_ListMyReviews(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().ListByGuest(mock.Anything, "guest-1", 0, 0).Return([]*domain.Review{
		{ID: "r1", GuestID: "guest-1", Rating: 3, IsPublic: false},
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/reviews/my", nil, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.False(t, resp[0].IsPublic)
}

func TestHandler_UpdateReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.reviews.EXPECT().Update(mock.Anything, mock.MatchedBy(func(in domain.UpdateReviewInput) bool {
		return in.ReviewID == id && in.GuestID == "guest-1" && in.Rating != nil && *in.Rating == 2 && in.Comment == nil
	})).Return(&domain.Review{ID: id, Rating: 2}, nil)

	w := doRequest(r, http.MethodPut, "/api/reviews/"+id, map[string]any{"rating": 2}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateReview_WindowClosed(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	w := doRequest(r, http.MethodPut, "/api/reviews/"+uuid.NewString(), map[string]any{"comment": "late"}, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.reviews.EXPECT().Delete(mock.Anything, id, domain.Actor{UserID: "guest-1", Role: domain.RoleGuest}).Return(nil)

	w := doRequest(r, http.MethodDelete, "/api/reviews/"+id, nil, token(t, "guest-1", domain.RoleGuest))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_FlagReview(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"flagged", nil, http.StatusOK},
		{"already flagged", domain.ErrReviewFlagged, http.StatusConflict},
		{"missing review", domain.ErrReviewNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			id := uuid.NewString()
			m.reviews.EXPECT().Flag(mock.Anything, id, "host-1", "spam").Return(tt.err)

			w := doRequest(r, http.MethodPost, "/api/reviews/"+id+"/flag", dto.FlagReviewRequest{Reason: "spam"}, token(t, "host-1", domain.RoleHost))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_FlagReview_ReasonRequired(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/reviews/"+uuid.NewString()+"/flag", dto.FlagReviewRequest{}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RespondToReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	respondedAt := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)
	m.reviews.EXPECT().Respond(mock.Anything, id, "host-1", "Thank you!").Return(&domain.Review{
		ID:           id,
		HostResponse: &domain.HostResponse{Comment: "Thank you!", RespondedAt: respondedAt},
	}, nil)

	w := doRequest(r, http.MethodPost, "/api/reviews/"+id+"/respond", dto.RespondReviewRequest{Comment: "Thank you!"}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.HostResponse)
	assert.Equal(t, "2025-07-10T12:00:00Z", resp.HostResponse.RespondedAt)
}

func TestHandler_RespondToReview_Twice(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().Respond(mock.Anything, mock.Anything, "host-1", "again").Return(nil, domain.ErrResponded)

	w := doRequest(r, http.MethodPost, "/api/reviews/"+uuid.NewString()+"/respond", dto.RespondReviewRequest{Comment: "again"}, token(t, "host-1", domain.RoleHost))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListFlaggedReviews(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().ListFlagged(mock.Anything, 1, 50).Return([]*domain.Review{
		{ID: "r1", IsFlagged: true, FlagReason: "rude"},
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/admin/reviews/flagged?page=1&limit=50", nil, token(t, "root", domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "rude", resp[0].FlagReason)
}

func TestHandler_ModerateReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.reviews.EXPECT().Moderate(mock.Anything, domain.ModerateReviewInput{
		ReviewID: id,
		AdminID:  "root",
		Action:   domain.ModerationHide,
	}).Return(&domain.Review{ID: id, IsPublic: false}, nil)

	w := doRequest(r, http.MethodPatch, "/api/admin/reviews/"+id+"/moderate", dto.ModerateReviewRequest{Action: "hide"}, token(t, "root", domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ModerateReview_UnknownAction(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/admin/reviews/"+uuid.NewString()+"/moderate", dto.ModerateReviewRequest{Action: "delete"}, token(t, "root", domain.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
