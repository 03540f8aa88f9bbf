package router

import (
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	ListListings(c *ginext.Context)
	GetListing(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ListListingReviews(c *ginext.Context)
	CreateListing(c *ginext.Context)
	ListHostListings(c *ginext.Context)
	BlockDates(c *ginext.Context)
	VerifyListing(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	DeactivateListing(c *ginext.Context)
	ListFeaturedListings(c *ginext.Context)
	ListAllListings(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListHostBookings(c *ginext.Context)
	ListAllBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)

	CreateReview(c *ginext.Context)
	ListMyReviews(c *ginext.Context)
	UpdateReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)
	FlagReview(c *ginext.Context)
	RespondToReview(c *ginext.Context)
	ListFlaggedReviews(c *ginext.Context)
	ModerateReview(c *ginext.Context)

	CreateUser(c *ginext.Context)
	GetMe(c *ginext.Context)
	ListUsers(c *ginext.Context)
	SetUserActive(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens *middleware.TokenValidator, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		// Public
		api.GET("/listings", h.ListListings)
		api.GET("/listings/featured", h.ListFeaturedListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/availability", h.CheckAvailability)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
		api.POST("/users", h.CreateUser)
	}

	auth := api.Group("", middleware.Auth(tokens))
	{
		auth.GET("/users/me", h.GetMe)

		// Bookings
		auth.POST("/bookings", h.CreateBooking)
		auth.GET("/bookings/my", h.ListMyBookings)
		auth.GET("/bookings/:id", h.GetBooking)
		auth.PATCH("/bookings/:id/cancel", h.CancelBooking)
		auth.PATCH("/bookings/:id/status", middleware.RequireRole(domain.RoleHost), h.UpdateBookingStatus)

		// Reviews
		auth.POST("/reviews", h.CreateReview)
		auth.GET("/reviews/my", h.ListMyReviews)
		auth.PUT("/reviews/:id", h.UpdateReview)
		auth.DELETE("/reviews/:id", h.DeleteReview)
		auth.POST("/reviews/:id/flag", h.FlagReview)
	}

	host := auth.Group("", middleware.RequireRole(domain.RoleHost))
	{
		host.POST("/listings", h.CreateListing)
		host.PUT("/listings/:id", h.UpdateListing)
		host.DELETE("/listings/:id", h.DeactivateListing)
		host.POST("/listings/:id/blocked-dates", h.BlockDates)
		host.POST("/reviews/:id/respond", h.RespondToReview)
		host.GET("/host/listings", h.ListHostListings)
		host.GET("/host/bookings", h.ListHostBookings)
	}

	admin := auth.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/bookings", h.ListAllBookings)
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id/active", h.SetUserActive)
		admin.GET("/listings", h.ListAllListings)
		admin.DELETE("/listings/:id", h.DeactivateListing)
		admin.PATCH("/listings/:id/verify", h.VerifyListing)
		admin.GET("/reviews/flagged", h.ListFlaggedReviews)
		admin.PATCH("/reviews/:id/moderate", h.ModerateReview)
	}

	return router
}
