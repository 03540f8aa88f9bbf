package domain

import (
	"fmt"
	"strings"
	"time"
)

type CancellationPolicy string

const (
	PolicyFlexible CancellationPolicy = "flexible"
	PolicyModerate CancellationPolicy = "moderate"
	PolicyStrict   CancellationPolicy = "strict"
)

func ParseCancellationPolicy(s string) (CancellationPolicy, error) {
	switch p := CancellationPolicy(s); p {
	case PolicyFlexible, PolicyModerate, PolicyStrict:
		return p, nil
	case "":
		return PolicyModerate, nil
	default:
		return "", fmt.Errorf("%w: unknown cancellation policy %q", ErrValidation, s)
	}
}

const BlockReasonBooked = "Booked"

// Featured listings are verified, active and rated at least FeaturedMinRating.
const (
	FeaturedMinRating = 4.5
	FeaturedLimit     = 8
)

type BlockedRange struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	BookingID string    `json:"booking_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (b BlockedRange) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

type Listing struct {
	ID                 string             `json:"id"`
	HostID             string             `json:"host_id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	City               string             `json:"city"`
	Address            string             `json:"address"`
	Category           string             `json:"category"`
	Amenities          []string           `json:"amenities"`
	Price              int64              `json:"price"`
	MaxGuests          int                `json:"max_guests"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
	BlockedDates       []BlockedRange     `json:"blocked_dates"`
	IsActive           bool               `json:"is_active"`
	IsVerified         bool               `json:"is_verified"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	TotalBookings      int                `json:"total_bookings"`
	AverageRating      float64            `json:"average_rating"`
	ReviewCount        int                `json:"review_count"`
	Version            int                `json:"version"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Bookable reports whether guests may request stays on the listing.
func (l *Listing) Bookable() bool {
	return l.IsActive && l.IsVerified
}

// IsAvailable checks r against the blocked ranges only; bookings are checked separately.
func (l *Listing) IsAvailable(r DateRange) bool {
	for _, b := range l.BlockedDates {
		if r.Overlaps(b.Range()) {
			return false
		}
	}
	return true
}

type CreateListingInput struct {
	Title              string
	Description        string
	City               string
	Address            string
	Category           string
	Amenities          []string
	Price              int64
	MaxGuests          int
	CancellationPolicy string
}

// UpdateListingInput changes only the fields that are set.
type UpdateListingInput struct {
	ListingID          string
	Actor              Actor
	Title              *string
	Description        *string
	City               *string
	Address            *string
	Category           *string
	Amenities          []string
	Price              *int64
	MaxGuests          *int
	CancellationPolicy *string
}

// Apply validates the set fields and copies them onto l.
func (in UpdateListingInput) Apply(l *Listing) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return fmt.Errorf("%w: title is required", ErrValidation)
		}
		l.Title = title
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		l.Price = *in.Price
	}
	if in.MaxGuests != nil {
		if *in.MaxGuests < 1 {
			return fmt.Errorf("%w: max guests must be at least 1", ErrValidation)
		}
		l.MaxGuests = *in.MaxGuests
	}
	if in.CancellationPolicy != nil {
		p, err := ParseCancellationPolicy(*in.CancellationPolicy)
		if err != nil {
			return err
		}
		l.CancellationPolicy = p
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.City != nil {
		l.City = *in.City
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.Category != nil {
		l.Category = *in.Category
	}
	if in.Amenities != nil {
		l.Amenities = in.Amenities
	}
	return nil
}

type BlockDatesInput struct {
	ListingID string
	Actor     Actor
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type ListingFilter struct {
	City     string
	MinPrice *int64
	MaxPrice *int64
	Guests   int
	Page     int
	Limit    int
}

func (f ListingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ListingStatus selects listings in the admin index.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusVerified ListingStatus = "verified"
	ListingStatusInactive ListingStatus = "inactive"
)

// Matches reports whether l belongs to the status bucket. An empty status matches everything.
func (s ListingStatus) Matches(l *Listing) bool {
	switch s {
	case ListingStatusPending:
		return !l.IsVerified
	case ListingStatusVerified:
		return l.IsVerified
	case ListingStatusInactive:
		return !l.IsActive
	default:
		return true
	}
}

// AdminListingFilter covers inactive and unverified listings too.
type AdminListingFilter struct {
	Status ListingStatus
	Search string
	Page   int
	Limit  int
}

func (f AdminListingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type ListingPage struct {
	Listings []*Listing `json:"listings"`
	Total    int        `json:"total"`
}
