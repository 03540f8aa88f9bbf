package dto

// DateLayout is the wire format of stay dates.
const DateLayout = "2006-01-02"

type CreateListingRequest struct {
	Title              string   `json:"title" binding:"required,max=200"`
	Description        string   `json:"description" binding:"max=5000"`
	City               string   `json:"city" binding:"required"`
	Address            string   `json:"address" binding:"required"`
	Category           string   `json:"category"`
	Amenities          []string `json:"amenities"`
	Price              int64    `json:"price" binding:"required,gt=0"`
	MaxGuests          int      `json:"max_guests" binding:"required,gt=0"`
	CancellationPolicy string   `json:"cancellation_policy" binding:"omitempty,oneof=flexible moderate strict"`
}

// UpdateListingRequest changes only the fields present in the body.
type UpdateListingRequest struct {
	Title              *string  `json:"title" binding:"omitempty,max=200"`
	Description        *string  `json:"description" binding:"omitempty,max=5000"`
	City               *string  `json:"city"`
	Address            *string  `json:"address"`
	Category           *string  `json:"category"`
	Amenities          []string `json:"amenities"`
	Price              *int64   `json:"price" binding:"omitempty,gt=0"`
	MaxGuests          *int     `json:"max_guests" binding:"omitempty,gt=0"`
	CancellationPolicy *string  `json:"cancellation_policy" binding:"omitempty,oneof=flexible moderate strict"`
}

type AdminListingQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending verified inactive"`
	Search string `form:"search" binding:"max=100"`
	Page   int    `form:"page" binding:"gte=0"`
	Limit  int    `form:"limit" binding:"gte=0"`
}

type ListingQuery struct {
	City     string `form:"city"`
	MinPrice *int64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *int64 `form:"max_price" binding:"omitempty,gte=0"`
	Guests   int    `form:"guests" binding:"gte=0"`
	Page     int    `form:"page" binding:"gte=0"`
	Limit    int    `form:"limit" binding:"gte=0"`
}

type AvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type BlockDatesRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=200"`
}

type CreateBookingRequest struct {
	ListingID       string `json:"listing_id" binding:"required,uuid"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Adults          int    `json:"adults" binding:"required,gte=1"`
	Children        int    `json:"children" binding:"gte=0"`
	SpecialRequests string `json:"special_requests" binding:"max=1000"`
}

type BookingQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page" binding:"gte=0"`
	Limit  int    `form:"limit" binding:"gte=0"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
	HostNotes string `json:"host_notes" binding:"max=1000"`
	Reason    string `json:"reason" binding:"max=500"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type FlagReviewRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RespondReviewRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}

type ModerateReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve hide"`
}

type PageQuery struct {
	Page  int `form:"page" binding:"gte=0"`
	Limit int `form:"limit" binding:"gte=0"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role" binding:"omitempty,oneof=guest host"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type VerifyListingRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}
