package domain

import (
	"fmt"
	"time"
)

// ReviewEditWindow is how long a guest may edit their review.
const ReviewEditWindow = 30 * 24 * time.Hour

type HostResponse struct {
	Comment     string    `json:"comment"`
	RespondedAt time.Time `json:"responded_at"`
}

type Review struct {
	ID           string        `json:"id"`
	ListingID    string        `json:"listing_id"`
	BookingID    string        `json:"booking_id"`
	GuestID      string        `json:"guest_id"`
	Rating       int           `json:"rating"`
	Comment      string        `json:"comment"`
	IsPublic     bool          `json:"is_public"`
	IsFlagged    bool          `json:"is_flagged"`
	FlagReason   string        `json:"flag_reason,omitempty"`
	HostResponse *HostResponse `json:"host_response,omitempty"`
	ModeratedBy  string        `json:"moderated_by,omitempty"`
	ModeratedAt  *time.Time    `json:"moderated_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CanBeEdited reports whether userID wrote the review and the edit window is still open.
func (r *Review) CanBeEdited(userID string, now time.Time) bool {
	return r.GuestID == userID && now.Sub(r.CreatedAt) <= ReviewEditWindow
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

type ModerationAction string

const (
	// ModerationApprove clears the flag and keeps the review public.
	ModerationApprove ModerationAction = "approve"
	// ModerationHide clears the flag and removes the review from the listing page and rating.
	ModerationHide ModerationAction = "hide"
)

func (a ModerationAction) Valid() bool {
	return a == ModerationApprove || a == ModerationHide
}

type CreateReviewInput struct {
	BookingID string
	GuestID   string
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	ReviewID string
	GuestID  string
	Rating   *int
	Comment  *string
}

type ModerateReviewInput struct {
	ReviewID string
	AdminID  string
	Action   ModerationAction
}
