package domain

import "time"

// ReviewStatus is the moderation state of a product review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// ValidReviewStatus reports whether s is a known moderation state.
func ValidReviewStatus(s ReviewStatus) bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}

// Review is a shopper-submitted product review. UserID is empty for reviews
// carried over from guest sessions.
type Review struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	UserID    string       `json:"user_id,omitempty"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Rating    int          `json:"rating"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
