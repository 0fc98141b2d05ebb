package response

import (
	"time"

	"rate-am/internal/data/entity"
)

type ReviewResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	UserName       string              `json:"user_name,omitempty"`
	VendorID       string              `json:"vendor_id"`
	VendorName     string              `json:"vendor_name,omitempty"`
	Rating         int                 `json:"rating"`
	Comment        *string             `json:"comment,omitempty"`
	Status         entity.ReviewStatus `json:"status"`
	VendorReply    *string             `json:"vendor_reply,omitempty"`
	VendorReplyAt  *time.Time          `json:"vendor_reply_at,omitempty"`
	ContactVisible bool                `json:"customer_contact_visible"`
	CreatedAt      time.Time           `json:"created_at"`
}

type VendorReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, userName, vendorName string) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		UserID:         review.UserID.String(),
		UserName:       userName,
		VendorID:       review.VendorID.String(),
		VendorName:     vendorName,
		Rating:         review.Rating,
		Comment:        review.Comment,
		Status:         review.Status,
		VendorReply:    review.VendorReply,
		VendorReplyAt:  review.VendorReplyAt,
		ContactVisible: review.ContactVisible,
		CreatedAt:      review.CreatedAt,
	}
}
