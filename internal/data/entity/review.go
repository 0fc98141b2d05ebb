package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type Review struct {
	BaseSimple
	UserID         uuid.UUID    `db:"user_id"`
	VendorID       uuid.UUID    `db:"vendor_id"`
	Rating         int          `db:"rating"` // 1-5
	Comment        *string      `db:"comment"`
	Status         ReviewStatus `db:"status"`
	VendorReply    *string      `db:"vendor_reply"`
	VendorReplyAt  *time.Time   `db:"vendor_reply_at"`
	ContactVisible bool         `db:"customer_contact_visible"`
}
