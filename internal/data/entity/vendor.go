package entity

import (
	"github.com/google/uuid"
)

type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusSuspended VendorStatus = "suspended"
	VendorStatusRejected  VendorStatus = "rejected"
)

func (s VendorStatus) Valid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusSuspended, VendorStatusRejected:
		return true
	}
	return false
}

type Vendor struct {
	Base
	UserID           uuid.UUID    `db:"user_id"`
	BusinessName     string       `db:"business_name"`
	Category         *string      `db:"category"`
	Description      *string      `db:"description"`
	Location         *string      `db:"location"`
	Phone            *string      `db:"phone"`
	Whatsapp         *string      `db:"whatsapp"`
	Email            *string      `db:"email"`
	PreferredContact *string      `db:"preferred_contact"`
	ImageURL         *string      `db:"image_url"`
	Gallery          []string     `db:"gallery"`
	Rating           float64      `db:"rating"`
	ReviewCount      int64        `db:"review_count"`
	Status           VendorStatus `db:"status"`
}
