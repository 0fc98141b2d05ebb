package response

import (
	"time"

	"rate-am/internal/data/entity"
)

type VendorResponse struct {
	ID               string              `json:"id"`
	UserID           string              `json:"user_id"`
	BusinessName     string              `json:"business_name"`
	Category         *string             `json:"category,omitempty"`
	Description      *string             `json:"description,omitempty"`
	Location         *string             `json:"location,omitempty"`
	Phone            *string             `json:"phone,omitempty"`
	Whatsapp         *string             `json:"whatsapp,omitempty"`
	Email            *string             `json:"email,omitempty"`
	PreferredContact *string             `json:"preferred_contact,omitempty"`
	ImageURL         *string             `json:"image_url,omitempty"`
	Gallery          []string            `json:"gallery,omitempty"`
	Rating           float64             `json:"rating"`
	ReviewCount      int64               `json:"review_count"`
	Status           entity.VendorStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
}

type CategoryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

func VendorToResponse(vendor *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:               vendor.ID.String(),
		UserID:           vendor.UserID.String(),
		BusinessName:     vendor.BusinessName,
		Category:         vendor.Category,
		Description:      vendor.Description,
		Location:         vendor.Location,
		Phone:            vendor.Phone,
		Whatsapp:         vendor.Whatsapp,
		Email:            vendor.Email,
		PreferredContact: vendor.PreferredContact,
		ImageURL:         vendor.ImageURL,
		Gallery:          vendor.Gallery,
		Rating:           vendor.Rating,
		ReviewCount:      vendor.ReviewCount,
		Status:           vendor.Status,
		CreatedAt:        vendor.CreatedAt,
	}
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Icon: category.Icon,
	}
}
