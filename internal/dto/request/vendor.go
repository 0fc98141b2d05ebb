package request

type CreateVendorRequest struct {
	BusinessName     string  `json:"business_name" validate:"required,min=2,max=150"`
	Category         *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location         *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Whatsapp         *string `json:"whatsapp,omitempty" validate:"omitempty,min=10,max=15"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	PreferredContact *string `json:"preferred_contact,omitempty" validate:"omitempty,oneof=phone whatsapp email"`
}

type UpdateVendorRequest struct {
	BusinessName     *string  `json:"business_name,omitempty" validate:"omitempty,min=2,max=150"`
	Category         *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Description      *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location         *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Phone            *string  `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Whatsapp         *string  `json:"whatsapp,omitempty" validate:"omitempty,min=10,max=15"`
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`
	PreferredContact *string  `json:"preferred_contact,omitempty" validate:"omitempty,oneof=phone whatsapp email"`
	ImageURL         *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Gallery          []string `json:"gallery,omitempty" validate:"omitempty,max=4,dive,max=500"`
}

// ListVendorsRequest carries the public listing query parameters
type ListVendorsRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	SortBy   string `json:"sort_by" validate:"omitempty,oneof=rating reviews name newest"`
	PaginatedRequest
}
