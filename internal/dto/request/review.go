package request

type CreateReviewRequest struct {
	VendorID       string  `json:"vendor_id" validate:"required,uuid4"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	Comment        *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
	ContactVisible bool    `json:"customer_contact_visible"`
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" validate:"required,min=1,max=1000"`
}

type UpdateReviewStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
