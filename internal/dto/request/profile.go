package request

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Whatsapp  *string `json:"whatsapp,omitempty" validate:"omitempty,min=10,max=15"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
}
