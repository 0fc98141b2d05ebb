package request

type CreatePollRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Options     []string `json:"options" validate:"required,min=2,max=6,dive,required,max=100"`
	EndsAt      *string  `json:"ends_at,omitempty"` // RFC 3339
}

type RequestPollRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Options     []string `json:"options" validate:"required,min=2,max=6,dive,required,max=100"`
	Reason      string   `json:"reason" validate:"required,min=3,max=1000"`
}

type VoteRequest struct {
	OptionIndex *int `json:"option_index" validate:"required,gte=0"`
}
