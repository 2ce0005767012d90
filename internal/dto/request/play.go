package request

// PlayRequest is used by POST and PUT. Omitted numeric fields fall back to
// the configured defaults on create and stay unchanged on update.
type PlayRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Fee          *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	TotalAccents *int     `json:"total_accents,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}

type PlayUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Fee          *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	TotalAccents *int     `json:"total_accents,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}
