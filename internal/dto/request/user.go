package request

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
}

type TopUpCreditsRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
