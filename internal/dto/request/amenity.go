package request

type AmenityRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Icon string `json:"icon,omitempty" validate:"omitempty,max=100"`
}

type AmenityUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon *string `json:"icon,omitempty" validate:"omitempty,max=100"`
}
