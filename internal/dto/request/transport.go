package request

type ProviderRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	ProviderType  string  `json:"provider_type" validate:"required,oneof=bus metro train"`
	Description   string  `json:"description,omitempty"`
	ContactNumber string  `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
}

type ProviderUpdateRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ProviderType  *string `json:"provider_type,omitempty" validate:"omitempty,oneof=bus metro train"`
	Description   *string `json:"description,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
}

type RouteRequest struct {
	ProviderID      string  `json:"provider_id" validate:"required,uuid4"`
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	Source          string  `json:"source" validate:"required,max=200"`
	Destination     string  `json:"destination" validate:"required,max=200"`
	DistanceKM      float64 `json:"distance_km" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1"`
	Fare            float64 `json:"fare" validate:"required,gt=0"`
}

type RouteUpdateRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Source          *string  `json:"source,omitempty" validate:"omitempty,max=200"`
	Destination     *string  `json:"destination,omitempty" validate:"omitempty,max=200"`
	DistanceKM      *float64 `json:"distance_km,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Fare            *float64 `json:"fare,omitempty" validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// Schedule times are times of day ("15:04"), not timestamps.
type ScheduleRequest struct {
	RouteID       string `json:"route_id" validate:"required,uuid4"`
	DepartureTime string `json:"departure_time" validate:"required,datetime=15:04"`
	ArrivalTime   string `json:"arrival_time" validate:"required,datetime=15:04"`
	DaysOfWeek    string `json:"days_of_week" validate:"required,max=20"`
}

type ScheduleUpdateRequest struct {
	DepartureTime *string `json:"departure_time,omitempty" validate:"omitempty,datetime=15:04"`
	ArrivalTime   *string `json:"arrival_time,omitempty" validate:"omitempty,datetime=15:04"`
	DaysOfWeek    *string `json:"days_of_week,omitempty" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type ListRoutesRequest struct {
	ProviderID  string `json:"provider_id" validate:"omitempty,uuid4"`
	Source      string `json:"source" validate:"max=200"`
	Destination string `json:"destination" validate:"max=200"`
	Search      string `json:"search" validate:"max=200"`
}
