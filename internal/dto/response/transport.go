package response

import (
	"time"

	"smart-highway/internal/data/entity"
)

type ProviderResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	ProviderType  entity.ProviderType `json:"provider_type"`
	Description   string              `json:"description,omitempty"`
	ContactNumber string              `json:"contact_number,omitempty"`
	Website       *string             `json:"website,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type RouteResponse struct {
	ID              string    `json:"id"`
	ProviderID      string    `json:"provider_id"`
	ProviderName    string    `json:"provider_name,omitempty"`
	Name            string    `json:"name"`
	Source          string    `json:"source"`
	Destination     string    `json:"destination"`
	DistanceKM      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	Fare            float64   `json:"fare"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type ScheduleResponse struct {
	ID            string `json:"id"`
	RouteID       string `json:"route_id"`
	DepartureTime string `json:"departure_time"` // time of day, "15:04"
	ArrivalTime   string `json:"arrival_time"`
	DaysOfWeek    string `json:"days_of_week"`
	IsActive      bool   `json:"is_active"`
}

// Helper converters
func ProviderToResponse(provider *entity.TransportProvider) ProviderResponse {
	return ProviderResponse{
		ID:            provider.ID.String(),
		Name:          provider.Name,
		ProviderType:  provider.ProviderType,
		Description:   provider.Description,
		ContactNumber: provider.ContactNumber,
		Website:       provider.Website,
		CreatedAt:     provider.CreatedAt,
	}
}

func RouteToResponse(route *entity.Route, providerName string) RouteResponse {
	return RouteResponse{
		ID:              route.ID.String(),
		ProviderID:      route.ProviderID.String(),
		ProviderName:    providerName,
		Name:            route.Name,
		Source:          route.Source,
		Destination:     route.Destination,
		DistanceKM:      route.DistanceKM,
		DurationMinutes: route.DurationMinutes,
		Fare:            route.Fare,
		IsActive:        route.IsActive,
		CreatedAt:       route.CreatedAt,
	}
}

func ScheduleToResponse(schedule *entity.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            schedule.ID.String(),
		RouteID:       schedule.RouteID.String(),
		DepartureTime: schedule.DepartureTime,
		ArrivalTime:   schedule.ArrivalTime,
		DaysOfWeek:    schedule.DaysOfWeek,
		IsActive:      schedule.IsActive,
	}
}
