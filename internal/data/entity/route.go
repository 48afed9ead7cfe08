package entity

import "github.com/google/uuid"

type Route struct {
	Base
	ProviderID      uuid.UUID `db:"provider_id"`
	Name            string    `db:"name"`
	Source          string    `db:"source"`
	Destination     string    `db:"destination"`
	DistanceKM      float64   `db:"distance_km"`
	DurationMinutes int       `db:"duration_minutes"`
	Fare            float64   `db:"fare"` // base fare per passenger
	IsActive        bool      `db:"is_active"`
}
