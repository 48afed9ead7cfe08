package entity

import "github.com/google/uuid"

// Schedule is a recurring service on a route. Departure and arrival are
// times of day in "15:04" form, not timestamps; a leg may arrive past
// midnight, so arrival is allowed to sort before departure.
type Schedule struct {
	Base
	RouteID       uuid.UUID `db:"route_id"`
	DepartureTime string    `db:"departure_time"`
	ArrivalTime   string    `db:"arrival_time"`
	DaysOfWeek    string    `db:"days_of_week"` // e.g. "1,2,3,4,5" for weekdays
	IsActive      bool      `db:"is_active"`
}
