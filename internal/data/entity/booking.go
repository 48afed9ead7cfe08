package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// CanCancel reports whether the status allows a transition to cancelled.
// completed and cancelled are absorbing states.
func (s BookingStatus) CanCancel() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking is a rest-place reservation. Bookings are never deleted,
// only marked cancelled or completed.
type Booking struct {
	BaseNoDelete
	UserID     uuid.UUID     `db:"user_id"`
	PlaceID    uuid.UUID     `db:"place_id"`
	CheckIn    time.Time     `db:"check_in"`
	CheckOut   time.Time     `db:"check_out"`
	Status     BookingStatus `db:"status"`
	TotalPrice float64       `db:"total_price"`
}
