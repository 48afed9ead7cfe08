package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransportBooking is a route reservation. CreditsUsed records the exact
// amount debited from the user's balance at creation so cancellation can
// refund it in full.
type TransportBooking struct {
	BaseNoDelete
	UserID        uuid.UUID     `db:"user_id"`
	ScheduleID    uuid.UUID     `db:"schedule_id"`
	BookingDate   time.Time     `db:"booking_date"`
	NumPassengers int           `db:"num_passengers"`
	TotalFare     float64       `db:"total_fare"`
	CreditsUsed   float64       `db:"credits_used"`
	Status        BookingStatus `db:"status"`
}
