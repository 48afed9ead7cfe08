package response

import (
	"time"

	"smart-highway/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"`
	PlaceID    string               `json:"place_id"`
	PlaceName  string               `json:"place_name,omitempty"`
	CheckIn    string               `json:"check_in"`
	CheckOut   string               `json:"check_out"`
	Status     entity.BookingStatus `json:"status"`
	TotalPrice float64              `json:"total_price"`
	CreatedAt  time.Time            `json:"created_at"`
}

type TransportBookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	ScheduleID    string               `json:"schedule_id"`
	RouteName     string               `json:"route_name,omitempty"`
	BookingDate   string               `json:"booking_date"`
	NumPassengers int                  `json:"num_passengers"`
	TotalFare     float64              `json:"total_fare"`
	CreditsUsed   float64              `json:"credits_used"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, placeName string) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		UserID:     booking.UserID.String(),
		PlaceID:    booking.PlaceID.String(),
		PlaceName:  placeName,
		CheckIn:    booking.CheckIn.Format("2006-01-02"),
		CheckOut:   booking.CheckOut.Format("2006-01-02"),
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
}

func TransportBookingToResponse(booking *entity.TransportBooking, routeName string) TransportBookingResponse {
	return TransportBookingResponse{
		ID:            booking.ID.String(),
		UserID:        booking.UserID.String(),
		ScheduleID:    booking.ScheduleID.String(),
		RouteName:     routeName,
		BookingDate:   booking.BookingDate.Format("2006-01-02"),
		NumPassengers: booking.NumPassengers,
		TotalFare:     booking.TotalFare,
		CreditsUsed:   booking.CreditsUsed,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}
