package request

type CreateBookingRequest struct {
	PlaceID    string  `json:"place_id" validate:"required,uuid4"`
	CheckIn    string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	TotalPrice float64 `json:"total_price" validate:"min=0"`
}

type CreateTransportBookingRequest struct {
	ScheduleID    string `json:"schedule_id" validate:"required,uuid4"`
	BookingDate   string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	NumPassengers int    `json:"num_passengers" validate:"required,min=1,max=10"`
}
