package repository

import (
	"smart-highway/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Place            PlaceRepository
	Amenity          AmenityRepository
	PlaceAmenity     PlaceAmenityRepository
	Provider         ProviderRepository
	Route            RouteRepository
	Schedule         ScheduleRepository
	Booking          BookingRepository
	TransportBooking TransportBookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Place:            NewPlaceRepository(db, log),
		Amenity:          NewAmenityRepository(db, log),
		PlaceAmenity:     NewPlaceAmenityRepository(db, log),
		Provider:         NewProviderRepository(db, log),
		Route:            NewRouteRepository(db, log),
		Schedule:         NewScheduleRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		TransportBooking: NewTransportBookingRepository(db, log),
	}
}
