package wire

import (
	"smart-highway/internal/adaptor"
	"smart-highway/internal/data/repository"
	"smart-highway/pkg/middleware"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// Rest-place bookings
		r.Post("/api/places/{id}/book", bookingHandler.CreateBooking)
		r.Get("/api/bookings", bookingHandler.GetUserBookings)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// Transport bookings
		r.Post("/api/transport/bookings", bookingHandler.CreateTransportBooking)
		r.Get("/api/transport/bookings", bookingHandler.GetUserTransportBookings)
		r.Post("/api/transport/bookings/{id}/cancel", bookingHandler.CancelTransportBooking)
	})
}
