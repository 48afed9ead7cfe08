package wire

import (
	"smart-highway/internal/adaptor"
	"smart-highway/internal/data/repository"
	"smart-highway/pkg/middleware"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlace(
	r chi.Router,
	placeHandler *adaptor.PlaceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/places - combined proximity + attribute search
	r.Get("/api/places", placeHandler.SearchPlaces)
	r.Get("/api/places/types", placeHandler.GetPlaceTypes)
	r.Get("/api/places/nearby", placeHandler.GetNearbyPlaces)
	r.Get("/api/places/{id}", placeHandler.GetPlaceByID)
	r.Get("/api/amenities", placeHandler.ListAmenities)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/places", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", placeHandler.CreatePlace)
		r.Put("/{id}", placeHandler.UpdatePlace)
		r.Delete("/{id}", placeHandler.DeletePlace)
		r.Post("/{id}/amenities", placeHandler.AttachAmenities)
		r.Delete("/{id}/amenities/{amenityID}", placeHandler.DetachAmenity)
	})

	r.Route("/api/admin/amenities", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", placeHandler.CreateAmenity)
		r.Put("/{id}", placeHandler.UpdateAmenity)
		r.Delete("/{id}", placeHandler.DeleteAmenity)
	})
}
