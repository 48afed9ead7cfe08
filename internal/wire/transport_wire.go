package wire

import (
	"smart-highway/internal/adaptor"
	"smart-highway/internal/data/repository"
	"smart-highway/pkg/middleware"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTransport(
	r chi.Router,
	transportHandler *adaptor.TransportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/transport/providers", transportHandler.ListProviders)
	r.Get("/api/transport/routes", transportHandler.ListRoutes)
	r.Get("/api/transport/schedules", transportHandler.ListSchedules)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/transport", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/providers", transportHandler.CreateProvider)
		r.Put("/providers/{id}", transportHandler.UpdateProvider)
		r.Delete("/providers/{id}", transportHandler.DeleteProvider)

		r.Post("/routes", transportHandler.CreateRoute)
		r.Put("/routes/{id}", transportHandler.UpdateRoute)
		r.Delete("/routes/{id}", transportHandler.DeleteRoute)

		r.Post("/schedules", transportHandler.CreateSchedule)
		r.Put("/schedules/{id}", transportHandler.UpdateSchedule)
		r.Delete("/schedules/{id}", transportHandler.DeleteSchedule)
	})
}
