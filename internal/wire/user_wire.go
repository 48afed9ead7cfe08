package wire

import (
	"smart-highway/internal/adaptor"
	"smart-highway/internal/data/repository"
	"smart-highway/pkg/middleware"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET/PUT /api/profile - own profile
		r.Get("/api/profile", userHandler.GetProfile)
		r.Put("/api/profile", userHandler.UpdateProfile)

		// GET /api/credits - ledger balance, POST /api/credits - top up
		r.Get("/api/credits", userHandler.GetCredits)
		r.Post("/api/credits", userHandler.TopUpCredits)
	})
}
