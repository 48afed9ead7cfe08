// internal/wire/wire.go
package wire

import (
	"net/http"

	"smart-highway/internal/adaptor"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/usecase"
	"smart-highway/pkg/cache"
	"smart-highway/pkg/middleware"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, config *utils.Config, searchCache *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, searchCache, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wirePlace(r, handler.Place, repo, config, logger)
	wireTransport(r, handler.Transport, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
