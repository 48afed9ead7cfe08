package usecase

import (
	"smart-highway/internal/data/repository"
	"smart-highway/pkg/cache"
	"smart-highway/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Place     PlaceService
	Transport TransportService
	Booking   BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, searchCache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo.User, log),
		Place:     NewPlaceService(repo, config, searchCache, log),
		Transport: NewTransportService(repo, log),
		Booking:   NewBookingService(repo, log),
	}
}
