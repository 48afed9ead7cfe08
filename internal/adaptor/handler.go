package adaptor

import (
	"net/http"
	"strings"

	"smart-highway/internal/usecase"
	"smart-highway/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Place     *PlaceHandler
	Transport *TransportHandler
	Booking   *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Place:     NewPlaceHandler(service.Place, log),
		Transport: NewTransportHandler(service.Transport, log),
		Booking:   NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service error messages onto HTTP statuses.
// Availability conflicts and invalid state transitions get 409 so retrying
// clients can tell them apart from malformed input.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "account is deactivated"),
		strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "cannot be cancelled"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
