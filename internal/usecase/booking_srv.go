package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"
	"smart-highway/internal/dto/response"
	"smart-highway/internal/fare"
	"smart-highway/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Rest-place bookings
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)

	// Transport bookings
	CreateTransportBooking(ctx context.Context, userID string, req *request.CreateTransportBookingRequest) (*response.TransportBookingResponse, error)
	GetUserTransportBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error)
	CancelTransportBooking(ctx context.Context, userID, bookingID string) (*response.TransportBookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid place ID format %s", req.PlaceID)
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date format")
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date format")
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("validation failed: check-out must be after check-in")
	}

	place, err := s.repo.Place.FindByID(ctx, placeID)
	if err != nil {
		s.log.Error("Failed to find place for booking", zap.Error(err), zap.String("place_id", req.PlaceID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if place == nil {
		return nil, fmt.Errorf("place not found")
	}
	if !place.IsAvailable {
		return nil, fmt.Errorf("place is not available for booking")
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userUUID,
		PlaceID:    placeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     entity.BookingStatusPending,
		TotalPrice: req.TotalPrice,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("place_id", req.PlaceID),
		)
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("place_id", req.PlaceID),
	)

	resp := response.BookingToResponse(booking, place.Name)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}

	if req.Page < 1 {
		req.Page = 1
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get bookings")
	}

	bookingResponses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		placeName := ""
		place, err := s.repo.Place.FindByID(ctx, booking.PlaceID)
		if err != nil {
			s.log.Error("Failed to resolve booking place", zap.Error(err),
				zap.String("place_id", booking.PlaceID.String()))
			return nil, fmt.Errorf("failed to get bookings")
		}
		if place != nil {
			placeName = place.Name
		}
		bookingResponses = append(bookingResponses, response.BookingToResponse(booking, placeName))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.Limit(), total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking for cancel", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to cancel booking")
	}
	// A booking owned by someone else is indistinguishable from a missing one
	if booking == nil || booking.UserID != userUUID {
		return nil, fmt.Errorf("booking not found")
	}

	cancelled, err := s.repo.Booking.CancelIfCancellable(ctx, id)
	if err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to cancel booking")
	}
	if !cancelled {
		return nil, fmt.Errorf("booking cannot be cancelled from status %s", string(booking.Status))
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)

	booking.Status = entity.BookingStatusCancelled
	resp := response.BookingToResponse(booking, "")
	return &resp, nil
}

func (s *bookingService) CreateTransportBooking(ctx context.Context, userID string, req *request.CreateTransportBookingRequest) (*response.TransportBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create transport booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}
	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s", req.ScheduleID)
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date format")
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		s.log.Error("Failed to find schedule", zap.Error(err), zap.String("schedule_id", req.ScheduleID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule not found")
	}
	if !schedule.IsActive {
		return nil, fmt.Errorf("schedule is not available for booking")
	}

	route, err := s.repo.Route.FindByID(ctx, schedule.RouteID)
	if err != nil {
		s.log.Error("Failed to find route", zap.Error(err), zap.String("route_id", schedule.RouteID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}
	if route == nil || !route.IsActive {
		return nil, fmt.Errorf("route is not available for booking")
	}

	now := time.Now()
	booking := &entity.TransportBooking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userUUID,
		ScheduleID:    scheduleID,
		BookingDate:   bookingDate,
		NumPassengers: req.NumPassengers,
		TotalFare:     fare.TotalFare(route.Fare, req.NumPassengers),
		Status:        entity.BookingStatusPending,
	}

	// CreditsUsed is computed inside the debit transaction
	if err := s.repo.TransportBooking.CreateWithDebit(ctx, booking); err != nil {
		s.log.Error("Failed to create transport booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("schedule_id", req.ScheduleID),
		)
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Transport booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("total_fare", booking.TotalFare),
		zap.Float64("credits_used", booking.CreditsUsed),
	)

	resp := response.TransportBookingToResponse(booking, route.Name)
	return &resp, nil
}

func (s *bookingService) GetUserTransportBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}

	if req.Page < 1 {
		req.Page = 1
	}

	bookings, err := s.repo.TransportBooking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get transport bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.TransportBooking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count transport bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get bookings")
	}

	bookingResponses := make([]response.TransportBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		routeName := ""
		schedule, err := s.repo.Schedule.FindByID(ctx, booking.ScheduleID)
		if err != nil {
			s.log.Error("Failed to resolve booking schedule", zap.Error(err),
				zap.String("schedule_id", booking.ScheduleID.String()))
			return nil, fmt.Errorf("failed to get bookings")
		}
		if schedule != nil {
			route, err := s.repo.Route.FindByID(ctx, schedule.RouteID)
			if err != nil {
				s.log.Error("Failed to resolve booking route", zap.Error(err),
					zap.String("route_id", schedule.RouteID.String()))
				return nil, fmt.Errorf("failed to get bookings")
			}
			if route != nil {
				routeName = route.Name
			}
		}
		bookingResponses = append(bookingResponses, response.TransportBookingToResponse(booking, routeName))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.Limit(), total), nil
}

func (s *bookingService) CancelTransportBooking(ctx context.Context, userID, bookingID string) (*response.TransportBookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.TransportBooking.CancelWithRefund(ctx, id, userUUID)
	if err != nil {
		// Invalid transitions surface verbatim; everything else is masked
		if strings.Contains(err.Error(), "cannot be cancelled") {
			return nil, err
		}
		s.log.Error("Failed to cancel transport booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to cancel booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	s.log.Info("Transport booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
		zap.Float64("credits_refunded", booking.CreditsUsed),
	)

	resp := response.TransportBookingToResponse(booking, "")
	return &resp, nil
}
