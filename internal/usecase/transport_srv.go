package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"
	"smart-highway/internal/dto/response"
	"smart-highway/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransportService interface {
	// Public endpoints
	ListProviders(ctx context.Context, nameSearch string) ([]response.ProviderResponse, error)
	ListRoutes(ctx context.Context, req *request.ListRoutesRequest) ([]response.RouteResponse, error)
	ListSchedules(ctx context.Context, routeID string) ([]response.ScheduleResponse, error)

	// Admin endpoints
	CreateProvider(ctx context.Context, req *request.ProviderRequest) (*response.ProviderResponse, error)
	UpdateProvider(ctx context.Context, providerID string, req *request.ProviderUpdateRequest) (*response.ProviderResponse, error)
	DeleteProvider(ctx context.Context, providerID string) error
	CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error)
	UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
	CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req *request.ScheduleUpdateRequest) (*response.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type transportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTransportService(repo *repository.Repository, log *zap.Logger) TransportService {
	return &transportService{
		repo: repo,
		log:  log.With(zap.String("service", "transport")),
	}
}

func (s *transportService) ListProviders(ctx context.Context, nameSearch string) ([]response.ProviderResponse, error) {
	providers, err := s.repo.Provider.FindAll(ctx, nameSearch)
	if err != nil {
		s.log.Error("Failed to list providers", zap.Error(err))
		return nil, fmt.Errorf("failed to list providers")
	}

	out := make([]response.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, response.ProviderToResponse(p))
	}
	return out, nil
}

func (s *transportService) ListRoutes(ctx context.Context, req *request.ListRoutesRequest) ([]response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List routes validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.RouteFilter{
		Source:      req.Source,
		Destination: req.Destination,
		Search:      req.Search,
	}
	if req.ProviderID != "" {
		providerID, err := uuid.Parse(req.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("invalid provider ID format %s", req.ProviderID)
		}
		filter.ProviderID = &providerID
	}

	routes, err := s.repo.Route.FindActive(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("failed to list routes")
	}

	// Provider names resolved once per provider, not per route
	providerNames := make(map[uuid.UUID]string)
	out := make([]response.RouteResponse, 0, len(routes))
	for _, route := range routes {
		name, ok := providerNames[route.ProviderID]
		if !ok {
			provider, err := s.repo.Provider.FindByID(ctx, route.ProviderID)
			if err != nil {
				s.log.Error("Failed to resolve provider", zap.Error(err),
					zap.String("provider_id", route.ProviderID.String()))
				return nil, fmt.Errorf("failed to list routes")
			}
			if provider != nil {
				name = provider.Name
			}
			providerNames[route.ProviderID] = name
		}
		out = append(out, response.RouteToResponse(route, name))
	}

	return out, nil
}

func (s *transportService) ListSchedules(ctx context.Context, routeID string) ([]response.ScheduleResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s", routeID)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find route", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("failed to list schedules")
	}
	if route == nil {
		return nil, fmt.Errorf("route not found")
	}

	schedules, err := s.repo.Schedule.FindActiveByRouteID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list schedules", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("failed to list schedules")
	}

	out := make([]response.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, response.ScheduleToResponse(schedule))
	}
	return out, nil
}

func (s *transportService) CreateProvider(ctx context.Context, req *request.ProviderRequest) (*response.ProviderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create provider validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	provider := &entity.TransportProvider{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		ProviderType:  entity.ProviderType(req.ProviderType),
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		Website:       req.Website,
	}

	if err := s.repo.Provider.Create(ctx, provider); err != nil {
		s.log.Error("Failed to create provider", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create provider")
	}

	s.log.Info("Provider created",
		zap.String("provider_id", provider.ID.String()),
		zap.String("name", provider.Name),
	)

	resp := response.ProviderToResponse(provider)
	return &resp, nil
}

func (s *transportService) UpdateProvider(ctx context.Context, providerID string, req *request.ProviderUpdateRequest) (*response.ProviderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update provider validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s", providerID)
	}

	provider, err := s.repo.Provider.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find provider for update", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("failed to update provider")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider not found")
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.ProviderType != nil {
		provider.ProviderType = entity.ProviderType(*req.ProviderType)
	}
	if req.Description != nil {
		provider.Description = *req.Description
	}
	if req.ContactNumber != nil {
		provider.ContactNumber = *req.ContactNumber
	}
	if req.Website != nil {
		provider.Website = req.Website
	}
	provider.UpdatedAt = time.Now()

	if err := s.repo.Provider.Update(ctx, provider); err != nil {
		s.log.Error("Failed to update provider", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("failed to update provider")
	}

	resp := response.ProviderToResponse(provider)
	return &resp, nil
}

func (s *transportService) DeleteProvider(ctx context.Context, providerID string) error {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return fmt.Errorf("invalid provider ID format %s", providerID)
	}

	provider, err := s.repo.Provider.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find provider for delete", zap.Error(err), zap.String("provider_id", providerID))
		return fmt.Errorf("failed to delete provider")
	}
	if provider == nil {
		return fmt.Errorf("provider not found")
	}

	if err := s.repo.Provider.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete provider", zap.Error(err), zap.String("provider_id", providerID))
		return fmt.Errorf("failed to delete provider")
	}

	s.log.Info("Provider deleted", zap.String("provider_id", providerID))
	return nil
}

func (s *transportService) CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s", req.ProviderID)
	}

	provider, err := s.repo.Provider.FindByID(ctx, providerID)
	if err != nil {
		s.log.Error("Failed to find provider", zap.Error(err), zap.String("provider_id", req.ProviderID))
		return nil, fmt.Errorf("failed to create route")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider not found")
	}

	now := time.Now()
	route := &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProviderID:      providerID,
		Name:            req.Name,
		Source:          req.Source,
		Destination:     req.Destination,
		DistanceKM:      req.DistanceKM,
		DurationMinutes: req.DurationMinutes,
		Fare:            req.Fare,
		IsActive:        true,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.log.Error("Failed to create route", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create route")
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("name", route.Name),
	)

	resp := response.RouteToResponse(route, provider.Name)
	return &resp, nil
}

func (s *transportService) UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s", routeID)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find route for update", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("failed to update route")
	}
	if route == nil {
		return nil, fmt.Errorf("route not found")
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.Source != nil {
		route.Source = *req.Source
	}
	if req.Destination != nil {
		route.Destination = *req.Destination
	}
	if req.DistanceKM != nil {
		route.DistanceKM = *req.DistanceKM
	}
	if req.DurationMinutes != nil {
		route.DurationMinutes = *req.DurationMinutes
	}
	if req.Fare != nil {
		route.Fare = *req.Fare
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}
	route.UpdatedAt = time.Now()

	if err := s.repo.Route.Update(ctx, route); err != nil {
		s.log.Error("Failed to update route", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("failed to update route")
	}

	resp := response.RouteToResponse(route, "")
	return &resp, nil
}

func (s *transportService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return fmt.Errorf("invalid route ID format %s", routeID)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find route for delete", zap.Error(err), zap.String("route_id", routeID))
		return fmt.Errorf("failed to delete route")
	}
	if route == nil {
		return fmt.Errorf("route not found")
	}

	if err := s.repo.Route.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete route", zap.Error(err), zap.String("route_id", routeID))
		return fmt.Errorf("failed to delete route")
	}

	s.log.Info("Route deleted", zap.String("route_id", routeID))
	return nil
}

func (s *transportService) CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s", req.RouteID)
	}

	route, err := s.repo.Route.FindByID(ctx, routeID)
	if err != nil {
		s.log.Error("Failed to find route", zap.Error(err), zap.String("route_id", req.RouteID))
		return nil, fmt.Errorf("failed to create schedule")
	}
	if route == nil {
		return nil, fmt.Errorf("route not found")
	}

	now := time.Now()
	schedule := &entity.Schedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RouteID: routeID,
		// Times of day; an overnight leg may arrive "before" it departs
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DaysOfWeek:    req.DaysOfWeek,
		IsActive:      true,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.log.Error("Failed to create schedule", zap.Error(err), zap.String("route_id", req.RouteID))
		return nil, fmt.Errorf("failed to create schedule")
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("route_id", req.RouteID),
	)

	resp := response.ScheduleToResponse(schedule)
	return &resp, nil
}

func (s *transportService) UpdateSchedule(ctx context.Context, scheduleID string, req *request.ScheduleUpdateRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s", scheduleID)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find schedule for update", zap.Error(err), zap.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update schedule")
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule not found")
	}

	if req.DepartureTime != nil {
		schedule.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		schedule.ArrivalTime = *req.ArrivalTime
	}
	if req.DaysOfWeek != nil {
		schedule.DaysOfWeek = *req.DaysOfWeek
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	schedule.UpdatedAt = time.Now()

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.log.Error("Failed to update schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update schedule")
	}

	resp := response.ScheduleToResponse(schedule)
	return &resp, nil
}

func (s *transportService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s", scheduleID)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find schedule for delete", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to delete schedule")
	}
	if schedule == nil {
		return fmt.Errorf("schedule not found")
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to delete schedule")
	}

	s.log.Info("Schedule deleted", zap.String("schedule_id", scheduleID))
	return nil
}
