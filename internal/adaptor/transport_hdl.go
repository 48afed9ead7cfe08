package adaptor

import (
	"encoding/json"
	"net/http"

	"smart-highway/internal/dto/request"
	"smart-highway/internal/usecase"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TransportHandler struct {
	service usecase.TransportService
	log     *zap.Logger
}

func NewTransportHandler(service usecase.TransportService, log *zap.Logger) *TransportHandler {
	return &TransportHandler{
		service: service,
		log:     log.With(zap.String("handler", "transport")),
	}
}

// ListProviders handles GET /api/transport/providers (public)
func (h *TransportHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.ListProviders(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, h.log, err, "list providers")
		return
	}

	utils.ResponseSuccess(w, "success", providers)
}

// ListRoutes handles GET /api/transport/routes (public)
func (h *TransportHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListRoutesRequest{
		ProviderID:  query.Get("provider"),
		Source:      query.Get("source"),
		Destination: query.Get("destination"),
		Search:      query.Get("search"),
	}

	routes, err := h.service.ListRoutes(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list routes")
		return
	}

	utils.ResponseSuccess(w, "success", routes)
}

// ListSchedules handles GET /api/transport/schedules?route_id= (public)
func (h *TransportHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	routeID := r.URL.Query().Get("route_id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "route_id is required", nil)
		return
	}

	schedules, err := h.service.ListSchedules(r.Context(), routeID)
	if err != nil {
		handleServiceError(w, h.log, err, "list schedules")
		return
	}

	utils.ResponseSuccess(w, "success", schedules)
}

// CreateProvider handles POST /api/admin/transport/providers (admin)
func (h *TransportHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req request.ProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	provider, err := h.service.CreateProvider(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create provider")
		return
	}

	utils.ResponseCreated(w, "success", provider)
}

// UpdateProvider handles PUT /api/admin/transport/providers/{id} (admin)
func (h *TransportHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	var req request.ProviderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	provider, err := h.service.UpdateProvider(r.Context(), providerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update provider")
		return
	}

	utils.ResponseSuccess(w, "success", provider)
}

// DeleteProvider handles DELETE /api/admin/transport/providers/{id} (admin)
func (h *TransportHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	if err := h.service.DeleteProvider(r.Context(), providerID); err != nil {
		handleServiceError(w, h.log, err, "delete provider")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateRoute handles POST /api/admin/transport/routes (admin)
func (h *TransportHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	route, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create route")
		return
	}

	utils.ResponseCreated(w, "success", route)
}

// UpdateRoute handles PUT /api/admin/transport/routes/{id} (admin)
func (h *TransportHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")

	var req request.RouteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), routeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update route")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// DeleteRoute handles DELETE /api/admin/transport/routes/{id} (admin)
func (h *TransportHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoute(r.Context(), routeID); err != nil {
		handleServiceError(w, h.log, err, "delete route")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateSchedule handles POST /api/admin/transport/schedules (admin)
func (h *TransportHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	schedule, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create schedule")
		return
	}

	utils.ResponseCreated(w, "success", schedule)
}

// UpdateSchedule handles PUT /api/admin/transport/schedules/{id} (admin)
func (h *TransportHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")

	var req request.ScheduleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), scheduleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// DeleteSchedule handles DELETE /api/admin/transport/schedules/{id} (admin)
func (h *TransportHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")

	if err := h.service.DeleteSchedule(r.Context(), scheduleID); err != nil {
		handleServiceError(w, h.log, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
