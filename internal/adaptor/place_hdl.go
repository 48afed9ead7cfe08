package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"smart-highway/internal/dto/request"
	"smart-highway/internal/usecase"
	"smart-highway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlaceHandler struct {
	service usecase.PlaceService
	log     *zap.Logger
}

func NewPlaceHandler(service usecase.PlaceService, log *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		service: service,
		log:     log.With(zap.String("handler", "place")),
	}
}

// SearchPlaces handles GET /api/places (public)
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	places, err := h.service.SearchPlaces(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search places")
		return
	}

	utils.ResponseSuccess(w, "success", places)
}

// GetNearbyPlaces handles GET /api/places/nearby (public)
func (h *PlaceHandler) GetNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, latOK := utils.ParseFloat(query.Get("latitude"))
	lon, lonOK := utils.ParseFloat(query.Get("longitude"))
	if !latOK || !lonOK {
		utils.ResponseBadRequest(w, "latitude and longitude are required", nil)
		return
	}

	req := &request.NearbyPlacesRequest{
		Latitude:  lat,
		Longitude: lon,
		PlaceType: query.Get("place_type"),
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	if raw := query.Get("radius"); raw != "" {
		radius, ok := utils.ParseFloat(raw)
		if !ok {
			utils.ResponseBadRequest(w, "invalid radius", nil)
			return
		}
		req.RadiusKM = &radius
	}

	places, err := h.service.GetNearbyPlaces(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get nearby places")
		return
	}

	utils.ResponseSuccess(w, "success", places)
}

// GetPlaceTypes handles GET /api/places/types (public)
func (h *PlaceHandler) GetPlaceTypes(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListPlaceTypes(r.Context()))
}

// GetPlaceByID handles GET /api/places/{id} (public)
func (h *PlaceHandler) GetPlaceByID(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	place, err := h.service.GetPlaceByID(r.Context(), placeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get place")
		return
	}

	utils.ResponseSuccess(w, "success", place)
}

// ListAmenities handles GET /api/amenities (public)
func (h *PlaceHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.service.ListAmenities(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, h.log, err, "list amenities")
		return
	}

	utils.ResponseSuccess(w, "success", amenities)
}

// CreatePlace handles POST /api/admin/places (admin)
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	place, err := h.service.CreatePlace(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create place")
		return
	}

	utils.ResponseCreated(w, "success", place)
}

// UpdatePlace handles PUT /api/admin/places/{id} (admin)
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	var req request.PlaceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	place, err := h.service.UpdatePlace(r.Context(), placeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update place")
		return
	}

	utils.ResponseSuccess(w, "success", place)
}

// DeletePlace handles DELETE /api/admin/places/{id} (admin)
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	if err := h.service.DeletePlace(r.Context(), placeID); err != nil {
		handleServiceError(w, h.log, err, "delete place")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AttachAmenities handles POST /api/admin/places/{id}/amenities (admin)
func (h *PlaceHandler) AttachAmenities(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	var req request.AttachAmenitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	place, err := h.service.AttachAmenities(r.Context(), placeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "attach amenities")
		return
	}

	utils.ResponseSuccess(w, "success", place)
}

// DetachAmenity handles DELETE /api/admin/places/{id}/amenities/{amenityID} (admin)
func (h *PlaceHandler) DetachAmenity(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")
	amenityID := chi.URLParam(r, "amenityID")

	if err := h.service.DetachAmenity(r.Context(), placeID, amenityID); err != nil {
		handleServiceError(w, h.log, err, "detach amenity")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateAmenity handles POST /api/admin/amenities (admin)
func (h *PlaceHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req request.AmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	amenity, err := h.service.CreateAmenity(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create amenity")
		return
	}

	utils.ResponseCreated(w, "success", amenity)
}

// UpdateAmenity handles PUT /api/admin/amenities/{id} (admin)
func (h *PlaceHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := chi.URLParam(r, "id")

	var req request.AmenityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	amenity, err := h.service.UpdateAmenity(r.Context(), amenityID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update amenity")
		return
	}

	utils.ResponseSuccess(w, "success", amenity)
}

// DeleteAmenity handles DELETE /api/admin/amenities/{id} (admin)
func (h *PlaceHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := chi.URLParam(r, "id")

	if err := h.service.DeleteAmenity(r.Context(), amenityID); err != nil {
		handleServiceError(w, h.log, err, "delete amenity")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// parseSearchRequest maps the query string onto the search request. Geo
// parameters that are present but malformed are rejected here instead of
// being dropped.
func parseSearchRequest(r *http.Request) (*request.SearchPlacesRequest, error) {
	query := r.URL.Query()

	req := &request.SearchPlacesRequest{
		Search:    query.Get("search"),
		PlaceType: query.Get("place_type"),
		City:      query.Get("city"),
		State:     query.Get("state"),
		MinPrice:  query.Get("min_price"),
		MaxPrice:  query.Get("max_price"),
		Available: utils.ParseBoolPtr(query.Get("available")),
		OrderBy:   query.Get("order_by"),
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	if raw := query.Get("amenities"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.AmenityIDs = append(req.AmenityIDs, id)
			}
		}
	}

	for _, geo := range []struct {
		param  string
		target **float64
	}{
		{"latitude", &req.Latitude},
		{"longitude", &req.Longitude},
		{"radius", &req.RadiusKM},
	} {
		raw := query.Get(geo.param)
		if raw == "" {
			continue
		}
		val, ok := utils.ParseFloat(raw)
		if !ok {
			return nil, fmt.Errorf("invalid %s: %s", geo.param, raw)
		}
		*geo.target = &val
	}

	return req, nil
}
