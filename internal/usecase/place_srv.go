package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"
	"smart-highway/internal/dto/response"
	"smart-highway/internal/search"
	"smart-highway/pkg/cache"
	"smart-highway/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlaceService interface {
	// Public endpoints
	SearchPlaces(ctx context.Context, req *request.SearchPlacesRequest) (*response.PaginatedResponse[response.PlaceResponse], error)
	GetNearbyPlaces(ctx context.Context, req *request.NearbyPlacesRequest) (*response.PaginatedResponse[response.PlaceResponse], error)
	GetPlaceByID(ctx context.Context, placeID string) (*response.PlaceResponse, error)
	ListPlaceTypes(ctx context.Context) []response.PlaceTypeOption
	ListAmenities(ctx context.Context, nameSearch string) ([]response.AmenityResponse, error)

	// Admin endpoints
	CreatePlace(ctx context.Context, req *request.PlaceRequest) (*response.PlaceResponse, error)
	UpdatePlace(ctx context.Context, placeID string, req *request.PlaceUpdateRequest) (*response.PlaceResponse, error)
	DeletePlace(ctx context.Context, placeID string) error
	AttachAmenities(ctx context.Context, placeID string, req *request.AttachAmenitiesRequest) (*response.PlaceResponse, error)
	DetachAmenity(ctx context.Context, placeID, amenityID string) error
	CreateAmenity(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error)
	UpdateAmenity(ctx context.Context, amenityID string, req *request.AmenityUpdateRequest) (*response.AmenityResponse, error)
	DeleteAmenity(ctx context.Context, amenityID string) error
}

type placeService struct {
	repo   *repository.Repository
	config *utils.Config
	cache  *cache.Cache
	log    *zap.Logger
}

func NewPlaceService(repo *repository.Repository, config *utils.Config, searchCache *cache.Cache, log *zap.Logger) PlaceService {
	return &placeService{
		repo:   repo,
		config: config,
		cache:  searchCache,
		log:    log.With(zap.String("service", "place")),
	}
}

func (s *placeService) SearchPlaces(ctx context.Context, req *request.SearchPlacesRequest) (*response.PaginatedResponse[response.PlaceResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}

	// Identical queries within the TTL are served from cache
	cacheKey := searchCacheKey(req)
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached response.PaginatedResponse[response.PlaceResponse]
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	resp, err := s.runSearch(ctx, *filter, req.Page, req.Limit())
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, cacheKey, payload)
	}

	return resp, nil
}

func (s *placeService) GetNearbyPlaces(ctx context.Context, req *request.NearbyPlacesRequest) (*response.PaginatedResponse[response.PlaceResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Nearby validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	geo := &search.GeoQuery{
		Lat:      req.Latitude,
		Lon:      req.Longitude,
		RadiusKM: s.config.Search.DefaultRadiusKM,
	}
	if req.RadiusKM != nil {
		geo.RadiusKM = *req.RadiusKM
	}
	if err := geo.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	available := true
	filter := search.PlaceFilter{
		PlaceType: req.PlaceType,
		Available: &available,
		Geo:       geo,
	}

	if req.Page < 1 {
		req.Page = 1
	}

	return s.runSearch(ctx, filter, req.Page, req.Limit())
}

func (s *placeService) runSearch(ctx context.Context, filter search.PlaceFilter, page, perPage int) (*response.PaginatedResponse[response.PlaceResponse], error) {
	q := filter.Compose()

	offset := (page - 1) * perPage
	places, err := s.repo.Place.Search(ctx, q, perPage, offset)
	if err != nil {
		s.log.Error("Failed to search places", zap.Error(err))
		return nil, fmt.Errorf("failed to search places")
	}

	total, err := s.repo.Place.CountSearch(ctx, q)
	if err != nil {
		s.log.Error("Failed to count places", zap.Error(err))
		return nil, fmt.Errorf("failed to search places")
	}

	placeResponses := make([]response.PlaceResponse, 0, len(places))
	for _, place := range places {
		amenities, err := s.repo.Amenity.FindByPlaceID(ctx, place.ID)
		if err != nil {
			s.log.Error("Failed to load place amenities",
				zap.Error(err),
				zap.String("place_id", place.ID.String()),
			)
			return nil, fmt.Errorf("failed to search places")
		}
		placeResponses = append(placeResponses, response.PlaceToResponse(place, amenities))
	}

	s.log.Info("Places searched",
		zap.Int("count", len(places)),
		zap.Int64("total", total),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(placeResponses, page, perPage, total), nil
}

// buildFilter maps the wire request onto the search predicate: tier
// symbols become ordinals and geo fields become a validated GeoQuery.
func (s *placeService) buildFilter(req *request.SearchPlacesRequest) (*search.PlaceFilter, error) {
	filter := search.PlaceFilter{
		Search:    req.Search,
		PlaceType: req.PlaceType,
		City:      req.City,
		State:     req.State,
		Available: req.Available,
	}

	if req.MinPrice != "" {
		filter.MinTier = entity.PriceTier(req.MinPrice).Ordinal()
	}
	if req.MaxPrice != "" {
		filter.MaxTier = entity.PriceTier(req.MaxPrice).Ordinal()
	}
	if filter.MinTier > 0 && filter.MaxTier > 0 && filter.MinTier > filter.MaxTier {
		return nil, fmt.Errorf("validation failed: min_price exceeds max_price")
	}

	for _, idStr := range req.AmenityIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amenity ID format %s", idStr)
		}
		filter.AmenityIDs = append(filter.AmenityIDs, id)
	}

	// Latitude and longitude only act as a pair
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("validation failed: latitude and longitude must be provided together")
	}
	if req.Latitude != nil {
		geo := &search.GeoQuery{
			Lat:      *req.Latitude,
			Lon:      *req.Longitude,
			RadiusKM: s.config.Search.DefaultRadiusKM,
		}
		if req.RadiusKM != nil {
			geo.RadiusKM = *req.RadiusKM
		}
		if err := geo.Validate(); err != nil {
			return nil, fmt.Errorf("validation failed: %s", err.Error())
		}
		filter.Geo = geo
	} else if req.RadiusKM != nil {
		return nil, fmt.Errorf("validation failed: radius_km requires latitude and longitude")
	}

	if req.OrderBy == "price" {
		filter.OrderBy = search.OrderByPrice
	}

	return &filter, nil
}

func searchCacheKey(req *request.SearchPlacesRequest) string {
	b, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return "places:search:" + string(b)
}

func (s *placeService) GetPlaceByID(ctx context.Context, placeID string) (*response.PlaceResponse, error) {
	id, err := uuid.Parse(placeID)
	if err != nil {
		return nil, fmt.Errorf("invalid place ID format %s", placeID)
	}

	place, err := s.repo.Place.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find place", zap.Error(err), zap.String("place_id", placeID))
		return nil, fmt.Errorf("failed to get place")
	}
	if place == nil {
		return nil, fmt.Errorf("place not found")
	}

	amenities, err := s.repo.Amenity.FindByPlaceID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load place amenities", zap.Error(err), zap.String("place_id", placeID))
		return nil, fmt.Errorf("failed to get place")
	}

	resp := response.PlaceToResponse(place, amenities)
	return &resp, nil
}

func (s *placeService) ListPlaceTypes(ctx context.Context) []response.PlaceTypeOption {
	types := entity.PlaceTypes()
	options := make([]response.PlaceTypeOption, 0, len(types))
	for _, t := range []entity.PlaceType{entity.PlaceTypeHotel, entity.PlaceTypeMotel, entity.PlaceTypeRestStop} {
		options = append(options, response.PlaceTypeOption{
			Value: string(t),
			Label: types[t],
		})
	}
	return options
}

func (s *placeService) ListAmenities(ctx context.Context, nameSearch string) ([]response.AmenityResponse, error) {
	amenities, err := s.repo.Amenity.FindAll(ctx, nameSearch)
	if err != nil {
		s.log.Error("Failed to list amenities", zap.Error(err))
		return nil, fmt.Errorf("failed to list amenities")
	}

	return response.AmenitiesToResponse(amenities), nil
}

func (s *placeService) CreatePlace(ctx context.Context, req *request.PlaceRequest) (*response.PlaceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create place validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	place := &entity.Place{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		PlaceType:     entity.PlaceType(req.PlaceType),
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PriceRange:    entity.PriceTier(req.PriceRange),
		ContactNumber: req.ContactNumber,
		IsAvailable:   true,
	}

	if err := s.repo.Place.Create(ctx, place); err != nil {
		s.log.Error("Failed to create place", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create place")
	}

	for _, idStr := range req.AmenityIDs {
		amenityID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amenity ID format %s", idStr)
		}
		if err := s.attachAmenity(ctx, place.ID, amenityID); err != nil {
			return nil, err
		}
	}

	s.log.Info("Place created",
		zap.String("place_id", place.ID.String()),
		zap.String("name", place.Name),
	)

	return s.GetPlaceByID(ctx, place.ID.String())
}

func (s *placeService) UpdatePlace(ctx context.Context, placeID string, req *request.PlaceUpdateRequest) (*response.PlaceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update place validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(placeID)
	if err != nil {
		return nil, fmt.Errorf("invalid place ID format %s", placeID)
	}

	place, err := s.repo.Place.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find place for update", zap.Error(err), zap.String("place_id", placeID))
		return nil, fmt.Errorf("failed to update place")
	}
	if place == nil {
		return nil, fmt.Errorf("place not found")
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.PlaceType != nil {
		place.PlaceType = entity.PlaceType(*req.PlaceType)
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Latitude != nil {
		place.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		place.Longitude = *req.Longitude
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.City != nil {
		place.City = *req.City
	}
	if req.State != nil {
		place.State = *req.State
	}
	if req.Country != nil {
		place.Country = *req.Country
	}
	if req.PriceRange != nil {
		place.PriceRange = entity.PriceTier(*req.PriceRange)
	}
	if req.ContactNumber != nil {
		place.ContactNumber = *req.ContactNumber
	}
	if req.IsAvailable != nil {
		place.IsAvailable = *req.IsAvailable
	}
	place.UpdatedAt = time.Now()

	if err := s.repo.Place.Update(ctx, place); err != nil {
		s.log.Error("Failed to update place", zap.Error(err), zap.String("place_id", placeID))
		return nil, fmt.Errorf("failed to update place")
	}

	s.log.Info("Place updated", zap.String("place_id", placeID))

	return s.GetPlaceByID(ctx, placeID)
}

func (s *placeService) DeletePlace(ctx context.Context, placeID string) error {
	id, err := uuid.Parse(placeID)
	if err != nil {
		return fmt.Errorf("invalid place ID format %s", placeID)
	}

	place, err := s.repo.Place.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find place for delete", zap.Error(err), zap.String("place_id", placeID))
		return fmt.Errorf("failed to delete place")
	}
	if place == nil {
		return fmt.Errorf("place not found")
	}

	if err := s.repo.PlaceAmenity.DetachAllForPlace(ctx, id); err != nil {
		s.log.Error("Failed to detach amenities", zap.Error(err), zap.String("place_id", placeID))
		return fmt.Errorf("failed to delete place")
	}

	if err := s.repo.Place.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete place", zap.Error(err), zap.String("place_id", placeID))
		return fmt.Errorf("failed to delete place")
	}

	s.log.Info("Place deleted", zap.String("place_id", placeID))
	return nil
}

func (s *placeService) AttachAmenities(ctx context.Context, placeID string, req *request.AttachAmenitiesRequest) (*response.PlaceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Attach amenities validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(placeID)
	if err != nil {
		return nil, fmt.Errorf("invalid place ID format %s", placeID)
	}

	place, err := s.repo.Place.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find place", zap.Error(err), zap.String("place_id", placeID))
		return nil, fmt.Errorf("failed to attach amenities")
	}
	if place == nil {
		return nil, fmt.Errorf("place not found")
	}

	for _, idStr := range req.AmenityIDs {
		amenityID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amenity ID format %s", idStr)
		}
		if err := s.attachAmenity(ctx, id, amenityID); err != nil {
			return nil, err
		}
	}

	return s.GetPlaceByID(ctx, placeID)
}

func (s *placeService) attachAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	amenity, err := s.repo.Amenity.FindByID(ctx, amenityID)
	if err != nil {
		s.log.Error("Failed to find amenity", zap.Error(err), zap.String("amenity_id", amenityID.String()))
		return fmt.Errorf("failed to attach amenity")
	}
	if amenity == nil {
		return fmt.Errorf("amenity %s not found", amenityID.String())
	}

	if err := s.repo.PlaceAmenity.Attach(ctx, placeID, amenityID); err != nil {
		s.log.Error("Failed to attach amenity",
			zap.Error(err),
			zap.String("place_id", placeID.String()),
			zap.String("amenity_id", amenityID.String()),
		)
		return fmt.Errorf("failed to attach amenity")
	}

	return nil
}

func (s *placeService) DetachAmenity(ctx context.Context, placeID, amenityID string) error {
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return fmt.Errorf("invalid place ID format %s", placeID)
	}
	aid, err := uuid.Parse(amenityID)
	if err != nil {
		return fmt.Errorf("invalid amenity ID format %s", amenityID)
	}

	if err := s.repo.PlaceAmenity.Detach(ctx, pid, aid); err != nil {
		s.log.Error("Failed to detach amenity",
			zap.Error(err),
			zap.String("place_id", placeID),
			zap.String("amenity_id", amenityID),
		)
		return fmt.Errorf("failed to detach amenity")
	}

	return nil
}

func (s *placeService) CreateAmenity(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create amenity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	amenity := &entity.Amenity{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Icon: req.Icon,
	}

	if err := s.repo.Amenity.Create(ctx, amenity); err != nil {
		s.log.Error("Failed to create amenity", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create amenity")
	}

	s.log.Info("Amenity created",
		zap.String("amenity_id", amenity.ID.String()),
		zap.String("name", amenity.Name),
	)

	resp := response.AmenityToResponse(amenity)
	return &resp, nil
}

func (s *placeService) UpdateAmenity(ctx context.Context, amenityID string, req *request.AmenityUpdateRequest) (*response.AmenityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update amenity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(amenityID)
	if err != nil {
		return nil, fmt.Errorf("invalid amenity ID format %s", amenityID)
	}

	amenity, err := s.repo.Amenity.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find amenity for update", zap.Error(err), zap.String("amenity_id", amenityID))
		return nil, fmt.Errorf("failed to update amenity")
	}
	if amenity == nil {
		return nil, fmt.Errorf("amenity not found")
	}

	if req.Name != nil {
		amenity.Name = *req.Name
	}
	if req.Icon != nil {
		amenity.Icon = *req.Icon
	}

	if err := s.repo.Amenity.Update(ctx, amenity); err != nil {
		s.log.Error("Failed to update amenity", zap.Error(err), zap.String("amenity_id", amenityID))
		return nil, fmt.Errorf("failed to update amenity")
	}

	resp := response.AmenityToResponse(amenity)
	return &resp, nil
}

func (s *placeService) DeleteAmenity(ctx context.Context, amenityID string) error {
	id, err := uuid.Parse(amenityID)
	if err != nil {
		return fmt.Errorf("invalid amenity ID format %s", amenityID)
	}

	amenity, err := s.repo.Amenity.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find amenity for delete", zap.Error(err), zap.String("amenity_id", amenityID))
		return fmt.Errorf("failed to delete amenity")
	}
	if amenity == nil {
		return fmt.Errorf("amenity not found")
	}

	// Delete detaches join rows first; places keep existing
	if err := s.repo.Amenity.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete amenity", zap.Error(err), zap.String("amenity_id", amenityID))
		return fmt.Errorf("failed to delete amenity")
	}

	s.log.Info("Amenity deleted", zap.String("amenity_id", amenityID))
	return nil
}
