package response

import (
	"time"

	"smart-highway/internal/data/entity"
)

type AmenityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type PlaceResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	PlaceType     entity.PlaceType  `json:"place_type"`
	Description   string            `json:"description,omitempty"`
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	State         string            `json:"state"`
	Country       string            `json:"country"`
	PriceRange    entity.PriceTier  `json:"price_range"`
	ContactNumber string            `json:"contact_number,omitempty"`
	IsAvailable   bool              `json:"is_available"`
	Amenities     []AmenityResponse `json:"amenities,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type PlaceTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Helper converters
func AmenityToResponse(amenity *entity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:   amenity.ID.String(),
		Name: amenity.Name,
		Icon: amenity.Icon,
	}
}

func AmenitiesToResponse(amenities []*entity.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, AmenityToResponse(a))
	}
	return out
}

func PlaceToResponse(place *entity.Place, amenities []*entity.Amenity) PlaceResponse {
	resp := PlaceResponse{
		ID:            place.ID.String(),
		Name:          place.Name,
		PlaceType:     place.PlaceType,
		Description:   place.Description,
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		Address:       place.Address,
		City:          place.City,
		State:         place.State,
		Country:       place.Country,
		PriceRange:    place.PriceRange,
		ContactNumber: place.ContactNumber,
		IsAvailable:   place.IsAvailable,
		CreatedAt:     place.CreatedAt,
	}

	if len(amenities) > 0 {
		resp.Amenities = AmenitiesToResponse(amenities)
	}

	return resp
}
