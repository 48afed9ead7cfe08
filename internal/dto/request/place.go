package request

type PlaceRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	PlaceType     string   `json:"place_type" validate:"required,oneof=hotel motel rest_stop"`
	Description   string   `json:"description,omitempty"`
	Latitude      float64  `json:"latitude" validate:"latitude"`
	Longitude     float64  `json:"longitude" validate:"longitude"`
	Address       string   `json:"address" validate:"required,max=300"`
	City          string   `json:"city" validate:"required,max=100"`
	State         string   `json:"state" validate:"required,max=100"`
	Country       string   `json:"country" validate:"required,max=100"`
	PriceRange    string   `json:"price_range" validate:"required,oneof=$ $$ $$$"`
	ContactNumber string   `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	AmenityIDs    []string `json:"amenity_ids,omitempty" validate:"dive,uuid4"`
}

type PlaceUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	PlaceType     *string  `json:"place_type,omitempty" validate:"omitempty,oneof=hotel motel rest_stop"`
	Description   *string  `json:"description,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	City          *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	State         *string  `json:"state,omitempty" validate:"omitempty,max=100"`
	Country       *string  `json:"country,omitempty" validate:"omitempty,max=100"`
	PriceRange    *string  `json:"price_range,omitempty" validate:"omitempty,oneof=$ $$ $$$"`
	ContactNumber *string  `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
}

type AttachAmenitiesRequest struct {
	AmenityIDs []string `json:"amenity_ids" validate:"required,min=1,dive,uuid4"`
}

// SearchPlacesRequest is populated from query parameters, never a body.
// Geo fields travel as strings so a malformed number is reported as a
// validation failure instead of being silently dropped.
type SearchPlacesRequest struct {
	Search     string   `json:"search" validate:"max=200"`
	PlaceType  string   `json:"place_type" validate:"omitempty,oneof=hotel motel rest_stop"`
	City       string   `json:"city" validate:"max=100"`
	State      string   `json:"state" validate:"max=100"`
	MinPrice   string   `json:"min_price" validate:"omitempty,oneof=$ $$ $$$"`
	MaxPrice   string   `json:"max_price" validate:"omitempty,oneof=$ $$ $$$"`
	AmenityIDs []string `json:"amenities" validate:"dive,uuid4"`
	Available  *bool    `json:"available,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	RadiusKM   *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	OrderBy    string   `json:"order_by" validate:"omitempty,oneof=created price"`
	PaginatedRequest
}

type NearbyPlacesRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKM  *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	PlaceType string   `json:"place_type" validate:"omitempty,oneof=hotel motel rest_stop"`
	PaginatedRequest
}
