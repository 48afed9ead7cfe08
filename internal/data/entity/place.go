package entity

type PlaceType string

const (
	PlaceTypeHotel    PlaceType = "hotel"
	PlaceTypeMotel    PlaceType = "motel"
	PlaceTypeRestStop PlaceType = "rest_stop"
)

// PlaceTypes maps the closed place type enum to display names
func PlaceTypes() map[PlaceType]string {
	return map[PlaceType]string{
		PlaceTypeHotel:    "Hotel",
		PlaceTypeMotel:    "Motel",
		PlaceTypeRestStop: "Rest Stop",
	}
}

func (t PlaceType) IsValid() bool {
	switch t {
	case PlaceTypeHotel, PlaceTypeMotel, PlaceTypeRestStop:
		return true
	}
	return false
}

type PriceTier string

const (
	PriceTierLow  PriceTier = "$"
	PriceTierMid  PriceTier = "$$"
	PriceTierHigh PriceTier = "$$$"
)

// Ordinal returns the tier position 1..3, 0 for unknown literals.
// The wire vocabulary stays "$".."$$$"; range filters compare ordinals.
func (t PriceTier) Ordinal() int {
	switch t {
	case PriceTierLow:
		return 1
	case PriceTierMid:
		return 2
	case PriceTierHigh:
		return 3
	}
	return 0
}

func (t PriceTier) IsValid() bool {
	return t.Ordinal() != 0
}

type Place struct {
	Base
	Name          string    `db:"name"`
	PlaceType     PlaceType `db:"place_type"`
	Description   string    `db:"description"`
	Latitude      float64   `db:"latitude"`
	Longitude     float64   `db:"longitude"`
	Address       string    `db:"address"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	Country       string    `db:"country"`
	PriceRange    PriceTier `db:"price_range"`
	ContactNumber string    `db:"contact_number"`
	IsAvailable   bool      `db:"is_available"`
}
