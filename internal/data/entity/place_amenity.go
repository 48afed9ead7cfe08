package entity

import "github.com/google/uuid"

// PlaceAmenity is the explicit many-to-many join between places and
// amenities. Neither side owns the other; deleting an amenity only
// detaches its join rows.
type PlaceAmenity struct {
	BaseSimple
	PlaceID   uuid.UUID `db:"place_id"`
	AmenityID uuid.UUID `db:"amenity_id"`
}
