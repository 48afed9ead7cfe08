package entity

type Amenity struct {
	BaseSimple
	Name string `db:"name"`
	Icon string `db:"icon"` // FontAwesome icon name
}
