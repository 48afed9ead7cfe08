package search

import (
	"fmt"
	"math"
)

const (
	// one degree of latitude spans roughly 111 km
	kmPerDegreeLat = 111.0

	// MaxQueryLatitude guards the cos(lat) denominator; the planar
	// approximation degenerates near the poles.
	MaxQueryLatitude = 89.9
)

// GeoQuery is a radius search around a point. Radius is in kilometers.
type GeoQuery struct {
	Lat      float64
	Lon      float64
	RadiusKM float64
}

// BoundingBox is the rectangular prefilter derived from a GeoQuery.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lon >= b.LonMin && lon <= b.LonMax
}

func (q GeoQuery) Validate() error {
	if q.RadiusKM <= 0 {
		return fmt.Errorf("invalid radius: must be greater than zero")
	}
	if math.Abs(q.Lat) > MaxQueryLatitude {
		return fmt.Errorf("invalid latitude: must be within ±%.1f degrees", MaxQueryLatitude)
	}
	if q.Lon < -180 || q.Lon > 180 {
		return fmt.Errorf("invalid longitude: must be within ±180 degrees")
	}
	return nil
}

// Bounds converts the radius to degree deltas: ~111 km per degree of
// latitude, longitude shrunk by cos(lat). A planar approximation, only
// valid for small radii away from the poles (Validate enforces that).
func (q GeoQuery) Bounds() BoundingBox {
	latDelta := q.RadiusKM / kmPerDegreeLat
	lonDelta := q.RadiusKM / (kmPerDegreeLat * math.Cos(q.Lat*math.Pi/180))

	return BoundingBox{
		LatMin: q.Lat - latDelta,
		LatMax: q.Lat + latDelta,
		LonMin: q.Lon - lonDelta,
		LonMax: q.Lon + lonDelta,
	}
}

// DistanceProxy is the squared planar degree distance to the query point.
// Monotonic in true distance at bounding-box scale, so it is used for
// ranking only and never converted to kilometers.
func (q GeoQuery) DistanceProxy(lat, lon float64) float64 {
	dLat := lat - q.Lat
	dLon := lon - q.Lon
	return dLat*dLat + dLon*dLon
}
