package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   GeoQuery
		wantErr bool
	}{
		{"valid", GeoQuery{Lat: 40.7, Lon: -74.0, RadiusKM: 10}, false},
		{"zero radius", GeoQuery{Lat: 40.7, Lon: -74.0, RadiusKM: 0}, true},
		{"negative radius", GeoQuery{Lat: 40.7, Lon: -74.0, RadiusKM: -5}, true},
		{"near north pole", GeoQuery{Lat: 89.95, Lon: 0, RadiusKM: 10}, true},
		{"near south pole", GeoQuery{Lat: -89.95, Lon: 0, RadiusKM: 10}, true},
		{"at guard boundary", GeoQuery{Lat: 89.9, Lon: 0, RadiusKM: 10}, false},
		{"longitude out of range", GeoQuery{Lat: 0, Lon: 181, RadiusKM: 10}, true},
		{"longitude negative out of range", GeoQuery{Lat: 0, Lon: -180.5, RadiusKM: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGeoQueryBounds(t *testing.T) {
	q := GeoQuery{Lat: 40.0, Lon: -74.0, RadiusKM: 111.0}
	b := q.Bounds()

	// 111 km is one degree of latitude
	assert.InDelta(t, 39.0, b.LatMin, 1e-9)
	assert.InDelta(t, 41.0, b.LatMax, 1e-9)

	// Longitude delta widens by 1/cos(lat)
	assert.Less(t, b.LonMin, -75.0)
	assert.Greater(t, b.LonMax, -73.0)

	// The box is symmetric around the query point
	assert.InDelta(t, q.Lat, (b.LatMin+b.LatMax)/2, 1e-9)
	assert.InDelta(t, q.Lon, (b.LonMin+b.LonMax)/2, 1e-9)
}

func TestBoundingBoxContains(t *testing.T) {
	q := GeoQuery{Lat: 40.0, Lon: -74.0, RadiusKM: 10}
	b := q.Bounds()

	assert.True(t, b.Contains(40.0, -74.0))
	assert.True(t, b.Contains(40.05, -74.05))
	assert.False(t, b.Contains(41.0, -74.0))
	assert.False(t, b.Contains(40.0, -76.0))
}

func TestDistanceProxyOrdering(t *testing.T) {
	q := GeoQuery{Lat: 40.0, Lon: -74.0, RadiusKM: 50}

	near := q.DistanceProxy(40.01, -74.01)
	mid := q.DistanceProxy(40.1, -74.1)
	far := q.DistanceProxy(40.3, -74.3)

	require.Less(t, near, mid)
	require.Less(t, mid, far)

	assert.Zero(t, q.DistanceProxy(40.0, -74.0))
}
