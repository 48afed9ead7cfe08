package search

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNoFilters(t *testing.T) {
	q := PlaceFilter{}.Compose()

	assert.Empty(t, q.Where)
	assert.Empty(t, q.Args)
	assert.Equal(t, "p.created_at DESC", q.OrderBy)
	assert.Empty(t, q.OrderArgs)
}

func TestComposeFreeTextTerms(t *testing.T) {
	q := PlaceFilter{Search: "quiet pool"}.Compose()

	// Two terms OR-ed together, each probing every searched field
	assert.Equal(t, 1, strings.Count(q.Where, ") OR ("))
	assert.Contains(t, q.Where, "p.name ILIKE $1")
	assert.Contains(t, q.Where, "a.name ILIKE $1")
	assert.Contains(t, q.Where, "p.description ILIKE $2")

	require.Len(t, q.Args, 2)
	assert.Equal(t, "%quiet%", q.Args[0])
	assert.Equal(t, "%pool%", q.Args[1])
}

func TestComposeEscapesLikeMetacharacters(t *testing.T) {
	// "100%" must match places containing the literal string, not everything
	q := PlaceFilter{Search: "100%", City: "san_remo"}.Compose()

	require.Len(t, q.Args, 2)
	assert.Equal(t, `%100\%%`, q.Args[0])
	assert.Equal(t, `%san\_remo%`, q.Args[1])
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%pool%`, ContainsPattern("pool"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%a\\b%`, ContainsPattern(`a\b`))
}

func TestComposeTierBounds(t *testing.T) {
	q := PlaceFilter{MinTier: 1, MaxTier: 2}.Compose()

	assert.Contains(t, q.Where, "char_length(p.price_range) >= $1")
	assert.Contains(t, q.Where, "char_length(p.price_range) <= $2")
	assert.Equal(t, []any{1, 2}, q.Args)
}

func TestComposeCategoryFilters(t *testing.T) {
	available := true
	q := PlaceFilter{
		PlaceType: "hotel",
		City:      "Austin",
		Available: &available,
	}.Compose()

	assert.Contains(t, q.Where, "p.place_type = $1")
	assert.Contains(t, q.Where, "p.city ILIKE $2")
	assert.Contains(t, q.Where, "p.is_available = $3")
	assert.Equal(t, []any{"hotel", "%Austin%", true}, q.Args)
}

func TestComposeAmenityConjunction(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	q := PlaceFilter{AmenityIDs: ids}.Compose()

	// All listed amenities must be attached: distinct matches == len(ids)
	assert.Contains(t, q.Where, "COUNT(DISTINCT pa.amenity_id)")
	assert.Contains(t, q.Where, "pa.amenity_id = ANY($1)) = $2")
	require.Len(t, q.Args, 2)
	assert.Equal(t, ids, q.Args[0])
	assert.Equal(t, 3, q.Args[1])
}

func TestComposeGeoPrefilterAndOrdering(t *testing.T) {
	q := PlaceFilter{
		Geo: &GeoQuery{Lat: 40.0, Lon: -74.0, RadiusKM: 10},
	}.Compose()

	assert.Contains(t, q.Where, "p.latitude BETWEEN $1 AND $2")
	assert.Contains(t, q.Where, "p.longitude BETWEEN $3 AND $4")
	require.Len(t, q.Args, 4)

	// Ranked by the squared-degree proxy, nearest first
	assert.Contains(t, q.OrderBy, "(p.latitude - $5)")
	assert.Contains(t, q.OrderBy, "(p.longitude - $6)")
	assert.True(t, strings.HasSuffix(q.OrderBy, "ASC"))
	assert.Equal(t, []any{40.0, -74.0}, q.OrderArgs)
}

func TestComposeGeoOverridesPriceOrdering(t *testing.T) {
	q := PlaceFilter{
		Geo:     &GeoQuery{Lat: 1, Lon: 2, RadiusKM: 5},
		OrderBy: OrderByPrice,
	}.Compose()

	assert.NotContains(t, q.OrderBy, "char_length")
	assert.Contains(t, q.OrderBy, "p.latitude")
}

func TestComposePriceOrdering(t *testing.T) {
	q := PlaceFilter{OrderBy: OrderByPrice}.Compose()

	assert.Equal(t, "char_length(p.price_range) ASC, p.created_at DESC", q.OrderBy)
	assert.Empty(t, q.OrderArgs)
}

func TestComposeCombinedPlaceholderNumbering(t *testing.T) {
	available := false
	q := PlaceFilter{
		Search:    "spa",
		PlaceType: "motel",
		MinTier:   2,
		Available: &available,
		Geo:       &GeoQuery{Lat: 10, Lon: 20, RadiusKM: 5},
	}.Compose()

	// OrderArgs continue numbering after Args so COUNT can bind Args alone
	require.Len(t, q.Args, 8)
	assert.Contains(t, q.OrderBy, "$9")
	assert.Contains(t, q.OrderBy, "$10")
	assert.Equal(t, []any{10.0, 20.0}, q.OrderArgs)

	clauses := strings.Split(q.Where, " AND ")
	assert.GreaterOrEqual(t, len(clauses), 5)
}
