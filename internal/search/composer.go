package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type OrderBy string

const (
	OrderByCreated OrderBy = "created_at"
	OrderByPrice   OrderBy = "price"
)

// PlaceFilter carries the independently-optional search criteria. Zero
// values mean "no filter"; tier bounds use ordinals 1..3 (0 = open bound).
type PlaceFilter struct {
	Search     string
	PlaceType  string
	City       string
	State      string
	MinTier    int
	MaxTier    int
	Available  *bool
	AmenityIDs []uuid.UUID
	Geo        *GeoQuery
	OrderBy    OrderBy
}

// ComposedQuery is the predicate handed to the place repository. Where is
// a conjunction of clauses over the alias "p"; empty Where means match all.
// OrderArgs are numbered after Args so a COUNT query can bind Args alone
// while the ranked query binds both.
type ComposedQuery struct {
	Where     string
	Args      []any
	OrderBy   string
	OrderArgs []any
}

// Compose builds the combined predicate:
//
//	(any free-text term hits any searched field)  -- OR semantics
//	AND tier ordinal within [min,max]
//	AND category filters (type exact, city/state substring, availability)
//	AND every required amenity attached            -- AND semantics
//	AND geo bounding rectangle when present
//
// Amenity matching goes through correlated subqueries instead of a join,
// so result rows never multiply and each place appears at most once.
func (f PlaceFilter) Compose() ComposedQuery {
	var clauses []string
	var args []any

	// next registers an argument and returns its positional placeholder
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Geo != nil {
		b := f.Geo.Bounds()
		clauses = append(clauses,
			fmt.Sprintf("p.latitude BETWEEN %s AND %s", next(b.LatMin), next(b.LatMax)),
			fmt.Sprintf("p.longitude BETWEEN %s AND %s", next(b.LonMin), next(b.LonMax)),
		)
	}

	// Free-text: terms widen the result (OR across terms, OR across fields)
	if terms := strings.Fields(f.Search); len(terms) > 0 {
		termClauses := make([]string, 0, len(terms))
		for _, term := range terms {
			ph := next(ContainsPattern(term))
			termClauses = append(termClauses, fmt.Sprintf(
				"(p.name ILIKE %[1]s OR p.description ILIKE %[1]s OR p.address ILIKE %[1]s"+
					" OR p.city ILIKE %[1]s OR p.state ILIKE %[1]s"+
					" OR EXISTS (SELECT 1 FROM place_amenities pa"+
					" JOIN amenities a ON a.id = pa.amenity_id"+
					" WHERE pa.place_id = p.id AND a.name ILIKE %[1]s))", ph))
		}
		clauses = append(clauses, "("+strings.Join(termClauses, " OR ")+")")
	}

	// Tier ordinal equals the symbol length ("$"=1 .. "$$$"=3)
	if f.MinTier > 0 {
		clauses = append(clauses, fmt.Sprintf("char_length(p.price_range) >= %s", next(f.MinTier)))
	}
	if f.MaxTier > 0 {
		clauses = append(clauses, fmt.Sprintf("char_length(p.price_range) <= %s", next(f.MaxTier)))
	}

	if f.PlaceType != "" {
		clauses = append(clauses, fmt.Sprintf("p.place_type = %s", next(f.PlaceType)))
	}
	if f.City != "" {
		clauses = append(clauses, fmt.Sprintf("p.city ILIKE %s", next(ContainsPattern(f.City))))
	}
	if f.State != "" {
		clauses = append(clauses, fmt.Sprintf("p.state ILIKE %s", next(ContainsPattern(f.State))))
	}
	if f.Available != nil {
		clauses = append(clauses, fmt.Sprintf("p.is_available = %s", next(*f.Available)))
	}

	// Conjunction filter: all listed amenities must be attached
	if len(f.AmenityIDs) > 0 {
		idsPh := next(f.AmenityIDs)
		countPh := next(len(f.AmenityIDs))
		clauses = append(clauses, fmt.Sprintf(
			"(SELECT COUNT(DISTINCT pa.amenity_id) FROM place_amenities pa"+
				" WHERE pa.place_id = p.id AND pa.amenity_id = ANY(%s)) = %s",
			idsPh, countPh))
	}

	whereArgCount := len(args)
	orderBy := f.composeOrder(next)

	return ComposedQuery{
		Where:     strings.Join(clauses, " AND "),
		Args:      args[:whereArgCount],
		OrderBy:   orderBy,
		OrderArgs: args[whereArgCount:],
	}
}

// likeEscaper neutralizes ILIKE metacharacters so user input like "100%"
// matches literally instead of everything. Backslash is the default
// LIKE escape character in postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a substring ILIKE pattern from raw user input.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (f PlaceFilter) composeOrder(next func(v any) string) string {
	// A geo query always ranks by the distance proxy, nearest first
	if f.Geo != nil {
		latPh := next(f.Geo.Lat)
		lonPh := next(f.Geo.Lon)
		return fmt.Sprintf(
			"((p.latitude - %[1]s) * (p.latitude - %[1]s)"+
				" + (p.longitude - %[2]s) * (p.longitude - %[2]s)) ASC",
			latPh, lonPh)
	}

	if f.OrderBy == OrderByPrice {
		return "char_length(p.price_range) ASC, p.created_at DESC"
	}

	return "p.created_at DESC"
}
