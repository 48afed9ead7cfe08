package repository

import (
	"context"
	"fmt"
	"strings"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/search"
	"smart-highway/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RouteFilter narrows active routes. Zero values mean no filter.
type RouteFilter struct {
	ProviderID  *uuid.UUID
	Source      string
	Destination string
	Search      string
}

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindActive(ctx context.Context, filter RouteFilter) ([]*entity.Route, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

const routeColumns = `id, provider_id, name, source, destination, distance_km,
	       duration_minutes, fare, is_active, created_at, updated_at`

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, provider_id, name, source, destination, distance_km,
		                   duration_minutes, fare, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.ProviderID,
		route.Name,
		route.Source,
		route.Destination,
		route.DistanceKM,
		route.DurationMinutes,
		route.Fare,
		route.IsActive,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("name", route.Name),
		)
		return fmt.Errorf("create route %s: %w", route.Name, err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM routes
		WHERE id = $1 AND deleted_at IS NULL
	`, routeColumns)

	route, err := scanRoute(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}

	return route, nil
}

func (r *routeRepository) FindActive(ctx context.Context, filter RouteFilter) ([]*entity.Route, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s FROM routes WHERE deleted_at IS NULL AND is_active = TRUE", routeColumns))

	args := []any{}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ProviderID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND provider_id = %s", next(*filter.ProviderID)))
	}
	if filter.Source != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND source ILIKE %s", next(search.ContainsPattern(filter.Source))))
	}
	if filter.Destination != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND destination ILIKE %s", next(search.ContainsPattern(filter.Destination))))
	}
	if filter.Search != "" {
		ph := next(search.ContainsPattern(filter.Search))
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (name ILIKE %[1]s OR source ILIKE %[1]s OR destination ILIKE %[1]s)", ph))
	}

	queryBuilder.WriteString(" ORDER BY name")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find active routes", zap.Error(err))
		return nil, fmt.Errorf("find active routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET provider_id = $2, name = $3, source = $4, destination = $5,
		    distance_km = $6, duration_minutes = $7, fare = $8, is_active = $9,
		    updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.ProviderID,
		route.Name,
		route.Source,
		route.Destination,
		route.DistanceKM,
		route.DurationMinutes,
		route.Fare,
		route.IsActive,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", route.ID.String())
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE routes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", id.String())
	}

	r.log.Info("Route soft deleted", zap.String("route_id", id.String()))
	return nil
}

func scanRoute(row pgx.Row) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.ProviderID,
		&route.Name,
		&route.Source,
		&route.Destination,
		&route.DistanceKM,
		&route.DurationMinutes,
		&route.Fare,
		&route.IsActive,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}
