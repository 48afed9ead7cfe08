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

const placeColumns = `p.id, p.name, p.place_type, p.description, p.latitude, p.longitude,
	       p.address, p.city, p.state, p.country, p.price_range, p.contact_number,
	       p.is_available, p.created_at, p.updated_at`

type PlaceRepository interface {
	Create(ctx context.Context, place *entity.Place) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	Update(ctx context.Context, place *entity.Place) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Search runs the composed predicate against the catalog, ranked and
	// de-duplicated per the composer's contract.
	Search(ctx context.Context, q search.ComposedQuery, limit, offset int) ([]*entity.Place, error)
	CountSearch(ctx context.Context, q search.ComposedQuery) (int64, error)
}

type placeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaceRepository(db database.PgxIface, log *zap.Logger) PlaceRepository {
	return &placeRepository{
		db:  db,
		log: log.With(zap.String("repository", "place")),
	}
}

func (r *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	query := `
		INSERT INTO places (id, name, place_type, description, latitude, longitude,
		                   address, city, state, country, price_range, contact_number,
		                   is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		place.ID,
		place.Name,
		place.PlaceType,
		place.Description,
		place.Latitude,
		place.Longitude,
		place.Address,
		place.City,
		place.State,
		place.Country,
		place.PriceRange,
		place.ContactNumber,
		place.IsAvailable,
		place.CreatedAt,
		place.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create place",
			zap.Error(err),
			zap.String("name", place.Name),
		)
		return fmt.Errorf("create place %s: %w", place.Name, err)
	}

	return nil
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM places p
		WHERE p.id = $1 AND p.deleted_at IS NULL
	`, placeColumns)

	row := r.db.QueryRow(ctx, query, id)

	place, err := scanPlace(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find place by ID",
			zap.Error(err),
			zap.String("place_id", id.String()),
		)
		return nil, fmt.Errorf("find place by ID %s: %w", id.String(), err)
	}

	return place, nil
}

func (r *placeRepository) Search(ctx context.Context, q search.ComposedQuery, limit, offset int) ([]*entity.Place, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM places p WHERE p.deleted_at IS NULL", placeColumns))

	args := append([]any{}, q.Args...)
	if q.Where != "" {
		queryBuilder.WriteString(" AND ")
		queryBuilder.WriteString(q.Where)
	}

	args = append(args, q.OrderArgs...)
	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(q.OrderBy)

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to search places",
			zap.Error(err),
			zap.String("where", q.Where),
		)
		return nil, fmt.Errorf("search places: %w", err)
	}
	defer rows.Close()

	var places []*entity.Place
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			r.log.Error("Failed to scan place row", zap.Error(err))
			return nil, fmt.Errorf("scan place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate place rows: %w", err)
	}

	r.log.Debug("Places searched",
		zap.Int("count", len(places)),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	return places, nil
}

func (r *placeRepository) CountSearch(ctx context.Context, q search.ComposedQuery) (int64, error) {
	query := "SELECT COUNT(*) FROM places p WHERE p.deleted_at IS NULL"
	if q.Where != "" {
		query += " AND " + q.Where
	}

	var total int64
	err := r.db.QueryRow(ctx, query, q.Args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count places",
			zap.Error(err),
			zap.String("where", q.Where),
		)
		return 0, fmt.Errorf("count places: %w", err)
	}

	return total, nil
}

func (r *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	query := `
		UPDATE places
		SET name = $2, place_type = $3, description = $4, latitude = $5, longitude = $6,
		    address = $7, city = $8, state = $9, country = $10, price_range = $11,
		    contact_number = $12, is_available = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		place.ID,
		place.Name,
		place.PlaceType,
		place.Description,
		place.Latitude,
		place.Longitude,
		place.Address,
		place.City,
		place.State,
		place.Country,
		place.PriceRange,
		place.ContactNumber,
		place.IsAvailable,
		place.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update place",
			zap.Error(err),
			zap.String("place_id", place.ID.String()),
		)
		return fmt.Errorf("update place %s: %w", place.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("place %s not found", place.ID.String())
	}

	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE places SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete place",
			zap.Error(err),
			zap.String("place_id", id.String()),
		)
		return fmt.Errorf("delete place %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("place %s not found", id.String())
	}

	r.log.Info("Place soft deleted", zap.String("place_id", id.String()))
	return nil
}

// scanPlace reads the placeColumns projection
func scanPlace(row pgx.Row) (*entity.Place, error) {
	var place entity.Place
	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.PlaceType,
		&place.Description,
		&place.Latitude,
		&place.Longitude,
		&place.Address,
		&place.City,
		&place.State,
		&place.Country,
		&place.PriceRange,
		&place.ContactNumber,
		&place.IsAvailable,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}
