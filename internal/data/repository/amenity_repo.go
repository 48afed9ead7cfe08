package repository

import (
	"context"
	"fmt"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/search"
	"smart-highway/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AmenityRepository interface {
	Create(ctx context.Context, amenity *entity.Amenity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)
	FindAll(ctx context.Context, nameSearch string) ([]*entity.Amenity, error)
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Amenity, error)
	Update(ctx context.Context, amenity *entity.Amenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type amenityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAmenityRepository(db database.PgxIface, log *zap.Logger) AmenityRepository {
	return &amenityRepository{
		db:  db,
		log: log.With(zap.String("repository", "amenity")),
	}
}

func (r *amenityRepository) Create(ctx context.Context, amenity *entity.Amenity) error {
	query := `INSERT INTO amenities (id, name, icon, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		amenity.ID,
		amenity.Name,
		amenity.Icon,
		amenity.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create amenity",
			zap.Error(err),
			zap.String("name", amenity.Name),
		)
		return fmt.Errorf("create amenity %s: %w", amenity.Name, err)
	}

	return nil
}

func (r *amenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	query := `SELECT id, name, icon, created_at FROM amenities WHERE id = $1`

	var amenity entity.Amenity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.Icon,
		&amenity.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find amenity by ID",
			zap.Error(err),
			zap.String("amenity_id", id.String()),
		)
		return nil, fmt.Errorf("find amenity by ID %s: %w", id.String(), err)
	}

	return &amenity, nil
}

func (r *amenityRepository) FindAll(ctx context.Context, nameSearch string) ([]*entity.Amenity, error) {
	query := `SELECT id, name, icon, created_at FROM amenities`
	args := []any{}

	if nameSearch != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, search.ContainsPattern(nameSearch))
	}

	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find amenities", zap.Error(err))
		return nil, fmt.Errorf("find amenities: %w", err)
	}
	defer rows.Close()

	return scanAmenities(rows)
}

func (r *amenityRepository) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Amenity, error) {
	query := `
		SELECT a.id, a.name, a.icon, a.created_at
		FROM amenities a
		JOIN place_amenities pa ON pa.amenity_id = a.id
		WHERE pa.place_id = $1
		ORDER BY a.name
	`

	rows, err := r.db.Query(ctx, query, placeID)
	if err != nil {
		r.log.Error("Failed to find amenities by place ID",
			zap.Error(err),
			zap.String("place_id", placeID.String()),
		)
		return nil, fmt.Errorf("find amenities for place %s: %w", placeID.String(), err)
	}
	defer rows.Close()

	return scanAmenities(rows)
}

func (r *amenityRepository) Update(ctx context.Context, amenity *entity.Amenity) error {
	query := `UPDATE amenities SET name = $2, icon = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, amenity.ID, amenity.Name, amenity.Icon)
	if err != nil {
		r.log.Error("Failed to update amenity",
			zap.Error(err),
			zap.String("amenity_id", amenity.ID.String()),
		)
		return fmt.Errorf("update amenity %s: %w", amenity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("amenity %s not found", amenity.ID.String())
	}

	return nil
}

// Delete removes the amenity and detaches it from all places. Places are
// never cascaded.
func (r *amenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete amenity: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM place_amenities WHERE amenity_id = $1`, id); err != nil {
		r.log.Error("Failed to detach amenity",
			zap.Error(err),
			zap.String("amenity_id", id.String()),
		)
		return fmt.Errorf("detach amenity %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete amenity",
			zap.Error(err),
			zap.String("amenity_id", id.String()),
		)
		return fmt.Errorf("delete amenity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("amenity %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete amenity: %w", err)
	}

	r.log.Info("Amenity deleted", zap.String("amenity_id", id.String()))
	return nil
}

func scanAmenities(rows pgx.Rows) ([]*entity.Amenity, error) {
	var amenities []*entity.Amenity
	for rows.Next() {
		var amenity entity.Amenity
		err := rows.Scan(
			&amenity.ID,
			&amenity.Name,
			&amenity.Icon,
			&amenity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan amenity row: %w", err)
		}
		amenities = append(amenities, &amenity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate amenity rows: %w", err)
	}

	return amenities, nil
}
