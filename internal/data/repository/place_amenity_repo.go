package repository

import (
	"context"
	"fmt"
	"time"

	"smart-highway/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlaceAmenityRepository manages the place<->amenity join rows, indexed
// from either side.
type PlaceAmenityRepository interface {
	Attach(ctx context.Context, placeID, amenityID uuid.UUID) error
	Detach(ctx context.Context, placeID, amenityID uuid.UUID) error
	DetachAllForPlace(ctx context.Context, placeID uuid.UUID) error
	FindPlaceIDsByAmenity(ctx context.Context, amenityID uuid.UUID) ([]uuid.UUID, error)
}

type placeAmenityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaceAmenityRepository(db database.PgxIface, log *zap.Logger) PlaceAmenityRepository {
	return &placeAmenityRepository{
		db:  db,
		log: log.With(zap.String("repository", "place_amenity")),
	}
}

func (r *placeAmenityRepository) Attach(ctx context.Context, placeID, amenityID uuid.UUID) error {
	query := `
		INSERT INTO place_amenities (id, place_id, amenity_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (place_id, amenity_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), placeID, amenityID, time.Now())
	if err != nil {
		r.log.Error("Failed to attach amenity",
			zap.Error(err),
			zap.String("place_id", placeID.String()),
			zap.String("amenity_id", amenityID.String()),
		)
		return fmt.Errorf("attach amenity %s to place %s: %w", amenityID.String(), placeID.String(), err)
	}

	return nil
}

func (r *placeAmenityRepository) Detach(ctx context.Context, placeID, amenityID uuid.UUID) error {
	query := `DELETE FROM place_amenities WHERE place_id = $1 AND amenity_id = $2`

	result, err := r.db.Exec(ctx, query, placeID, amenityID)
	if err != nil {
		r.log.Error("Failed to detach amenity",
			zap.Error(err),
			zap.String("place_id", placeID.String()),
			zap.String("amenity_id", amenityID.String()),
		)
		return fmt.Errorf("detach amenity %s from place %s: %w", amenityID.String(), placeID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("amenity %s not attached to place %s", amenityID.String(), placeID.String())
	}

	return nil
}

func (r *placeAmenityRepository) DetachAllForPlace(ctx context.Context, placeID uuid.UUID) error {
	query := `DELETE FROM place_amenities WHERE place_id = $1`

	if _, err := r.db.Exec(ctx, query, placeID); err != nil {
		r.log.Error("Failed to detach amenities for place",
			zap.Error(err),
			zap.String("place_id", placeID.String()),
		)
		return fmt.Errorf("detach amenities for place %s: %w", placeID.String(), err)
	}

	return nil
}

func (r *placeAmenityRepository) FindPlaceIDsByAmenity(ctx context.Context, amenityID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT place_id FROM place_amenities WHERE amenity_id = $1`

	rows, err := r.db.Query(ctx, query, amenityID)
	if err != nil {
		r.log.Error("Failed to find places by amenity",
			zap.Error(err),
			zap.String("amenity_id", amenityID.String()),
		)
		return nil, fmt.Errorf("find places for amenity %s: %w", amenityID.String(), err)
	}
	defer rows.Close()

	var placeIDs []uuid.UUID
	for rows.Next() {
		var placeID uuid.UUID
		if err := rows.Scan(&placeID); err != nil {
			return nil, fmt.Errorf("scan place ID: %w", err)
		}
		placeIDs = append(placeIDs, placeID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate place IDs: %w", err)
	}

	return placeIDs, nil
}
