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

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.TransportProvider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportProvider, error)
	FindAll(ctx context.Context, nameSearch string) ([]*entity.TransportProvider, error)
	Update(ctx context.Context, provider *entity.TransportProvider) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProviderRepository(db database.PgxIface, log *zap.Logger) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider")),
	}
}

func (r *providerRepository) Create(ctx context.Context, provider *entity.TransportProvider) error {
	query := `
		INSERT INTO transport_providers (id, name, provider_type, description,
		                                contact_number, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.Name,
		provider.ProviderType,
		provider.Description,
		provider.ContactNumber,
		provider.Website,
		provider.CreatedAt,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create provider",
			zap.Error(err),
			zap.String("name", provider.Name),
		)
		return fmt.Errorf("create provider %s: %w", provider.Name, err)
	}

	return nil
}

func (r *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportProvider, error) {
	query := `
		SELECT id, name, provider_type, description, contact_number, website,
		       created_at, updated_at
		FROM transport_providers
		WHERE id = $1 AND deleted_at IS NULL
	`

	var provider entity.TransportProvider
	err := r.db.QueryRow(ctx, query, id).Scan(
		&provider.ID,
		&provider.Name,
		&provider.ProviderType,
		&provider.Description,
		&provider.ContactNumber,
		&provider.Website,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find provider by ID",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return nil, fmt.Errorf("find provider by ID %s: %w", id.String(), err)
	}

	return &provider, nil
}

func (r *providerRepository) FindAll(ctx context.Context, nameSearch string) ([]*entity.TransportProvider, error) {
	query := `
		SELECT id, name, provider_type, description, contact_number, website,
		       created_at, updated_at
		FROM transport_providers
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if nameSearch != "" {
		query += ` AND (name ILIKE $1 OR description ILIKE $1)`
		args = append(args, search.ContainsPattern(nameSearch))
	}

	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find providers", zap.Error(err))
		return nil, fmt.Errorf("find providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.TransportProvider
	for rows.Next() {
		var provider entity.TransportProvider
		err := rows.Scan(
			&provider.ID,
			&provider.Name,
			&provider.ProviderType,
			&provider.Description,
			&provider.ContactNumber,
			&provider.Website,
			&provider.CreatedAt,
			&provider.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan provider row", zap.Error(err))
			return nil, fmt.Errorf("scan provider row: %w", err)
		}
		providers = append(providers, &provider)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate provider rows: %w", err)
	}

	return providers, nil
}

func (r *providerRepository) Update(ctx context.Context, provider *entity.TransportProvider) error {
	query := `
		UPDATE transport_providers
		SET name = $2, provider_type = $3, description = $4, contact_number = $5,
		    website = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.Name,
		provider.ProviderType,
		provider.Description,
		provider.ContactNumber,
		provider.Website,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update provider",
			zap.Error(err),
			zap.String("provider_id", provider.ID.String()),
		)
		return fmt.Errorf("update provider %s: %w", provider.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("provider %s not found", provider.ID.String())
	}

	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transport_providers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete provider",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return fmt.Errorf("delete provider %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("provider %s not found", id.String())
	}

	r.log.Info("Provider soft deleted", zap.String("provider_id", id.String()))
	return nil
}
