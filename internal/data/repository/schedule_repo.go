package repository

import (
	"context"
	"fmt"

	"smart-highway/internal/data/entity"
	"smart-highway/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindActiveByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, route_id, departure_time, arrival_time,
		                      days_of_week, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.RouteID,
		schedule.DepartureTime,
		schedule.ArrivalTime,
		schedule.DaysOfWeek,
		schedule.IsActive,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("route_id", schedule.RouteID.String()),
		)
		return fmt.Errorf("create schedule for route %s: %w", schedule.RouteID.String(), err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `
		SELECT id, route_id, departure_time, arrival_time, days_of_week,
		       is_active, created_at, updated_at
		FROM schedules
		WHERE id = $1 AND deleted_at IS NULL
	`

	var schedule entity.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.RouteID,
		&schedule.DepartureTime,
		&schedule.ArrivalTime,
		&schedule.DaysOfWeek,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule by ID %s: %w", id.String(), err)
	}

	return &schedule, nil
}

func (r *scheduleRepository) FindActiveByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error) {
	query := `
		SELECT id, route_id, departure_time, arrival_time, days_of_week,
		       is_active, created_at, updated_at
		FROM schedules
		WHERE route_id = $1 AND is_active = TRUE AND deleted_at IS NULL
		ORDER BY departure_time
	`

	rows, err := r.db.Query(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to find schedules by route ID",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return nil, fmt.Errorf("find schedules for route %s: %w", routeID.String(), err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		var schedule entity.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.RouteID,
			&schedule.DepartureTime,
			&schedule.ArrivalTime,
			&schedule.DaysOfWeek,
			&schedule.IsActive,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule rows: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET route_id = $2, departure_time = $3, arrival_time = $4,
		    days_of_week = $5, is_active = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.RouteID,
		schedule.DepartureTime,
		schedule.ArrivalTime,
		schedule.DaysOfWeek,
		schedule.IsActive,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", schedule.ID.String()),
		)
		return fmt.Errorf("update schedule %s: %w", schedule.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", schedule.ID.String())
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE schedules SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("delete schedule %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id.String())
	}

	r.log.Info("Schedule soft deleted", zap.String("schedule_id", id.String()))
	return nil
}
