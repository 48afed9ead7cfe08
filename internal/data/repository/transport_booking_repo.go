package repository

import (
	"context"
	"fmt"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/fare"
	"smart-highway/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transportBookingColumns = `id, user_id, schedule_id, booking_date, num_passengers,
	       total_fare, credits_used, status, created_at, updated_at`

type TransportBookingRepository interface {
	// CreateWithDebit inserts the booking and debits the user's credit
	// balance in one transaction. The user row is locked before the
	// balance is read, so two concurrent bookings cannot both spend the
	// same credits. CreditsUsed on the passed booking is filled in from
	// the balance observed under the lock.
	CreateWithDebit(ctx context.Context, booking *entity.TransportBooking) error

	// CancelWithRefund flips the booking to cancelled and returns any
	// credits it consumed, atomically. The booking row is locked for the
	// status check so a concurrent cancel cannot refund twice.
	CancelWithRefund(ctx context.Context, id, userID uuid.UUID) (*entity.TransportBooking, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type transportBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransportBookingRepository(db database.PgxIface, log *zap.Logger) TransportBookingRepository {
	return &transportBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "transport_booking")),
	}
}

func (r *transportBookingRepository) CreateWithDebit(ctx context.Context, booking *entity.TransportBooking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transport booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance float64
	err = tx.QueryRow(ctx, `SELECT credits FROM users WHERE id = $1 FOR UPDATE`, booking.UserID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("user %s not found", booking.UserID.String())
	}
	if err != nil {
		r.log.Error("Failed to lock user credits",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("lock credits for user %s: %w", booking.UserID.String(), err)
	}

	booking.CreditsUsed = fare.CreditRedemption(balance, booking.TotalFare)

	query := `
		INSERT INTO transport_bookings (id, user_id, schedule_id, booking_date,
		                               num_passengers, total_fare, credits_used,
		                               status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ScheduleID,
		booking.BookingDate,
		booking.NumPassengers,
		booking.TotalFare,
		booking.CreditsUsed,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create transport booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("schedule_id", booking.ScheduleID.String()),
		)
		return fmt.Errorf("create transport booking: %w", err)
	}

	if booking.CreditsUsed > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE users SET credits = credits - $2, updated_at = NOW() WHERE id = $1`,
			booking.UserID, booking.CreditsUsed,
		)
		if err != nil {
			r.log.Error("Failed to debit user credits",
				zap.Error(err),
				zap.String("user_id", booking.UserID.String()),
				zap.Float64("credits_used", booking.CreditsUsed),
			)
			return fmt.Errorf("debit credits for user %s: %w", booking.UserID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transport booking transaction: %w", err)
	}

	return nil
}

func (r *transportBookingRepository) CancelWithRefund(ctx context.Context, id, userID uuid.UUID) (*entity.TransportBooking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		SELECT %s
		FROM transport_bookings
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, transportBookingColumns)

	booking, err := scanTransportBooking(tx.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock transport booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("lock transport booking %s: %w", id.String(), err)
	}

	if !booking.Status.CanCancel() {
		return nil, fmt.Errorf("booking cannot be cancelled from status %s", string(booking.Status))
	}

	_, err = tx.Exec(ctx,
		`UPDATE transport_bookings SET status = 'cancelled', updated_at = NOW() WHERE id = $1`,
		booking.ID,
	)
	if err != nil {
		r.log.Error("Failed to cancel transport booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("cancel transport booking %s: %w", id.String(), err)
	}

	if booking.CreditsUsed > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE users SET credits = credits + $2, updated_at = NOW() WHERE id = $1`,
			booking.UserID, booking.CreditsUsed,
		)
		if err != nil {
			r.log.Error("Failed to refund user credits",
				zap.Error(err),
				zap.String("user_id", booking.UserID.String()),
				zap.Float64("credits_used", booking.CreditsUsed),
			)
			return nil, fmt.Errorf("refund credits for user %s: %w", booking.UserID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cancel transaction: %w", err)
	}

	booking.Status = entity.BookingStatusCancelled
	return booking, nil
}

func (r *transportBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error) {
	query := fmt.Sprintf(`SELECT %s FROM transport_bookings WHERE id = $1`, transportBookingColumns)

	booking, err := scanTransportBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transport booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find transport booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *transportBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transport_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, transportBookingColumns)

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find transport bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find transport bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.TransportBooking
	for rows.Next() {
		booking, err := scanTransportBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan transport booking row", zap.Error(err))
			return nil, fmt.Errorf("scan transport booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transport booking rows: %w", err)
	}

	return bookings, nil
}

func (r *transportBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM transport_bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count transport bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count transport bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *transportBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	// cancelled and completed are absorbing; only live bookings move
	query := `
		UPDATE transport_bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update transport booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update transport booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transport booking %s cannot transition to %s", id.String(), string(status))
	}

	return nil
}

func scanTransportBooking(row pgx.Row) (*entity.TransportBooking, error) {
	var booking entity.TransportBooking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ScheduleID,
		&booking.BookingDate,
		&booking.NumPassengers,
		&booking.TotalFare,
		&booking.CreditsUsed,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
