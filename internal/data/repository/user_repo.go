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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// Credit ledger
	GetCredits(ctx context.Context, id uuid.UUID) (float64, error)
	AddCredits(ctx context.Context, id uuid.UUID, amount float64) (float64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, phone, role, credits,
		                  is_verified, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.Credits,
		user.IsVerified,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, phone, role, credits,
		       is_verified, is_active, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id), "id", id.String())
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, phone, role, credits,
		       is_verified, is_active, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, email), "email", email)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, phone, role, credits,
		       is_verified, is_active, created_at, updated_at, deleted_at
		FROM users
		WHERE username = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, username), "username", username)
}

func (r *userRepository) scanOne(row pgx.Row, field, value string) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.Credits,
		&user.IsVerified,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(field, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", field, value, err)
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, phone = $5, role = $6,
		    is_verified = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.IsVerified,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) GetCredits(ctx context.Context, id uuid.UUID) (float64, error) {
	query := `SELECT credits FROM users WHERE id = $1 AND deleted_at IS NULL`

	var credits float64
	err := r.db.QueryRow(ctx, query, id).Scan(&credits)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("user %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to get credits",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return 0, fmt.Errorf("get credits for user %s: %w", id.String(), err)
	}

	return credits, nil
}

// AddCredits applies a top-up as a single UPDATE so concurrent top-ups and
// ledger debits never lose increments. Returns the new balance.
func (r *userRepository) AddCredits(ctx context.Context, id uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET credits = credits + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING credits
	`

	var balance float64
	err := r.db.QueryRow(ctx, query, id, amount).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("user %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to add credits",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Float64("amount", amount),
		)
		return 0, fmt.Errorf("add credits for user %s: %w", id.String(), err)
	}

	return balance, nil
}
