package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tably-app/backoffice-service/internal/models"
)

// UserRepository handles user data access
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by login email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, restaurant_id, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, restaurant_id, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, role, restaurant_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, role, restaurant_id, is_active, created_at, updated_at
	`

	var created models.User
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.RestaurantID,
		user.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// CreateTx creates a new user inside an existing transaction
func (r *UserRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, role, restaurant_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, role, restaurant_id, is_active, created_at, updated_at
	`

	var created models.User
	err := tx.GetContext(
		ctx,
		&created,
		query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.RestaurantID,
		user.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
