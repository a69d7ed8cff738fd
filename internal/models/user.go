package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleSuperadmin UserRole = "superadmin"
	RoleManager    UserRole = "manager"
	RoleWaiter     UserRole = "waiter"
)

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"` // Never expose in JSON
	Name         string     `db:"name" json:"name"`
	Role         UserRole   `db:"role" json:"role"`
	RestaurantID *uuid.UUID `db:"restaurant_id" json:"restaurant_id,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// UserRequest is used for user creation requests
type UserRequest struct {
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=6"`
	Name         string     `json:"name" validate:"required,min=2,max=100"`
	Role         UserRole   `json:"role" validate:"required,oneof=superadmin manager waiter"`
	RestaurantID *uuid.UUID `json:"restaurant_id"`
	IsActive     bool       `json:"is_active"`
}
