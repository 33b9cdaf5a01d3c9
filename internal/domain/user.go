package domain

import (
	"context"
	"time"
)

// Roles known to the system. Only admin and hr may mutate HR data.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
