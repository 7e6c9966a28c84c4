package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByToken(ctx context.Context, token string) (User, error)
	Update(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetToken(ctx context.Context, id uuid.UUID, token string) error
	ConsumeToken(ctx context.Context, token string) (User, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// User represents a registered account. PasswordHash and Token never appear
// in responses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Photo        *string   `json:"photo,omitempty"`
	Verified     bool      `json:"verified"`
	Token        *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateProfileParams contains the partial-update fields for a profile.
// A nil field keeps the stored value.
type UpdateProfileParams struct {
	ID    uuid.UUID
	Name  *string
	Email *string
	Photo *string
}
