package repository

import (
	"context"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user and fills in the server-assigned ID and
	// CreatedAt. Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, u *entity.User) error
	// GetByEmail performs a case-sensitive exact lookup. Returns ErrNotFound
	// when no user matches.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
