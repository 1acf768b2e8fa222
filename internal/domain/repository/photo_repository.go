package repository

import (
	"context"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
)

// PhotoRepository defines the interface for photo metadata persistence.
type PhotoRepository interface {
	// Create persists a new photo row and fills in the server-assigned ID and
	// CreatedAt.
	Create(ctx context.Context, p *entity.Photo) error
	// ListAll returns every photo, newest first (created_at descending).
	ListAll(ctx context.Context) ([]*entity.Photo, error)
	GetByID(ctx context.Context, id string) (*entity.Photo, error)
	// Delete removes the metadata row only; the blob stays in object storage.
	// Returns ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error
}
