package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
	"github.com/oksasatya/cloud-gallery/internal/domain/repository"
)

type PhotoRepository struct {
	db DB
}

func NewPhotoRepository(db DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, p *entity.Photo) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO photos (title, storage_key, url, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.Title, p.StorageKey, p.URL, p.OwnerID)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PhotoRepository) ListAll(ctx context.Context) ([]*entity.Photo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, storage_key, url, owner_id, created_at
		FROM photos
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]*entity.Photo, 0)
	for rows.Next() {
		p := &entity.Photo{}
		if err := rows.Scan(&p.ID, &p.Title, &p.StorageKey, &p.URL, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*entity.Photo, error) {
	p := &entity.Photo{}

	row := r.db.QueryRow(ctx, `
		SELECT id, title, storage_key, url, owner_id, created_at
		FROM photos
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.StorageKey, &p.URL, &p.OwnerID, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PhotoRepository = (*PhotoRepository)(nil)
