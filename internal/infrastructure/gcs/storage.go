package gcs

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/cloud-gallery/internal/domain/repository"
	"github.com/oksasatya/cloud-gallery/pkg/helpers"
)

// Storage implements the object-storage gateway on Google Cloud Storage.
type Storage struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorage(client *storage.Client, bucket, baseURL string) *Storage {
	return &Storage{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Put writes the blob under <ownerID>/<uuid><ext> and returns the key and its
// public URL. The random segment is a v4 UUID, so collisions are negligible.
func (s *Storage) Put(ctx context.Context, ownerID string, r io.Reader, filename, contentType string) (string, string, error) {
	if s.client == nil || s.bucket == "" {
		return "", "", fmt.Errorf("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	key := ownerID + "/" + uuid.NewString() + ext
	if err := helpers.UploadObject(ctx, s.client, s.bucket, key, contentType, r); err != nil {
		return "", "", fmt.Errorf("upload object %s: %w", key, err)
	}
	return key, helpers.PublicURL(s.baseURL, s.bucket, key), nil
}

var _ repository.ObjectStorage = (*Storage)(nil)
