package repository

import (
	"context"
	"io"
)

// ObjectStorage is the gateway to the image blob store.
type ObjectStorage interface {
	// Put writes the content under a fresh key scoped to ownerID and returns
	// the storage key together with its publicly resolvable URL. Nothing else
	// may be persisted for the upload until Put has succeeded.
	Put(ctx context.Context, ownerID string, r io.Reader, filename, contentType string) (key string, url string, err error)
}
