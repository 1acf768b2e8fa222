package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
	"github.com/oksasatya/cloud-gallery/internal/domain/repository"
	"github.com/oksasatya/cloud-gallery/pkg/helpers"
)

var (
	// ErrNoOwner means the caller reached the orchestrator without an
	// authenticated user id; the middleware normally makes this impossible.
	ErrNoOwner = errors.New("missing authenticated user")
	// ErrPhotoNotFound is returned when a photo id does not exist.
	ErrPhotoNotFound = errors.New("photo not found")
)

const (
	defaultTitle = "Untitled"

	listCacheKey = "photos:list"
	listCacheTTL = 30 * time.Second
)

// PhotoService orchestrates uploads, listing, deletion and search. Redis and
// Elasticsearch are optional; with both nil the service degrades to plain
// storage + database calls with identical observable semantics.
type PhotoService struct {
	Photos  repository.PhotoRepository
	Storage repository.ObjectStorage
	Redis   *redis.Client
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewPhotoService(photos repository.PhotoRepository, store repository.ObjectStorage, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PhotoService {
	return &PhotoService{Photos: photos, Storage: store, Redis: rdb, Logger: logger, ES: es, ESIndex: esIndex}
}

// Upload writes the blob first and the metadata row second. The row is the
// commit point: a failed storage write creates nothing, a failed row insert
// leaves an orphaned blob behind (logged, not compensated).
func (s *PhotoService) Upload(ctx context.Context, ownerID, title string, r io.Reader, filename, contentType string) (*entity.Photo, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}

	key, url, err := s.Storage.Put(ctx, ownerID, r, filename, contentType)
	if err != nil {
		return nil, err
	}

	p := &entity.Photo{Title: title, StorageKey: key, URL: url, OwnerID: ownerID}
	if err := s.Photos.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("storage_key", key).Warn("metadata insert failed, blob orphaned")
		}
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.indexPhoto(ctx, p)
	return p, nil
}

// List returns all photos newest first, through a short-lived cache when
// Redis is available. The cache is invalidated on every upload and delete so
// a successful write is always visible to the next read.
func (s *PhotoService) List(ctx context.Context) ([]*entity.Photo, error) {
	if s.Redis != nil {
		var cached []*entity.Photo
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, listCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	photos, err := s.Photos.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listCacheKey, photos, listCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("photo list cache set failed")
		}
	}
	return photos, nil
}

// Delete removes the metadata row only; the blob stays in storage. A missing
// id is reported as ErrPhotoNotFound, never treated as success.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	if err := s.Photos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	s.invalidateListCache(ctx)
	s.deleteIndexed(ctx, id)
	return nil
}

func (s *PhotoService) invalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, listCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("photo list cache invalidation failed")
	}
}

func (s *PhotoService) indexPhoto(ctx context.Context, p *entity.Photo) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	b, _ := json.Marshal(p)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("photo_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("photo_id", p.ID).Warn("es index response error")
	}
}

func (s *PhotoService) deleteIndexed(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("photo_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search matches photo titles in Elasticsearch. Returns an empty result when
// search is not configured.
func (s *PhotoService) Search(ctx context.Context, q string, size int) ([]*entity.Photo, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []*entity.Photo{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"title": q,
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Photo `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]*entity.Photo, 0, len(parsed.Hits.Hits))
	for i := range parsed.Hits.Hits {
		p := parsed.Hits.Hits[i].Source
		out = append(out, &p)
	}
	return out, nil
}
