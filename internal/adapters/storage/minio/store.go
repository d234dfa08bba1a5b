// Package minio provides the ImageStore backed by an S3-compatible bucket
// through minio-go. Objects are addressed as {public_url}/{key}, where
// public_url is the address the bucket is served from.
package minio

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// keyPrefix groups study group images inside the bucket.
const keyPrefix = "study-groups/"

var (
	_ ports.ImageStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store uploads and removes study group images.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// New creates a Store for cfg. No request is made until EnsureBucket or the
// first upload.
func New(cfg config.StorageConfig) (*Store, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "http://"), "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	public := strings.TrimRight(cfg.PublicURL, "/")
	if public == "" {
		public = client.EndpointURL().String() + "/" + cfg.Bucket
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: public + "/",
	}, nil
}

// Name identifies the store in readiness results.
func (s *Store) Name() string { return "minio" }

// HealthCheck verifies that the bucket is reachable and exists.
func (s *Store) HealthCheck(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("minio: %w", err)
	}
	if !exists {
		return fmt.Errorf("minio: bucket %q does not exist", s.bucket)
	}
	return nil
}

// EnsureBucket creates the bucket on first start.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Upload streams img to a fresh key and returns its public URL.
func (s *Store) Upload(ctx context.Context, img *studygroup.ImageFile) (string, error) {
	if img == nil || img.Content == nil {
		return "", errors.New("uploading image: no content")
	}

	key := newKey(img.Filename)
	size := img.Size
	if size <= 0 {
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, img.Content, size, minio.PutObjectOptions{
		ContentType: img.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading image %s: %w", key, err)
	}
	return s.baseURL + key, nil
}

// Delete removes the object behind url. URLs outside this bucket are ignored.
func (s *Store) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing image %s: %w", key, err)
	}
	return nil
}

func (s *Store) keyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.baseURL)
	if !ok || !strings.HasPrefix(key, keyPrefix) || len(key) == len(keyPrefix) {
		return "", false
	}
	return key, true
}

func newKey(filename string) string {
	return keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
