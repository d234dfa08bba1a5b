// Package memory provides an in-process ImageStore for the local profile
// and tests.
package memory

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

var _ ports.ImageStore = (*Store)(nil)

// Store keeps uploaded images in a map keyed by URL.
type Store struct {
	baseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStore returns a Store that serves objects under baseURL.
func NewStore(baseURL string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string][]byte),
	}
}

func (s *Store) Name() string { return "memory-images" }

func (s *Store) HealthCheck(context.Context) error { return nil }

func (s *Store) Upload(ctx context.Context, img *studygroup.ImageFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(img.Content)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	url := s.baseURL + "/study-groups/" + uuid.NewString() + path.Ext(img.Filename)

	s.mu.Lock()
	s.objects[url] = data
	s.mu.Unlock()
	return url, nil
}

func (s *Store) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.objects, url)
	s.mu.Unlock()
	return nil
}

// Has reports whether an object is stored at url.
func (s *Store) Has(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[url]
	return ok
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
