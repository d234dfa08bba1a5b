package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

var _ domain.Action = (*uploadImageAction)(nil)

// uploadImageAction stores an image and remembers its URL. Rolling it back
// deletes the uploaded object so a failed save leaves no orphan behind.
type uploadImageAction struct {
	store ports.ImageStore
	image *studygroup.ImageFile
	url   string
}

func (a *uploadImageAction) Execute(ctx context.Context) error {
	url, err := a.store.Upload(ctx, a.image)
	if err != nil {
		return fmt.Errorf("uploading %q: %w", a.image.Filename, err)
	}
	a.url = url
	return nil
}

func (a *uploadImageAction) Rollback(ctx context.Context) error {
	if a.url == "" {
		return nil
	}
	return a.store.Delete(ctx, a.url)
}

func (a *uploadImageAction) Description() string {
	return "upload study group image"
}
