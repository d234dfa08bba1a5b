package ports

import (
	"context"

	"github.com/jsamuelsen11/stuti-api/internal/domain/member"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// MemberClient defines the client port for the downstream member API.
// Implemented by the ACL adapter; called by the application layer.
type MemberClient interface {
	// GetMember returns a member by ID.
	// Returns domain.ErrNotFound if the member does not exist.
	GetMember(ctx context.Context, id int64) (*member.Member, error)
}

// ImageStore stores study group images and hands back a public URL.
type ImageStore interface {
	// Upload stores img and returns the URL it is served from.
	Upload(ctx context.Context, img *studygroup.ImageFile) (string, error)

	// Delete removes the image served at url. Unknown URLs are not an error.
	Delete(ctx context.Context, url string) error
}

// StudyGroupCache is a read-through cache in front of the repository.
// A miss is reported as (nil, nil).
type StudyGroupCache interface {
	Get(ctx context.Context, id int64) (*studygroup.StudyGroup, error)
	Set(ctx context.Context, g *studygroup.StudyGroup) error
	Evict(ctx context.Context, id int64) error
}

// EventPublisher emits study group lifecycle events after they commit.
type EventPublisher interface {
	Publish(ctx context.Context, event studygroup.Event) error
}
