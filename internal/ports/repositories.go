package ports

import (
	"context"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// StudyGroupRepository persists study groups and their memberships.
// Implemented by the persistence adapters (memory, postgres).
type StudyGroupRepository interface {
	// CreateStudyGroup stores g and its leader membership atomically and
	// assigns g.ID.
	CreateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) error

	// FindStudyGroupByID returns the group with its memberships.
	// Returns domain.ErrNotFound if the group is absent or deleted.
	FindStudyGroupByID(ctx context.Context, id int64) (*studygroup.StudyGroup, error)

	// UpdateStudyGroup writes the mutable fields of g.
	// Returns domain.ErrNotFound if the group is absent or deleted.
	UpdateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) error

	// AddMembership records m.
	// Returns domain.ErrConflict if (StudyGroupID, MemberID) already exists.
	AddMembership(ctx context.Context, m studygroup.Membership) error

	// DeleteStudyGroup removes the group and its memberships.
	// Returns domain.ErrNotFound if the group is absent or already deleted.
	DeleteStudyGroup(ctx context.Context, id int64) error
}
