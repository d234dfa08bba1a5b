package ports

import (
	"context"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// StudyGroupService defines the service port for study group lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every write identifies its actor through the command's MemberID.
type StudyGroupService interface {
	// CreateStudyGroup uploads the group image, persists the group with its
	// leader membership, and returns the new id.
	// Returns domain.ErrValidation if the group fails validation.
	CreateStudyGroup(ctx context.Context, cmd studygroup.CreateCommand) (studygroup.IDResponse, error)

	// ApplyStudyGroup records the actor as an applicant.
	// Returns a *domain.StudyGroupError wrapping domain.ErrNotFound if the group
	// does not exist, or domain.ErrConflict if the actor already has a relation.
	ApplyStudyGroup(ctx context.Context, cmd studygroup.ApplyCommand) (studygroup.IDResponse, error)

	// UpdateStudyGroup changes title, description and image. Unchanged fields
	// are not written.
	// Returns domain.ErrNotFound or domain.ErrForbidden via *domain.StudyGroupError.
	UpdateStudyGroup(ctx context.Context, cmd studygroup.UpdateCommand) (studygroup.IDResponse, error)

	// DeleteStudyGroup removes the group. Only its leader may do this.
	// Returns domain.ErrNotFound or domain.ErrForbidden via *domain.StudyGroupError.
	DeleteStudyGroup(ctx context.Context, cmd studygroup.DeleteCommand) (studygroup.IDResponse, error)

	// GetStudyGroup returns a live group with its memberships.
	GetStudyGroup(ctx context.Context, id int64) (*studygroup.StudyGroup, error)
}
