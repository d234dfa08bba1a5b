package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/stuti-api/internal/app/context"
	"github.com/jsamuelsen11/stuti-api/internal/app/fanout"
	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// Compile-time check that StudyGroupService implements ports.StudyGroupService.
var _ ports.StudyGroupService = (*StudyGroupService)(nil)

const (
	opCreate = "CreateStudyGroup"
	opApply  = "ApplyStudyGroup"
	opUpdate = "UpdateStudyGroup"
	opDelete = "DeleteStudyGroup"
	opGet    = "GetStudyGroup"

	cleanupWorkers = 3
)

// StudyGroupService implements ports.StudyGroupService. Writes go through the
// request's appctx.RequestContext so that a failed save rolls back the image
// upload staged before it. Cache, events and member verification are optional
// and skipped when their port is not configured.
type StudyGroupService struct {
	repo      ports.StudyGroupRepository
	images    ports.ImageStore
	members   ports.MemberClient
	cache     ports.StudyGroupCache
	publisher ports.EventPublisher
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures optional collaborators of StudyGroupService.
type Option func(*StudyGroupService)

// WithMemberClient verifies actors against the member API before writes.
func WithMemberClient(c ports.MemberClient) Option {
	return func(s *StudyGroupService) { s.members = c }
}

// WithCache puts c in front of the repository for GetStudyGroup.
func WithCache(c ports.StudyGroupCache) Option {
	return func(s *StudyGroupService) { s.cache = c }
}

// WithEventPublisher publishes lifecycle events after each committed write.
func WithEventPublisher(p ports.EventPublisher) Option {
	return func(s *StudyGroupService) { s.publisher = p }
}

// WithMetrics counts operations by outcome.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *StudyGroupService) { s.metrics = m }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *StudyGroupService) { s.now = now }
}

// NewStudyGroupService creates a StudyGroupService. A nil logger falls back
// to slog.Default().
func NewStudyGroupService(repo ports.StudyGroupRepository, images ports.ImageStore, logger *slog.Logger, opts ...Option) *StudyGroupService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &StudyGroupService{
		repo:   repo,
		images: images,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateStudyGroup uploads the image, then saves the group with its leader
// membership. If the save fails the uploaded image is deleted again.
func (s *StudyGroupService) CreateStudyGroup(ctx context.Context, cmd studygroup.CreateCommand) (resp studygroup.IDResponse, err error) {
	defer func() { s.record(ctx, opCreate, err) }()

	s.logger.InfoContext(ctx, "creating study group",
		slog.Int64("member_id", cmd.MemberID),
		slog.String("title", cmd.Title),
	)

	if cmd.Image == nil {
		return resp, &domain.ValidationError{Fields: map[string]string{"imageFile": domain.MsgRequired}}
	}

	g := cmd.ToStudyGroup(s.now())
	if err := g.Validate(); err != nil {
		return resp, err
	}
	if err := s.verifyMember(ctx, cmd.MemberID); err != nil {
		return resp, err
	}

	rc := appctx.FromContextOrNew(ctx)
	upload := &uploadImageAction{store: s.images, image: cmd.Image}
	save := &appctx.FuncAction{
		Desc: "save study group",
		ExecuteFn: func(ctx context.Context) error {
			g.ImageURL = upload.url
			return s.repo.CreateStudyGroup(ctx, g)
		},
	}
	if err := rc.AddAction(upload); err != nil {
		return resp, err
	}
	if err := rc.AddAction(save); err != nil {
		return resp, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create study group",
			slog.String("operation", opCreate),
			slog.Int64("member_id", cmd.MemberID),
			slog.Any("error", err),
		)
		return resp, err
	}

	s.publish(ctx, studygroup.EventCreated, g.ID, cmd.MemberID)
	return studygroup.IDResponse{StudyGroupID: g.ID}, nil
}

// ApplyStudyGroup records the actor as an applicant of the group.
func (s *StudyGroupService) ApplyStudyGroup(ctx context.Context, cmd studygroup.ApplyCommand) (resp studygroup.IDResponse, err error) {
	defer func() { s.record(ctx, opApply, err) }()

	s.logger.InfoContext(ctx, "applying to study group",
		slog.Int64("study_group_id", cmd.StudyGroupID),
		slog.Int64("member_id", cmd.MemberID),
	)

	rc := appctx.FromContextOrNew(ctx)
	g, err := s.loadGroup(rc, cmd.StudyGroupID)
	if err != nil {
		return resp, err
	}
	if err := s.verifyMember(ctx, cmd.MemberID); err != nil {
		return resp, err
	}
	if g.HasRelation(cmd.MemberID) {
		return resp, domain.AlreadyApplied(cmd.StudyGroupID, cmd.MemberID)
	}

	m := g.Apply(cmd.MemberID, s.now())
	err = rc.Stage(groupKey(g.ID), g, &appctx.FuncAction{
		Desc:      "add study group applicant",
		ExecuteFn: func(ctx context.Context) error { return s.repo.AddMembership(ctx, m) },
	})
	if err != nil {
		return resp, err
	}

	if err := rc.Commit(ctx); err != nil {
		rc.Forget(groupKey(g.ID))
		if errors.Is(err, domain.ErrConflict) {
			return resp, domain.AlreadyApplied(cmd.StudyGroupID, cmd.MemberID)
		}
		s.logger.ErrorContext(ctx, "failed to apply to study group",
			slog.String("operation", opApply),
			slog.Int64("study_group_id", cmd.StudyGroupID),
			slog.Int64("member_id", cmd.MemberID),
			slog.Any("error", err),
		)
		return resp, err
	}

	s.evict(ctx, g.ID)
	s.publish(ctx, studygroup.EventApplied, g.ID, cmd.MemberID)
	return studygroup.IDResponse{StudyGroupID: g.ID}, nil
}

// UpdateStudyGroup changes the title, description and image of a group led
// by the actor. Fields equal to the current value are ignored; when nothing
// differs nothing is written. A replaced image is deleted after the commit.
func (s *StudyGroupService) UpdateStudyGroup(ctx context.Context, cmd studygroup.UpdateCommand) (resp studygroup.IDResponse, err error) {
	defer func() { s.record(ctx, opUpdate, err) }()

	s.logger.InfoContext(ctx, "updating study group",
		slog.Int64("study_group_id", cmd.StudyGroupID),
		slog.Int64("member_id", cmd.MemberID),
	)

	changes := studygroup.Changes{Title: cmd.Title, Description: cmd.Description}
	if err := changes.Validate(); err != nil {
		return resp, err
	}

	rc := appctx.FromContextOrNew(ctx)
	g, err := s.loadGroup(rc, cmd.StudyGroupID)
	if err != nil {
		return resp, err
	}
	if !g.IsLeader(cmd.MemberID) {
		return resp, domain.NotLeader(cmd.StudyGroupID, cmd.MemberID)
	}

	previousImage := g.ImageURL
	var upload *uploadImageAction
	if cmd.Image != nil {
		upload = &uploadImageAction{store: s.images, image: cmd.Image}
		if err := rc.AddAction(upload); err != nil {
			return resp, err
		}
	}

	changed := false
	err = rc.Stage(groupKey(g.ID), g, &appctx.FuncAction{
		Desc: "update study group",
		ExecuteFn: func(ctx context.Context) error {
			if upload != nil {
				changes.ImageURL = &upload.url
			}
			changed = g.ApplyChanges(changes, s.now())
			if !changed {
				return nil
			}
			return s.repo.UpdateStudyGroup(ctx, g)
		},
	})
	if err != nil {
		return resp, err
	}

	if err := rc.Commit(ctx); err != nil {
		rc.Forget(groupKey(g.ID))
		s.logger.ErrorContext(ctx, "failed to update study group",
			slog.String("operation", opUpdate),
			slog.Int64("study_group_id", cmd.StudyGroupID),
			slog.Any("error", err),
		)
		return resp, err
	}

	if !changed {
		s.logger.DebugContext(ctx, "study group unchanged", slog.Int64("study_group_id", g.ID))
		return studygroup.IDResponse{StudyGroupID: g.ID}, nil
	}

	if upload != nil && previousImage != "" && previousImage != g.ImageURL {
		s.deleteImage(ctx, rc, previousImage)
	}
	s.evict(ctx, g.ID)
	s.publish(ctx, studygroup.EventUpdated, g.ID, cmd.MemberID)
	return studygroup.IDResponse{StudyGroupID: g.ID}, nil
}

// DeleteStudyGroup removes a group led by the actor, then deletes its image,
// evicts it from the cache and publishes the deletion concurrently. Cleanup
// failures are logged and do not fail the request.
func (s *StudyGroupService) DeleteStudyGroup(ctx context.Context, cmd studygroup.DeleteCommand) (resp studygroup.IDResponse, err error) {
	defer func() { s.record(ctx, opDelete, err) }()

	s.logger.InfoContext(ctx, "deleting study group",
		slog.Int64("study_group_id", cmd.StudyGroupID),
		slog.Int64("member_id", cmd.MemberID),
	)

	rc := appctx.FromContextOrNew(ctx)
	g, err := s.loadGroup(rc, cmd.StudyGroupID)
	if err != nil {
		return resp, err
	}
	if !g.IsLeader(cmd.MemberID) {
		return resp, domain.NotLeader(cmd.StudyGroupID, cmd.MemberID)
	}

	err = rc.AddAction(&appctx.FuncAction{
		Desc:      "delete study group",
		ExecuteFn: func(ctx context.Context) error { return s.repo.DeleteStudyGroup(ctx, g.ID) },
	})
	if err != nil {
		return resp, err
	}
	// Evicted on both sides of the commit: a read racing the delete can
	// refill the cache in between.
	s.evict(ctx, g.ID)
	if err := rc.Commit(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return resp, domain.NotFoundStudyGroup(g.ID)
		}
		s.logger.ErrorContext(ctx, "failed to delete study group",
			slog.String("operation", opDelete),
			slog.Int64("study_group_id", g.ID),
			slog.Any("error", err),
		)
		return resp, err
	}
	rc.Forget(groupKey(g.ID))

	if err := s.evictErr(ctx, g.ID); err != nil {
		s.logger.ErrorContext(ctx, "deleted study group stays cached until it expires",
			slog.String("operation", opDelete),
			slog.Int64("study_group_id", g.ID),
			slog.Any("error", err),
		)
	}

	cleanupErr := fanout.Do(ctx, cleanupWorkers,
		func(ctx context.Context) error {
			if g.ImageURL == "" {
				return nil
			}
			return s.images.Delete(ctx, g.ImageURL)
		},
		func(ctx context.Context) error {
			return s.publishErr(ctx, studygroup.NewEvent(studygroup.EventDeleted, g.ID, cmd.MemberID, s.now()))
		},
	)
	if cleanupErr != nil {
		s.logger.WarnContext(ctx, "study group cleanup incomplete",
			slog.String("operation", opDelete),
			slog.Int64("study_group_id", g.ID),
			slog.Any("error", cleanupErr),
		)
	}

	return studygroup.IDResponse{StudyGroupID: g.ID}, nil
}

// GetStudyGroup returns a live group, reading through the cache when one is
// configured.
func (s *StudyGroupService) GetStudyGroup(ctx context.Context, id int64) (g *studygroup.StudyGroup, err error) {
	defer func() { s.record(ctx, opGet, err) }()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "study group cache read failed",
				slog.Int64("study_group_id", id),
				slog.Any("error", err),
			)
		}
		if cached != nil {
			return cached, nil
		}
	}

	g, err = s.repo.FindStudyGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundStudyGroup(id)
		}
		s.logger.ErrorContext(ctx, "failed to fetch study group",
			slog.String("operation", opGet),
			slog.Int64("study_group_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, g); err != nil {
			s.logger.WarnContext(ctx, "study group cache write failed",
				slog.Int64("study_group_id", id),
				slog.Any("error", err),
			)
		}
	}
	return g, nil
}

func groupKey(id int64) string {
	return fmt.Sprintf("study-group:%d", id)
}

// loadGroup reads the group from the repository once per request.
func (s *StudyGroupService) loadGroup(rc *appctx.RequestContext, id int64) (*studygroup.StudyGroup, error) {
	g, err := appctx.GetOrFetch(rc, groupKey(id), func(ctx context.Context) (*studygroup.StudyGroup, error) {
		return s.repo.FindStudyGroupByID(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFoundStudyGroup(id)
	}
	return g, err
}

func (s *StudyGroupService) verifyMember(ctx context.Context, memberID int64) error {
	if s.members == nil {
		return nil
	}
	if _, err := s.members.GetMember(ctx, memberID); err != nil {
		return fmt.Errorf("verifying member %d: %w", memberID, err)
	}
	return nil
}

func (s *StudyGroupService) deleteImage(ctx context.Context, rc *appctx.RequestContext, url string) {
	err := rc.Execute(&appctx.FuncAction{
		Desc:      "delete replaced study group image",
		ExecuteFn: func(ctx context.Context) error { return s.images.Delete(ctx, url) },
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to delete replaced image",
			slog.String("image_url", url),
			slog.Any("error", err),
		)
	}
}

func (s *StudyGroupService) evictErr(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Evict(ctx, id)
}

func (s *StudyGroupService) evict(ctx context.Context, id int64) {
	if err := s.evictErr(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "study group cache eviction failed",
			slog.Int64("study_group_id", id),
			slog.Any("error", err),
		)
	}
}

func (s *StudyGroupService) publishErr(ctx context.Context, event studygroup.Event) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Publish(ctx, event)
}

func (s *StudyGroupService) publish(ctx context.Context, t studygroup.EventType, groupID, memberID int64) {
	event := studygroup.NewEvent(t, groupID, memberID, s.now())
	if err := s.publishErr(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish study group event",
			slog.String("event", string(t)),
			slog.Int64("study_group_id", groupID),
			slog.Any("error", err),
		)
	}
}

func (s *StudyGroupService) record(ctx context.Context, operation string, err error) {
	s.metrics.RecordOperation(ctx, operation, operationResult(err))
}

// operationResult classifies err into a low-cardinality metric label.
func operationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
