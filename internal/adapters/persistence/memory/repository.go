// Package memory provides an in-process StudyGroupRepository used by the
// local profile and by tests. Groups are copied on the way in and out so
// callers never share state with the store.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StudyGroupRepository = (*Repository)(nil)
	_ ports.HealthChecker        = (*Repository)(nil)
)

type membershipKey struct {
	groupID  int64
	memberID int64
}

// Repository is a mutex-guarded map of study groups and memberships.
type Repository struct {
	mu          sync.RWMutex
	nextID      int64
	groups      map[int64]*studygroup.StudyGroup
	memberships map[membershipKey]studygroup.Membership
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		groups:      make(map[int64]*studygroup.StudyGroup),
		memberships: make(map[membershipKey]studygroup.Membership),
	}
}

// Name identifies the repository in readiness results.
func (r *Repository) Name() string { return "memory-repository" }

// HealthCheck always succeeds; there is nothing to reach.
func (r *Repository) HealthCheck(context.Context) error { return nil }

// CreateStudyGroup assigns the next ID to g and stores it with its leader
// membership.
func (r *Repository) CreateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	g.ID = r.nextID

	leader := g.LeaderMembership()
	r.memberships[membershipKey{g.ID, leader.MemberID}] = leader

	stored := clone(g)
	stored.Members = nil
	r.groups[g.ID] = stored
	g.Members = []studygroup.Membership{leader}
	return nil
}

// FindStudyGroupByID returns a copy of the group and its memberships, oldest
// first. Deleted groups are not found.
func (r *Repository) FindStudyGroupByID(ctx context.Context, id int64) (*studygroup.StudyGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.groups[id]
	if !ok {
		return nil, fmt.Errorf("study group %d: %w", id, domain.ErrNotFound)
	}

	out := clone(g)
	for k, m := range r.memberships {
		if k.groupID == id {
			out.Members = append(out.Members, m)
		}
	}
	slices.SortFunc(out.Members, func(a, b studygroup.Membership) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.MemberID, b.MemberID))
	})
	return out, nil
}

// UpdateStudyGroup writes title, description, image URL and updated_at.
func (r *Repository) UpdateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.groups[g.ID]
	if !ok {
		return fmt.Errorf("study group %d: %w", g.ID, domain.ErrNotFound)
	}
	current.Title = g.Title
	current.Description = g.Description
	current.ImageURL = g.ImageURL
	current.UpdatedAt = g.UpdatedAt
	return nil
}

// AddMembership stores m if the group exists. A second membership for the
// same member is a conflict.
func (r *Repository) AddMembership(ctx context.Context, m studygroup.Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[m.StudyGroupID]; !ok {
		return fmt.Errorf("study group %d: %w", m.StudyGroupID, domain.ErrNotFound)
	}
	key := membershipKey{m.StudyGroupID, m.MemberID}
	if _, exists := r.memberships[key]; exists {
		return fmt.Errorf("membership (%d, %d): %w", m.StudyGroupID, m.MemberID, domain.ErrConflict)
	}
	r.memberships[key] = m
	return nil
}

// DeleteStudyGroup removes the group and its memberships.
func (r *Repository) DeleteStudyGroup(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[id]; !ok {
		return fmt.Errorf("study group %d: %w", id, domain.ErrNotFound)
	}
	delete(r.groups, id)
	for k := range r.memberships {
		if k.groupID == id {
			delete(r.memberships, k)
		}
	}
	return nil
}

func clone(g *studygroup.StudyGroup) *studygroup.StudyGroup {
	out := *g
	out.PreferredMBTIs = slices.Clone(g.PreferredMBTIs)
	out.Members = slices.Clone(g.Members)
	return &out
}
