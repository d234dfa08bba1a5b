package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

func newGroup(leader int64) *studygroup.StudyGroup {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return &studygroup.StudyGroup{
		Title:            "title",
		Description:      "this is new study group",
		Topic:            studygroup.TopicAI,
		Region:           studygroup.RegionSeoul,
		PreferredMBTIs:   []studygroup.MBTI{studygroup.MBTIENFJ},
		NumberOfRecruits: 5,
		StartDateTime:    now.AddDate(0, 0, 10),
		EndDateTime:      now.AddDate(0, 3, 0),
		LeaderID:         leader,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	ctx := context.Background()

	g := newGroup(1)
	if err := repo.CreateStudyGroup(ctx, g); err != nil {
		t.Fatalf("CreateStudyGroup() = %v", err)
	}
	if g.ID != 1 {
		t.Errorf("assigned ID = %d, want 1", g.ID)
	}

	got, err := repo.FindStudyGroupByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindStudyGroupByID() = %v", err)
	}
	if got.Title != "title" || len(got.Members) != 1 || got.Members[0].Role != studygroup.RoleLeader {
		t.Errorf("found = %+v", got)
	}

	got.PreferredMBTIs[0] = studygroup.MBTIISTJ
	again, _ := repo.FindStudyGroupByID(ctx, g.ID)
	if again.PreferredMBTIs[0] != studygroup.MBTIENFJ {
		t.Error("mutating a returned group changed the stored copy")
	}
}

func TestRepository_FindMissing(t *testing.T) {
	t.Parallel()

	_, err := NewRepository().FindStudyGroupByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepository_AddMembership(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	ctx := context.Background()
	g := newGroup(1)
	_ = repo.CreateStudyGroup(ctx, g)

	m := studygroup.Membership{StudyGroupID: g.ID, MemberID: 2, Role: studygroup.RoleApplicant, CreatedAt: time.Now()}
	if err := repo.AddMembership(ctx, m); err != nil {
		t.Fatalf("AddMembership() = %v", err)
	}
	if err := repo.AddMembership(ctx, m); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate AddMembership() = %v, want ErrConflict", err)
	}
	leader := studygroup.Membership{StudyGroupID: g.ID, MemberID: 1, Role: studygroup.RoleApplicant}
	if err := repo.AddMembership(ctx, leader); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("leader AddMembership() = %v, want ErrConflict", err)
	}
	if err := repo.AddMembership(ctx, studygroup.Membership{StudyGroupID: 42, MemberID: 2}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddMembership(missing group) = %v, want ErrNotFound", err)
	}

	got, _ := repo.FindStudyGroupByID(ctx, g.ID)
	if len(got.Members) != 2 {
		t.Errorf("members = %d, want 2", len(got.Members))
	}
}

func TestRepository_MembershipsOrderedByTimeThenMember(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	ctx := context.Background()

	g := newGroup(1)
	if err := repo.CreateStudyGroup(ctx, g); err != nil {
		t.Fatalf("CreateStudyGroup() = %v", err)
	}
	later := g.CreatedAt.Add(time.Minute)
	for _, id := range []int64{9, 4, 6} {
		m := studygroup.Membership{StudyGroupID: g.ID, MemberID: id, Role: studygroup.RoleApplicant, CreatedAt: later}
		if err := repo.AddMembership(ctx, m); err != nil {
			t.Fatalf("AddMembership(%d) = %v", id, err)
		}
	}

	got, err := repo.FindStudyGroupByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindStudyGroupByID() = %v", err)
	}
	want := []int64{1, 4, 6, 9}
	if len(got.Members) != len(want) {
		t.Fatalf("members = %+v", got.Members)
	}
	for i, id := range want {
		if got.Members[i].MemberID != id {
			t.Errorf("Members[%d].MemberID = %d, want %d", i, got.Members[i].MemberID, id)
		}
	}
}

func TestRepository_ConcurrentApply(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	ctx := context.Background()
	g := newGroup(1)
	_ = repo.CreateStudyGroup(ctx, g)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.AddMembership(ctx, studygroup.Membership{StudyGroupID: g.ID, MemberID: 2, Role: studygroup.RoleApplicant})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("concurrent applies succeeded %d times, want 1", succeeded)
	}
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	ctx := context.Background()
	g := newGroup(1)
	_ = repo.CreateStudyGroup(ctx, g)

	g.Title = "update title"
	if err := repo.UpdateStudyGroup(ctx, g); err != nil {
		t.Fatalf("UpdateStudyGroup() = %v", err)
	}
	got, _ := repo.FindStudyGroupByID(ctx, g.ID)
	if got.Title != "update title" {
		t.Errorf("Title = %q, want update title", got.Title)
	}

	if err := repo.DeleteStudyGroup(ctx, g.ID); err != nil {
		t.Fatalf("DeleteStudyGroup() = %v", err)
	}
	if _, err := repo.FindStudyGroupByID(ctx, g.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("find after delete = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteStudyGroup(ctx, g.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateStudyGroup(ctx, g); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update after delete = %v, want ErrNotFound", err)
	}
}

func TestRepository_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRepository().CreateStudyGroup(ctx, newGroup(1)); !errors.Is(err, context.Canceled) {
		t.Errorf("CreateStudyGroup(canceled) = %v, want context.Canceled", err)
	}
}
