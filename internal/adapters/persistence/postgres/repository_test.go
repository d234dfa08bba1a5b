package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
)

// newTestRepository connects to TEST_POSTGRES_DSN, skipping when unset.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("InitSchema() = %v", err)
	}
	return NewRepository(db)
}

func newGroup(leader int64) *studygroup.StudyGroup {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &studygroup.StudyGroup{
		Title:            "title",
		Description:      "this is new study group",
		ImageURL:         "http://images.local/a.png",
		Topic:            studygroup.TopicAI,
		Region:           studygroup.RegionSeoul,
		PreferredMBTIs:   []studygroup.MBTI{studygroup.MBTIENFJ, studygroup.MBTIISTJ},
		NumberOfRecruits: 5,
		StartDateTime:    now.AddDate(0, 0, 10),
		EndDateTime:      now.AddDate(0, 3, 0),
		LeaderID:         leader,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestRepository_Lifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() = %v", err)
	}

	g := newGroup(1)
	if err := repo.CreateStudyGroup(ctx, g); err != nil {
		t.Fatalf("CreateStudyGroup() = %v", err)
	}
	if g.ID <= 0 {
		t.Fatalf("assigned ID = %d, want positive", g.ID)
	}

	got, err := repo.FindStudyGroupByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindStudyGroupByID() = %v", err)
	}
	if got.Title != g.Title || len(got.PreferredMBTIs) != 2 || !got.StartDateTime.Equal(g.StartDateTime) {
		t.Errorf("found = %+v", got)
	}
	if len(got.Members) != 1 || got.Members[0].Role != studygroup.RoleLeader {
		t.Errorf("members = %+v, want leader only", got.Members)
	}

	applied := studygroup.Membership{
		StudyGroupID: g.ID, MemberID: 2, Role: studygroup.RoleApplicant, CreatedAt: time.Now().UTC(),
	}
	if err := repo.AddMembership(ctx, applied); err != nil {
		t.Fatalf("AddMembership() = %v", err)
	}
	if err := repo.AddMembership(ctx, applied); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second AddMembership() = %v, want ErrConflict", err)
	}

	got.Title = "renamed"
	got.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateStudyGroup(ctx, got); err != nil {
		t.Fatalf("UpdateStudyGroup() = %v", err)
	}
	again, _ := repo.FindStudyGroupByID(ctx, g.ID)
	if again.Title != "renamed" || len(again.Members) != 2 {
		t.Errorf("after update = %+v", again)
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
	if err := repo.UpdateStudyGroup(ctx, got); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update after delete = %v, want ErrNotFound", err)
	}
	applied.MemberID = 3
	if err := repo.AddMembership(ctx, applied); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("apply after delete = %v, want ErrNotFound", err)
	}
}
