package studygroup

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
)

func strPtr(s string) *string { return &s }

// requireValidationField asserts err wraps domain.ErrValidation and carries
// the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validGroup() *StudyGroup {
	start := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	return &StudyGroup{
		Title:            "title",
		Description:      "this is new study group",
		Topic:            TopicAI,
		Region:           RegionSeoul,
		PreferredMBTIs:   []MBTI{MBTIINFP, MBTIENTJ},
		NumberOfRecruits: 5,
		StartDateTime:    start,
		EndDateTime:      start.Add(30 * 24 * time.Hour),
		LeaderID:         1,
	}
}

func TestStudyGroup_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(g *StudyGroup)
		field  string
	}{
		{name: "blank title", modify: func(g *StudyGroup) { g.Title = "   " }, field: "title"},
		{name: "title too long", modify: func(g *StudyGroup) { g.Title = strings.Repeat("가", MaxTitleLength+1) }, field: "title"},
		{name: "empty description", modify: func(g *StudyGroup) { g.Description = "" }, field: "description"},
		{name: "invalid topic", modify: func(g *StudyGroup) { g.Topic = "COOKING" }, field: "topic"},
		{name: "invalid region", modify: func(g *StudyGroup) { g.Region = "MARS" }, field: "region"},
		{name: "online group with offline region", modify: func(g *StudyGroup) { g.IsOnline = true }, field: "region"},
		{name: "invalid mbti", modify: func(g *StudyGroup) { g.PreferredMBTIs = []MBTI{"XXXX"} }, field: "preferredMBTIs"},
		{name: "zero recruits", modify: func(g *StudyGroup) { g.NumberOfRecruits = 0 }, field: "numberOfRecruits"},
		{name: "too many recruits", modify: func(g *StudyGroup) { g.NumberOfRecruits = MaxRecruits + 1 }, field: "numberOfRecruits"},
		{name: "missing start", modify: func(g *StudyGroup) { g.StartDateTime = time.Time{} }, field: "startDateTime"},
		{name: "end before start", modify: func(g *StudyGroup) { g.EndDateTime = g.StartDateTime.Add(-time.Hour) }, field: "endDateTime"},
		{name: "missing leader", modify: func(g *StudyGroup) { g.LeaderID = 0 }, field: "leaderId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGroup()
			tt.modify(g)
			requireValidationField(t, g.Validate(), tt.field)
		})
	}
}

func TestStudyGroup_Validate_Valid(t *testing.T) {
	t.Parallel()

	if err := validGroup().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	online := validGroup()
	online.IsOnline = true
	online.Region = RegionOnline
	if err := online.Validate(); err != nil {
		t.Errorf("Validate() online = %v, want nil", err)
	}

	// Title limit counts characters, not bytes.
	korean := validGroup()
	korean.Title = strings.Repeat("가", MaxTitleLength)
	if err := korean.Validate(); err != nil {
		t.Errorf("Validate() 50 multibyte chars = %v, want nil", err)
	}
}

func TestStudyGroup_HasRelation(t *testing.T) {
	t.Parallel()

	g := validGroup()
	g.ID = 10
	g.Members = []Membership{g.LeaderMembership()}

	if !g.HasRelation(1) {
		t.Error("HasRelation(leader) = false, want true")
	}
	if g.HasRelation(2) {
		t.Error("HasRelation(2) = true before apply, want false")
	}

	m := g.Apply(2, time.Now())
	if m.Role != RoleApplicant || m.StudyGroupID != 10 {
		t.Errorf("Apply() = %+v, want applicant of group 10", m)
	}
	if !g.HasRelation(2) {
		t.Error("HasRelation(2) = false after apply, want true")
	}
	if !g.IsLeader(1) || g.IsLeader(2) {
		t.Error("IsLeader mismatch")
	}
}

func TestStudyGroup_ApplyChanges(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		changes     Changes
		wantChanged bool
		wantTitle   string
		wantImage   string
	}{
		{
			name:        "nothing supplied",
			changes:     Changes{},
			wantChanged: false,
			wantTitle:   "title",
			wantImage:   "http://img/old.png",
		},
		{
			name:        "same values",
			changes:     Changes{Title: strPtr("title"), Description: strPtr("this is new study group")},
			wantChanged: false,
			wantTitle:   "title",
			wantImage:   "http://img/old.png",
		},
		{
			name:        "new title only",
			changes:     Changes{Title: strPtr("renamed")},
			wantChanged: true,
			wantTitle:   "renamed",
			wantImage:   "http://img/old.png",
		},
		{
			name:        "new image only",
			changes:     Changes{ImageURL: strPtr("http://img/new.png")},
			wantChanged: true,
			wantTitle:   "title",
			wantImage:   "http://img/new.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGroup()
			g.ImageURL = "http://img/old.png"

			changed := g.ApplyChanges(tt.changes, now)
			if changed != tt.wantChanged {
				t.Errorf("ApplyChanges() = %v, want %v", changed, tt.wantChanged)
			}
			if g.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", g.Title, tt.wantTitle)
			}
			if g.ImageURL != tt.wantImage {
				t.Errorf("ImageURL = %q, want %q", g.ImageURL, tt.wantImage)
			}
			if changed != g.UpdatedAt.Equal(now) {
				t.Errorf("UpdatedAt = %v, changed = %v", g.UpdatedAt, changed)
			}
		})
	}
}

func TestChanges_Validate(t *testing.T) {
	t.Parallel()

	if err := (Changes{}).Validate(); err != nil {
		t.Errorf("Validate() empty = %v, want nil", err)
	}
	if err := (Changes{Title: strPtr("update title")}).Validate(); err != nil {
		t.Errorf("Validate() valid title = %v, want nil", err)
	}
	requireValidationField(t, Changes{Title: strPtr(" ")}.Validate(), "title")
	requireValidationField(t, Changes{Description: strPtr(strings.Repeat("a", MaxDescriptionLength+1))}.Validate(), "description")
}

func TestCreateCommand_ToStudyGroup(t *testing.T) {
	t.Parallel()

	now := time.Now()
	mbtis := []MBTI{MBTIISTJ}
	cmd := CreateCommand{
		MemberID:         3,
		Title:            "title",
		Description:      "desc",
		Topic:            TopicBackend,
		Region:           RegionBusan,
		PreferredMBTIs:   mbtis,
		NumberOfRecruits: 4,
	}

	g := cmd.ToStudyGroup(now)
	if g.LeaderID != 3 || g.Region != RegionBusan || g.NumberOfRecruits != 4 {
		t.Errorf("ToStudyGroup() = %+v", g)
	}
	if !g.CreatedAt.Equal(now) || !g.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want %v", g.CreatedAt, g.UpdatedAt, now)
	}

	mbtis[0] = MBTIENFP
	if g.PreferredMBTIs[0] != MBTIISTJ {
		t.Error("ToStudyGroup() shares PreferredMBTIs backing array with command")
	}
}

func TestValueTypes_IsValid(t *testing.T) {
	t.Parallel()

	if !RegionJeju.IsValid() || Region("").IsValid() {
		t.Error("Region.IsValid mismatch")
	}
	if !TopicEtc.IsValid() || Topic("ai").IsValid() {
		t.Error("Topic.IsValid mismatch")
	}
	if !MBTIENTJ.IsValid() || MBTI("ABCD").IsValid() {
		t.Error("MBTI.IsValid mismatch")
	}
	if !RoleApplicant.IsValid() || Role("OWNER").IsValid() {
		t.Error("Role.IsValid mismatch")
	}
}
