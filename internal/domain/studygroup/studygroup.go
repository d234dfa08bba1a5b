package studygroup

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
)

// Field limits enforced by Validate.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 1000
	MinRecruits          = 1
	MaxRecruits          = 30
)

// StudyGroup is a member-led group recruiting other members around a topic.
type StudyGroup struct {
	ID               int64
	Title            string
	Description      string
	ImageURL         string
	Topic            Topic
	IsOnline         bool
	Region           Region
	PreferredMBTIs   []MBTI
	NumberOfRecruits int
	StartDateTime    time.Time
	EndDateTime      time.Time
	LeaderID         int64
	Members          []Membership
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks business rules for the StudyGroup entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. ImageURL is not checked; it is assigned after upload.
func (g *StudyGroup) Validate() error {
	fields := make(map[string]string)

	validateText(fields, "title", g.Title, MaxTitleLength)
	validateText(fields, "description", g.Description, MaxDescriptionLength)

	if !g.Topic.IsValid() {
		fields["topic"] = fmt.Sprintf("invalid: %q", g.Topic)
	}
	switch {
	case !g.Region.IsValid():
		fields["region"] = fmt.Sprintf("invalid: %q", g.Region)
	case g.IsOnline && g.Region != RegionOnline:
		fields["region"] = fmt.Sprintf("must be %s for online groups, got %s", RegionOnline, g.Region)
	}
	for _, m := range g.PreferredMBTIs {
		if !m.IsValid() {
			fields["preferredMBTIs"] = fmt.Sprintf("invalid: %q", m)
			break
		}
	}
	if g.NumberOfRecruits < MinRecruits || g.NumberOfRecruits > MaxRecruits {
		fields["numberOfRecruits"] = fmt.Sprintf("must be %d-%d, got %d", MinRecruits, MaxRecruits, g.NumberOfRecruits)
	}
	if g.StartDateTime.IsZero() {
		fields["startDateTime"] = domain.MsgRequired
	}
	if g.EndDateTime.IsZero() {
		fields["endDateTime"] = domain.MsgRequired
	}
	if !g.StartDateTime.IsZero() && !g.EndDateTime.IsZero() && !g.StartDateTime.Before(g.EndDateTime) {
		fields["endDateTime"] = "must be after startDateTime"
	}
	if g.LeaderID <= 0 {
		fields["leaderId"] = fmt.Sprintf("must be positive, got %d", g.LeaderID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateText(fields map[string]string, name, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		fields[name] = domain.MsgRequired
		return
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		fields[name] = fmt.Sprintf("must be at most %d characters, got %d", maxLen, n)
	}
}

// IsLeader reports whether memberID leads this group.
func (g *StudyGroup) IsLeader(memberID int64) bool {
	return g.LeaderID == memberID
}

// MembershipOf returns the relation memberID holds to this group, if any.
func (g *StudyGroup) MembershipOf(memberID int64) (Membership, bool) {
	for _, m := range g.Members {
		if m.MemberID == memberID {
			return m, true
		}
	}
	return Membership{}, false
}

// HasRelation reports whether memberID already leads, belongs to, or has
// applied to this group.
func (g *StudyGroup) HasRelation(memberID int64) bool {
	if g.IsLeader(memberID) {
		return true
	}
	_, ok := g.MembershipOf(memberID)
	return ok
}

// LeaderMembership builds the relation recorded for the leader on creation.
func (g *StudyGroup) LeaderMembership() Membership {
	return Membership{
		StudyGroupID: g.ID,
		MemberID:     g.LeaderID,
		Role:         RoleLeader,
		CreatedAt:    g.CreatedAt,
	}
}

// Apply records memberID as an applicant. It does not check for an existing
// relation; callers use HasRelation first.
func (g *StudyGroup) Apply(memberID int64, now time.Time) Membership {
	m := Membership{
		StudyGroupID: g.ID,
		MemberID:     memberID,
		Role:         RoleApplicant,
		CreatedAt:    now,
	}
	g.Members = append(g.Members, m)
	return m
}

// Changes is the set of mutable fields an update may touch. Nil fields are
// left as they are.
type Changes struct {
	Title       *string
	Description *string
	ImageURL    *string
}

// Validate checks the supplied text fields against the same limits as
// StudyGroup.Validate.
func (c Changes) Validate() error {
	fields := make(map[string]string)
	if c.Title != nil {
		validateText(fields, "title", *c.Title, MaxTitleLength)
	}
	if c.Description != nil {
		validateText(fields, "description", *c.Description, MaxDescriptionLength)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyChanges overwrites the fields in c that differ from the current
// values. It reports whether anything changed; UpdatedAt moves only then.
func (g *StudyGroup) ApplyChanges(c Changes, now time.Time) bool {
	changed := false
	if c.Title != nil && *c.Title != g.Title {
		g.Title = *c.Title
		changed = true
	}
	if c.Description != nil && *c.Description != g.Description {
		g.Description = *c.Description
		changed = true
	}
	if c.ImageURL != nil && *c.ImageURL != g.ImageURL {
		g.ImageURL = *c.ImageURL
		changed = true
	}
	if changed {
		g.UpdatedAt = now
	}
	return changed
}
