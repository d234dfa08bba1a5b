package studygroup

import "time"

// Role is a member's standing within one study group.
type Role string

const (
	RoleLeader    Role = "LEADER"
	RoleMember    Role = "MEMBER"
	RoleApplicant Role = "APPLICANT"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleLeader, RoleMember, RoleApplicant:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Membership relates a member to a study group. At most one exists per
// (StudyGroupID, MemberID).
type Membership struct {
	StudyGroupID int64
	MemberID     int64
	Role         Role
	CreatedAt    time.Time
}
