// Package member implements the Anti-Corruption Layer translators for the
// downstream member API.
package member

// MemberDTO matches the downstream Member schema.
type MemberDTO struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	MBTI     string `json:"mbti,omitempty"`
	Status   string `json:"status"`
}

// StatusWithdrawn marks a member who left the platform. Withdrawn members
// are treated as absent.
const StatusWithdrawn = "WITHDRAWN"
