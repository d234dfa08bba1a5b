// Package member holds the slice of a member's profile this service reads
// from the member API.
package member

import "github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"

// Member is a registered user who may lead or apply to study groups.
type Member struct {
	ID       int64
	Nickname string
	MBTI     studygroup.MBTI
}
