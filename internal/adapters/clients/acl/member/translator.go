package member

import (
	"strings"

	domainmember "github.com/jsamuelsen11/stuti-api/internal/domain/member"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// ToDomainMember converts a downstream member to the domain type. An MBTI
// the domain does not recognise is dropped rather than rejected.
func ToDomainMember(dto *MemberDTO) domainmember.Member {
	mbti := studygroup.MBTI(strings.ToUpper(strings.TrimSpace(dto.MBTI)))
	if !mbti.IsValid() {
		mbti = ""
	}
	return domainmember.Member{
		ID:       dto.ID,
		Nickname: dto.Nickname,
		MBTI:     mbti,
	}
}

// IsActive reports whether the downstream member can act in this service.
func IsActive(dto *MemberDTO) bool {
	return !strings.EqualFold(dto.Status, StatusWithdrawn)
}
