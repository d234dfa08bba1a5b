package studygroup

// MBTI is a personality type a study group prefers in its recruits.
type MBTI string

const (
	MBTIISTJ MBTI = "ISTJ"
	MBTIISFJ MBTI = "ISFJ"
	MBTIINFJ MBTI = "INFJ"
	MBTIINTJ MBTI = "INTJ"
	MBTIISTP MBTI = "ISTP"
	MBTIISFP MBTI = "ISFP"
	MBTIINFP MBTI = "INFP"
	MBTIINTP MBTI = "INTP"
	MBTIESTP MBTI = "ESTP"
	MBTIESFP MBTI = "ESFP"
	MBTIENFP MBTI = "ENFP"
	MBTIENTP MBTI = "ENTP"
	MBTIESTJ MBTI = "ESTJ"
	MBTIESFJ MBTI = "ESFJ"
	MBTIENFJ MBTI = "ENFJ"
	MBTIENTJ MBTI = "ENTJ"
)

// IsValid returns true if the type is one of the sixteen defined constants.
func (m MBTI) IsValid() bool {
	switch m {
	case MBTIISTJ, MBTIISFJ, MBTIINFJ, MBTIINTJ,
		MBTIISTP, MBTIISFP, MBTIINFP, MBTIINTP,
		MBTIESTP, MBTIESFP, MBTIENFP, MBTIENTP,
		MBTIESTJ, MBTIESFJ, MBTIENFJ, MBTIENTJ:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m MBTI) String() string {
	return string(m)
}
