package studygroup

// Topic is the subject a study group is organized around.
type Topic string

const (
	TopicAI       Topic = "AI"
	TopicBackend  Topic = "BACKEND"
	TopicFrontend Topic = "FRONTEND"
	TopicMobile   Topic = "MOBILE"
	TopicDevOps   Topic = "DEVOPS"
	TopicData     Topic = "DATA"
	TopicSecurity Topic = "SECURITY"
	TopicGame     Topic = "GAME"
	TopicEmbedded Topic = "EMBEDDED"
	TopicEtc      Topic = "ETC"
)

// IsValid returns true if the topic is one of the defined constants.
func (t Topic) IsValid() bool {
	switch t {
	case TopicAI, TopicBackend, TopicFrontend, TopicMobile, TopicDevOps,
		TopicData, TopicSecurity, TopicGame, TopicEmbedded, TopicEtc:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Topic) String() string {
	return string(t)
}
