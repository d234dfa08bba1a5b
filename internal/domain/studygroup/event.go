package studygroup

import "time"

// EventType names a study group lifecycle event on the wire.
type EventType string

const (
	EventCreated EventType = "study_group.created"
	EventApplied EventType = "study_group.applied"
	EventUpdated EventType = "study_group.updated"
	EventDeleted EventType = "study_group.deleted"
)

// Event is published after a lifecycle change commits.
type Event struct {
	Type         EventType `json:"type"`
	StudyGroupID int64     `json:"studyGroupId"`
	MemberID     int64     `json:"memberId"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewEvent stamps an event of type t.
func NewEvent(t EventType, studyGroupID, memberID int64, now time.Time) Event {
	return Event{Type: t, StudyGroupID: studyGroupID, MemberID: memberID, OccurredAt: now.UTC()}
}
