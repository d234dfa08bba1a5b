package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// Common validation messages used in ValidationError.Fields.
const (
	MsgRequired = "is required"
	MsgBlank    = "must not be blank"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Reason distinguishes members of the study group error family.
type Reason string

// Study group error reasons.
const (
	ReasonStudyGroupNotFound Reason = "STUDY_GROUP_NOT_FOUND"
	ReasonNotLeader          Reason = "NOT_LEADER"
	ReasonAlreadyApplied     Reason = "ALREADY_APPLIED"
)

// StudyGroupError is raised by the study group service when a business rule
// rejects an operation. Each reason unwraps to one sentinel so the HTTP edge
// can map it with errors.Is, while callers that care about the exact rule can
// inspect Reason via errors.As.
type StudyGroupError struct {
	Reason       Reason
	StudyGroupID int64
	MemberID     int64
}

// NotFoundStudyGroup reports that no live study group has the given id.
func NotFoundStudyGroup(studyGroupID int64) *StudyGroupError {
	return &StudyGroupError{Reason: ReasonStudyGroupNotFound, StudyGroupID: studyGroupID}
}

// NotLeader reports that memberID tried a leader-only operation on the group.
func NotLeader(studyGroupID, memberID int64) *StudyGroupError {
	return &StudyGroupError{Reason: ReasonNotLeader, StudyGroupID: studyGroupID, MemberID: memberID}
}

// AlreadyApplied reports that memberID already holds a relation to the group.
func AlreadyApplied(studyGroupID, memberID int64) *StudyGroupError {
	return &StudyGroupError{Reason: ReasonAlreadyApplied, StudyGroupID: studyGroupID, MemberID: memberID}
}

func (e *StudyGroupError) Error() string {
	switch e.Reason {
	case ReasonStudyGroupNotFound:
		return fmt.Sprintf("study group %d not found", e.StudyGroupID)
	case ReasonNotLeader:
		return fmt.Sprintf("member %d is not the leader of study group %d", e.MemberID, e.StudyGroupID)
	case ReasonAlreadyApplied:
		return fmt.Sprintf("member %d already applied to study group %d", e.MemberID, e.StudyGroupID)
	default:
		return fmt.Sprintf("study group %d: %s", e.StudyGroupID, e.Reason)
	}
}

func (e *StudyGroupError) Unwrap() error {
	switch e.Reason {
	case ReasonStudyGroupNotFound:
		return ErrNotFound
	case ReasonNotLeader:
		return ErrForbidden
	case ReasonAlreadyApplied:
		return ErrConflict
	default:
		return nil
	}
}
