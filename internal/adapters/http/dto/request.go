package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

const (
	msgMustNotEmpty = "must not be empty"
	msgNotImage     = "must be an image"
)

// Multipart form field names.
const (
	FieldImageFile        = "imageFile"
	FieldTitle            = "title"
	FieldTopic            = "topic"
	FieldIsOnline         = "isOnline"
	FieldRegion           = "region"
	FieldPreferredMBTIs   = "preferredMBTIs"
	FieldNumberOfRecruits = "numberOfRecruits"
	FieldStartDateTime    = "startDateTime"
	FieldEndDateTime      = "endDateTime"
	FieldDescription      = "description"
)

// localDateTime is accepted alongside RFC 3339 and read as UTC.
const localDateTime = "2006-01-02T15:04:05"

// CreateStudyGroupRequest is the multipart body for creating a study group.
// Text fields are parsed by NewCreateStudyGroupRequest; parse failures are
// kept and reported by Validate together with the rule checks.
type CreateStudyGroupRequest struct {
	Title            string
	Topic            string
	IsOnline         bool
	Region           string
	PreferredMBTIs   []string
	NumberOfRecruits int
	StartDateTime    time.Time
	EndDateTime      time.Time
	Description      string
	ImageFile        *studygroup.ImageFile

	parseErrors map[string]string
}

// NewCreateStudyGroupRequest reads the text fields of form. image may be nil.
func NewCreateStudyGroupRequest(form url.Values, image *studygroup.ImageFile) *CreateStudyGroupRequest {
	req := &CreateStudyGroupRequest{
		Title:          form.Get(FieldTitle),
		Topic:          strings.TrimSpace(form.Get(FieldTopic)),
		Region:         strings.TrimSpace(form.Get(FieldRegion)),
		PreferredMBTIs: splitList(form[FieldPreferredMBTIs]),
		Description:    form.Get(FieldDescription),
		ImageFile:      image,
		parseErrors:    make(map[string]string),
	}

	if raw := strings.TrimSpace(form.Get(FieldIsOnline)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			req.parseErrors[FieldIsOnline] = fmt.Sprintf("must be true or false, got %q", raw)
		}
		req.IsOnline = v
	}
	if raw := strings.TrimSpace(form.Get(FieldNumberOfRecruits)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			req.parseErrors[FieldNumberOfRecruits] = fmt.Sprintf("must be an integer, got %q", raw)
		}
		req.NumberOfRecruits = v
	}
	req.StartDateTime = req.parseTime(form, FieldStartDateTime)
	req.EndDateTime = req.parseTime(form, FieldEndDateTime)

	return req
}

func (r *CreateStudyGroupRequest) parseTime(form url.Values, field string) time.Time {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return time.Time{}
	}
	t, err := ParseDateTime(raw)
	if err != nil {
		r.parseErrors[field] = fmt.Sprintf("must be RFC 3339 or %s, got %q", localDateTime, raw)
	}
	return t
}

// ParseDateTime accepts RFC 3339 or a zone-less local date-time read as UTC.
func ParseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(localDateTime, raw, time.UTC)
}

// splitList flattens repeated and comma separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Validate checks the request shape. Returns a *domain.ValidationError if
// any checks fail.
func (r *CreateStudyGroupRequest) Validate() error {
	fields := make(map[string]string, len(r.parseErrors))
	for k, v := range r.parseErrors {
		fields[k] = v
	}
	setIfAbsent := func(field, msg string) {
		if _, ok := fields[field]; !ok {
			fields[field] = msg
		}
	}

	if msg := checkText(r.Title, studygroup.MaxTitleLength); msg != "" {
		setIfAbsent(FieldTitle, msg)
	}
	if msg := checkText(r.Description, studygroup.MaxDescriptionLength); msg != "" {
		setIfAbsent(FieldDescription, msg)
	}
	if !studygroup.Topic(r.Topic).IsValid() {
		setIfAbsent(FieldTopic, invalidOrRequired(r.Topic))
	}
	if !r.IsOnline && !studygroup.Region(r.Region).IsValid() {
		setIfAbsent(FieldRegion, invalidOrRequired(r.Region))
	}
	for _, m := range r.PreferredMBTIs {
		if !studygroup.MBTI(m).IsValid() {
			setIfAbsent(FieldPreferredMBTIs, fmt.Sprintf("invalid: %q", m))
			break
		}
	}
	if r.NumberOfRecruits < studygroup.MinRecruits || r.NumberOfRecruits > studygroup.MaxRecruits {
		setIfAbsent(FieldNumberOfRecruits, fmt.Sprintf("must be %d-%d, got %d",
			studygroup.MinRecruits, studygroup.MaxRecruits, r.NumberOfRecruits))
	}
	if r.StartDateTime.IsZero() {
		setIfAbsent(FieldStartDateTime, domain.MsgRequired)
	}
	if r.EndDateTime.IsZero() {
		setIfAbsent(FieldEndDateTime, domain.MsgRequired)
	}
	if !r.StartDateTime.IsZero() && !r.EndDateTime.IsZero() && !r.StartDateTime.Before(r.EndDateTime) {
		setIfAbsent(FieldEndDateTime, "must be after startDateTime")
	}
	if msg := checkImage(r.ImageFile, true); msg != "" {
		setIfAbsent(FieldImageFile, msg)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateStudyGroupRequest is the multipart body for updating a study group.
// Every field is optional; nil means "do not change this field".
type UpdateStudyGroupRequest struct {
	Title       *string
	Description *string
	ImageFile   *studygroup.ImageFile
}

// NewUpdateStudyGroupRequest reads the fields present in form.
func NewUpdateStudyGroupRequest(form url.Values, image *studygroup.ImageFile) *UpdateStudyGroupRequest {
	req := &UpdateStudyGroupRequest{ImageFile: image}
	if v, ok := form[FieldTitle]; ok && len(v) > 0 {
		req.Title = &v[0]
	}
	if v, ok := form[FieldDescription]; ok && len(v) > 0 {
		req.Description = &v[0]
	}
	return req
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateStudyGroupRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil {
		if msg := checkText(*r.Title, studygroup.MaxTitleLength); msg != "" {
			fields[FieldTitle] = msg
		}
	}
	if r.Description != nil {
		if msg := checkText(*r.Description, studygroup.MaxDescriptionLength); msg != "" {
			fields[FieldDescription] = msg
		}
	}
	if msg := checkImage(r.ImageFile, false); msg != "" {
		fields[FieldImageFile] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkText(v string, maxLen int) string {
	if strings.TrimSpace(v) == "" {
		return msgMustNotEmpty
	}
	if n := utf8.RuneCountInString(v); n > maxLen {
		return fmt.Sprintf("must be at most %d characters, got %d", maxLen, n)
	}
	return ""
}

func checkImage(img *studygroup.ImageFile, required bool) string {
	if img == nil {
		if required {
			return domain.MsgRequired
		}
		return ""
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return msgNotImage
	}
	return ""
}

func invalidOrRequired(v string) string {
	if v == "" {
		return domain.MsgRequired
	}
	return fmt.Sprintf("invalid: %q", v)
}
