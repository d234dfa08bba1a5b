package studygroup

import (
	"io"
	"time"
)

// ImageFile is an uploaded image as received at the edge. Content is read
// once by the image store.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateCommand carries everything needed to create a study group led by
// MemberID.
type CreateCommand struct {
	MemberID         int64
	Title            string
	Description      string
	Image            *ImageFile
	Topic            Topic
	IsOnline         bool
	Region           Region
	PreferredMBTIs   []MBTI
	NumberOfRecruits int
	StartDateTime    time.Time
	EndDateTime      time.Time
}

// ToStudyGroup builds the entity to persist. ID and ImageURL are assigned
// later.
func (c CreateCommand) ToStudyGroup(now time.Time) *StudyGroup {
	mbtis := make([]MBTI, len(c.PreferredMBTIs))
	copy(mbtis, c.PreferredMBTIs)

	return &StudyGroup{
		Title:            c.Title,
		Description:      c.Description,
		Topic:            c.Topic,
		IsOnline:         c.IsOnline,
		Region:           c.Region,
		PreferredMBTIs:   mbtis,
		NumberOfRecruits: c.NumberOfRecruits,
		StartDateTime:    c.StartDateTime,
		EndDateTime:      c.EndDateTime,
		LeaderID:         c.MemberID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// UpdateCommand changes the mutable fields of a study group. Nil means
// "leave unchanged".
type UpdateCommand struct {
	MemberID     int64
	StudyGroupID int64
	Title        *string
	Description  *string
	Image        *ImageFile
}

// ApplyCommand asks for MemberID to join StudyGroupID as an applicant.
type ApplyCommand struct {
	MemberID     int64
	StudyGroupID int64
}

// DeleteCommand asks for StudyGroupID to be removed by its leader.
type DeleteCommand struct {
	MemberID     int64
	StudyGroupID int64
}

// IDResponse is the result of every write operation.
type IDResponse struct {
	StudyGroupID int64
}
