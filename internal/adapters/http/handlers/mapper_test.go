package handlers

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

func createRequest(isOnline bool, region string) *dto.CreateStudyGroupRequest {
	start := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	return &dto.CreateStudyGroupRequest{
		Title:            "title",
		Topic:            "AI",
		IsOnline:         isOnline,
		Region:           region,
		PreferredMBTIs:   []string{"ENFJ", "INTP"},
		NumberOfRecruits: 5,
		StartDateTime:    start,
		EndDateTime:      start.AddDate(0, 3, 0),
		Description:      "this is new study group",
		ImageFile:        &studygroup.ImageFile{Filename: "test.png", ContentType: "image/png"},
	}
}

func TestToCreateCommand_Region(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isOnline bool
		region   string
		want     studygroup.Region
	}{
		{"offline keeps region", false, "SEOUL", studygroup.RegionSeoul},
		{"online overrides region", true, "BUSAN", studygroup.RegionOnline},
		{"online without region", true, "", studygroup.RegionOnline},
		{"offline passes unknown region through", false, "ATLANTIS", studygroup.Region("ATLANTIS")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := toCreateCommand(3, createRequest(tt.isOnline, tt.region))
			if cmd.Region != tt.want {
				t.Errorf("Region = %q, want %q", cmd.Region, tt.want)
			}
		})
	}
}

func TestToCreateCommand_Fields(t *testing.T) {
	t.Parallel()

	req := createRequest(false, "SEOUL")
	cmd := toCreateCommand(3, req)

	if cmd.MemberID != 3 {
		t.Errorf("MemberID = %d, want 3", cmd.MemberID)
	}
	if cmd.Title != req.Title || cmd.Description != req.Description || cmd.Topic != studygroup.TopicAI {
		t.Errorf("text fields not copied: %+v", cmd)
	}
	if cmd.Image != req.ImageFile {
		t.Error("Image not passed through")
	}
	if len(cmd.PreferredMBTIs) != 2 || cmd.PreferredMBTIs[1] != studygroup.MBTIINTP {
		t.Errorf("PreferredMBTIs = %v", cmd.PreferredMBTIs)
	}
	if cmd.NumberOfRecruits != 5 || !cmd.StartDateTime.Equal(req.StartDateTime) || !cmd.EndDateTime.Equal(req.EndDateTime) {
		t.Errorf("schedule fields not copied: %+v", cmd)
	}
}

func TestToUpdateCommand(t *testing.T) {
	t.Parallel()

	title := "update title"
	cmd := toUpdateCommand(1, 8, &dto.UpdateStudyGroupRequest{Title: &title})

	if cmd.MemberID != 1 || cmd.StudyGroupID != 8 {
		t.Errorf("ids = %d/%d, want 1/8", cmd.MemberID, cmd.StudyGroupID)
	}
	if cmd.Title == nil || *cmd.Title != title {
		t.Errorf("Title = %v, want %q", cmd.Title, title)
	}
	if cmd.Description != nil || cmd.Image != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestToApplyAndDeleteCommand(t *testing.T) {
	t.Parallel()

	if got := toApplyCommand(2, 9); got != (studygroup.ApplyCommand{MemberID: 2, StudyGroupID: 9}) {
		t.Errorf("toApplyCommand = %+v", got)
	}
	if got := toDeleteCommand(2, 9); got != (studygroup.DeleteCommand{MemberID: 2, StudyGroupID: 9}) {
		t.Errorf("toDeleteCommand = %+v", got)
	}
}
