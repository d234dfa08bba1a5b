package handlers

import (
	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// toCreateCommand builds a create command for actorID. An online group is
// always placed in RegionOnline; otherwise the requested region is kept as is.
func toCreateCommand(actorID int64, req *dto.CreateStudyGroupRequest) studygroup.CreateCommand {
	region := studygroup.Region(req.Region)
	if req.IsOnline {
		region = studygroup.RegionOnline
	}

	mbtis := make([]studygroup.MBTI, len(req.PreferredMBTIs))
	for i, m := range req.PreferredMBTIs {
		mbtis[i] = studygroup.MBTI(m)
	}

	return studygroup.CreateCommand{
		MemberID:         actorID,
		Title:            req.Title,
		Description:      req.Description,
		Image:            req.ImageFile,
		Topic:            studygroup.Topic(req.Topic),
		IsOnline:         req.IsOnline,
		Region:           region,
		PreferredMBTIs:   mbtis,
		NumberOfRecruits: req.NumberOfRecruits,
		StartDateTime:    req.StartDateTime,
		EndDateTime:      req.EndDateTime,
	}
}

func toUpdateCommand(actorID, groupID int64, req *dto.UpdateStudyGroupRequest) studygroup.UpdateCommand {
	return studygroup.UpdateCommand{
		MemberID:     actorID,
		StudyGroupID: groupID,
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.ImageFile,
	}
}

func toApplyCommand(actorID, groupID int64) studygroup.ApplyCommand {
	return studygroup.ApplyCommand{MemberID: actorID, StudyGroupID: groupID}
}

func toDeleteCommand(actorID, groupID int64) studygroup.DeleteCommand {
	return studygroup.DeleteCommand{MemberID: actorID, StudyGroupID: groupID}
}
