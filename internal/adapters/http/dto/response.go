// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// StudyGroupIDResponse is returned by every write endpoint.
type StudyGroupIDResponse struct {
	StudyGroupID int64 `json:"studyGroupId"`
}

// ToStudyGroupIDResponse converts the service result to its wire form.
func ToStudyGroupIDResponse(r studygroup.IDResponse) StudyGroupIDResponse {
	return StudyGroupIDResponse{StudyGroupID: r.StudyGroupID}
}

// MembershipResponse is one member's relation in a StudyGroupResponse.
type MembershipResponse struct {
	MemberID int64  `json:"memberId"`
	Role     string `json:"role"`
}

// StudyGroupResponse represents a single study group in HTTP responses.
type StudyGroupResponse struct {
	StudyGroupID     int64                `json:"studyGroupId"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	ImageURL         string               `json:"imageUrl"`
	Topic            string               `json:"topic"`
	IsOnline         bool                 `json:"isOnline"`
	Region           string               `json:"region"`
	PreferredMBTIs   []string             `json:"preferredMBTIs"`
	NumberOfRecruits int                  `json:"numberOfRecruits"`
	StartDateTime    string               `json:"startDateTime"`
	EndDateTime      string               `json:"endDateTime"`
	LeaderID         int64                `json:"leaderId"`
	Members          []MembershipResponse `json:"members"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
}

// ToStudyGroupResponse converts a domain StudyGroup to an HTTP response DTO.
func ToStudyGroupResponse(g *studygroup.StudyGroup) StudyGroupResponse {
	mbtis := make([]string, len(g.PreferredMBTIs))
	for i, m := range g.PreferredMBTIs {
		mbtis[i] = m.String()
	}
	members := make([]MembershipResponse, len(g.Members))
	for i, m := range g.Members {
		members[i] = MembershipResponse{MemberID: m.MemberID, Role: m.Role.String()}
	}

	return StudyGroupResponse{
		StudyGroupID:     g.ID,
		Title:            g.Title,
		Description:      g.Description,
		ImageURL:         g.ImageURL,
		Topic:            g.Topic.String(),
		IsOnline:         g.IsOnline,
		Region:           g.Region.String(),
		PreferredMBTIs:   mbtis,
		NumberOfRecruits: g.NumberOfRecruits,
		StartDateTime:    g.StartDateTime.Format(time.RFC3339),
		EndDateTime:      g.EndDateTime.Format(time.RFC3339),
		LeaderID:         g.LeaderID,
		Members:          members,
		CreatedAt:        g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        g.UpdatedAt.Format(time.RFC3339),
	}
}
