package redis

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

type cachedMembership struct {
	MemberID  int64     `json:"memberId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// cachedGroup is the JSON shape stored in Redis. It is private to the cache
// so the domain type carries no wire tags.
type cachedGroup struct {
	ID               int64              `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	ImageURL         string             `json:"imageUrl"`
	Topic            string             `json:"topic"`
	IsOnline         bool               `json:"isOnline"`
	Region           string             `json:"region"`
	PreferredMBTIs   []string           `json:"preferredMBTIs"`
	NumberOfRecruits int                `json:"numberOfRecruits"`
	StartDateTime    time.Time          `json:"startDateTime"`
	EndDateTime      time.Time          `json:"endDateTime"`
	LeaderID         int64              `json:"leaderId"`
	Members          []cachedMembership `json:"members"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func encode(g *studygroup.StudyGroup) ([]byte, error) {
	c := cachedGroup{
		ID:               g.ID,
		Title:            g.Title,
		Description:      g.Description,
		ImageURL:         g.ImageURL,
		Topic:            string(g.Topic),
		IsOnline:         g.IsOnline,
		Region:           string(g.Region),
		NumberOfRecruits: g.NumberOfRecruits,
		StartDateTime:    g.StartDateTime,
		EndDateTime:      g.EndDateTime,
		LeaderID:         g.LeaderID,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
	for _, m := range g.PreferredMBTIs {
		c.PreferredMBTIs = append(c.PreferredMBTIs, string(m))
	}
	for _, m := range g.Members {
		c.Members = append(c.Members, cachedMembership{MemberID: m.MemberID, Role: string(m.Role), CreatedAt: m.CreatedAt})
	}
	return json.Marshal(c)
}

func decode(raw []byte) (*studygroup.StudyGroup, error) {
	var c cachedGroup
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	g := &studygroup.StudyGroup{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		ImageURL:         c.ImageURL,
		Topic:            studygroup.Topic(c.Topic),
		IsOnline:         c.IsOnline,
		Region:           studygroup.Region(c.Region),
		NumberOfRecruits: c.NumberOfRecruits,
		StartDateTime:    c.StartDateTime.UTC(),
		EndDateTime:      c.EndDateTime.UTC(),
		LeaderID:         c.LeaderID,
		CreatedAt:        c.CreatedAt.UTC(),
		UpdatedAt:        c.UpdatedAt.UTC(),
	}
	for _, m := range c.PreferredMBTIs {
		g.PreferredMBTIs = append(g.PreferredMBTIs, studygroup.MBTI(m))
	}
	for _, m := range c.Members {
		g.Members = append(g.Members, studygroup.Membership{
			StudyGroupID: c.ID,
			MemberID:     m.MemberID,
			Role:         studygroup.Role(m.Role),
			CreatedAt:    m.CreatedAt.UTC(),
		})
	}
	return g, nil
}
