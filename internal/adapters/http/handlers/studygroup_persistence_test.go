package handlers_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/handlers"
	memrepo "github.com/jsamuelsen11/stuti-api/internal/adapters/persistence/memory"
	memstore "github.com/jsamuelsen11/stuti-api/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stuti-api/internal/app"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// TestCreateStudyGroup_PersistedRegion drives the form through the mapper and
// a real service, then reads the stored group back.
func TestCreateStudyGroup_PersistedRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isOnline string
		region   string
		want     studygroup.Region
	}{
		{"offline keeps region", "false", "SEOUL", studygroup.RegionSeoul},
		{"online forces ONLINE", "true", "BUSAN", studygroup.RegionOnline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := memrepo.NewRepository()
			svc := app.NewStudyGroupService(repo, memstore.NewStore("http://images.test"), slog.New(slog.DiscardHandler))
			h := handlers.NewStudyGroupHandler(svc, testMaxUploadBytes)

			fields := validCreateFields()
			fields["isOnline"] = []string{tt.isOnline}
			fields["region"] = []string{tt.region}

			rec := httptest.NewRecorder()
			h.CreateStudyGroup(rec, multipartRequest(t, http.MethodPost, handlers.StudyGroupsPath, fields, pngHeader), actorID)
			requireStatus(t, rec, http.StatusCreated)

			resp := decodeJSON[dto.StudyGroupIDResponse](t, rec)
			g, err := repo.FindStudyGroupByID(context.Background(), resp.StudyGroupID)
			if err != nil {
				t.Fatalf("FindStudyGroupByID() error = %v", err)
			}
			if g.Region != tt.want {
				t.Errorf("stored Region = %q, want %q", g.Region, tt.want)
			}
			if g.Title != "title" || g.Description != "this is new study group" {
				t.Errorf("stored title/description = %q/%q", g.Title, g.Description)
			}
		})
	}
}
