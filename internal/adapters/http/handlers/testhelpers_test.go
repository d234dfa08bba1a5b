package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

const testMaxUploadBytes = 1 << 20

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validStudyGroup() studygroup.StudyGroup {
	return studygroup.StudyGroup{
		ID:               1,
		Title:            "title",
		Description:      "this is new study group",
		ImageURL:         "http://images.local/study-groups/a.png",
		Topic:            studygroup.TopicAI,
		Region:           studygroup.RegionSeoul,
		PreferredMBTIs:   []studygroup.MBTI{studygroup.MBTIENFJ},
		NumberOfRecruits: 5,
		StartDateTime:    testTime,
		EndDateTime:      testTime.AddDate(0, 3, 0),
		LeaderID:         1,
		Members:          []studygroup.Membership{{StudyGroupID: 1, MemberID: 1, Role: studygroup.RoleLeader}},
		CreatedAt:        testTime,
		UpdatedAt:        testTime,
	}
}

func validCreateFields() map[string][]string {
	return map[string][]string{
		"title":            {"title"},
		"topic":            {"AI"},
		"isOnline":         {"false"},
		"region":           {"SEOUL"},
		"preferredMBTIs":   {"ENFJ", "INTJ"},
		"numberOfRecruits": {"5"},
		"startDateTime":    {"2026-11-01T10:00:00"},
		"endDateTime":      {"2027-02-01T10:00:00"},
		"description":      {"this is new study group"},
	}
}

// multipartBody encodes fields and, when image is non-nil, an imageFile part.
func multipartBody(t *testing.T, fields map[string][]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(name, v); err != nil {
				t.Fatalf("WriteField: %v", err)
			}
		}
	}
	if image != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="imageFile"; filename="test.png"`)
		h.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func multipartRequest(t *testing.T, method, target string, fields map[string][]string, image []byte) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, fields, image)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
