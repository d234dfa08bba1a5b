package handlers

import (
	"bufio"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

// maxFormMemory bounds the part of a multipart body kept in memory; the
// rest spills to temporary files.
const maxFormMemory = 8 << 20

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// multipartForm is a parsed multipart body. close releases the uploaded
// file and any temporary files backing it.
type multipartForm struct {
	values url.Values
	image  *studygroup.ImageFile
	close  func()
}

// parseMultipart reads a multipart/form-data body capped at maxBytes.
// When optional is set a request without a multipart body yields an empty
// form instead of an error.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64, optional bool) (*multipartForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(min(maxBytes, maxFormMemory)); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, &domain.ValidationError{Fields: map[string]string{
				"body": "must be at most " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
			}}
		case errors.Is(err, http.ErrNotMultipart) && optional:
			return &multipartForm{values: url.Values{}, close: func() {}}, nil
		default:
			return nil, &domain.ValidationError{Fields: map[string]string{"body": "invalid multipart form"}}
		}
	}

	form := &multipartForm{
		values: url.Values(r.MultipartForm.Value),
		close: func() {
			_ = r.MultipartForm.RemoveAll()
		},
	}

	file, header, err := r.FormFile(dto.FieldImageFile)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return form, nil
	case err != nil:
		form.close()
		return nil, &domain.ValidationError{Fields: map[string]string{dto.FieldImageFile: "unreadable file"}}
	}

	form.image = toImageFile(file, header)
	removeAll := form.close
	form.close = func() {
		_ = file.Close()
		removeAll()
	}
	return form, nil
}

// toImageFile wraps an uploaded part. The content type is sniffed from the
// leading bytes; the declared one is only used when sniffing is inconclusive.
func toImageFile(file multipart.File, header *multipart.FileHeader) *studygroup.ImageFile {
	br := bufio.NewReaderSize(file, sniffLen)
	head, _ := br.Peek(sniffLen)

	contentType := http.DetectContentType(head)
	if declared := header.Header.Get("Content-Type"); contentType == "application/octet-stream" && declared != "" {
		contentType = declared
	}

	return &studygroup.ImageFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     br,
	}
}
