package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// StudyGroupIDParam is the chi URL parameter carrying the study group id.
const StudyGroupIDParam = "studyGroupId"

// StudyGroupsPath is the collection path; Location headers are built from it.
const StudyGroupsPath = "/api/v1/study-groups"

// StudyGroupHandler handles HTTP requests for study groups. Write handlers
// receive the authenticated member id as actorID.
type StudyGroupHandler struct {
	svc            ports.StudyGroupService
	maxUploadBytes int64
}

// NewStudyGroupHandler creates a StudyGroupHandler. maxUploadBytes caps
// multipart request bodies.
func NewStudyGroupHandler(svc ports.StudyGroupService, maxUploadBytes int64) *StudyGroupHandler {
	return &StudyGroupHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// CreateStudyGroup handles POST /api/v1/study-groups.
func (h *StudyGroupHandler) CreateStudyGroup(w http.ResponseWriter, r *http.Request, actorID int64) {
	form, err := parseMultipart(w, r, h.maxUploadBytes, false)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer form.close()

	req := dto.NewCreateStudyGroupRequest(form.values, form.image)
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.CreateStudyGroup(r.Context(), toCreateCommand(actorID, req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", StudyGroupsPath+"/"+strconv.FormatInt(res.StudyGroupID, 10))
	writeJSON(w, http.StatusCreated, dto.ToStudyGroupIDResponse(res))
}

// ApplyStudyGroup handles POST /api/v1/study-groups/{studyGroupId}.
func (h *StudyGroupHandler) ApplyStudyGroup(w http.ResponseWriter, r *http.Request, actorID int64) {
	groupID, err := parseID(r, StudyGroupIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.ApplyStudyGroup(r.Context(), toApplyCommand(actorID, groupID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudyGroupIDResponse(res))
}

// UpdateStudyGroup handles PATCH /api/v1/study-groups/{studyGroupId}.
func (h *StudyGroupHandler) UpdateStudyGroup(w http.ResponseWriter, r *http.Request, actorID int64) {
	groupID, err := parseID(r, StudyGroupIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	form, err := parseMultipart(w, r, h.maxUploadBytes, true)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer form.close()

	req := dto.NewUpdateStudyGroupRequest(form.values, form.image)
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.UpdateStudyGroup(r.Context(), toUpdateCommand(actorID, groupID, req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudyGroupIDResponse(res))
}

// DeleteStudyGroup handles DELETE /api/v1/study-groups/{studyGroupId}.
func (h *StudyGroupHandler) DeleteStudyGroup(w http.ResponseWriter, r *http.Request, actorID int64) {
	groupID, err := parseID(r, StudyGroupIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.DeleteStudyGroup(r.Context(), toDeleteCommand(actorID, groupID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudyGroupIDResponse(res))
}

// GetStudyGroup handles GET /api/v1/study-groups/{studyGroupId}.
func (h *StudyGroupHandler) GetStudyGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseID(r, StudyGroupIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	g, err := h.svc.GetStudyGroup(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudyGroupResponse(g))
}
