package handlers

import (
	"net/http"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// ActivityHandler handles HTTP requests for activity CRUD and the
// project-scoped activity routes.
type ActivityHandler struct {
	svc ports.ActivityService
}

// NewActivityHandler creates a new ActivityHandler with the given service port.
func NewActivityHandler(svc ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListActivities handles GET /api/v1/activities.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityListResponse(activities))
}

// ListProjectActivities handles GET /api/v1/projects/{id}/activities.
// With ?pending=true only activities not yet completed are returned.
func (h *ActivityHandler) ListProjectActivities(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	pendingOnly, err := parseBoolQuery(r, "pending")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var activities []activity.Activity
	if pendingOnly {
		activities, err = h.svc.ListPendingByProject(r.Context(), projectID)
	} else {
		activities, err = h.svc.ListByProject(r.Context(), projectID)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityListResponse(activities))
}

// CreateActivity handles POST /api/v1/activities.
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.create(w, r, req.Params())
}

// CreateProjectActivity handles POST /api/v1/projects/{id}/activities. The
// path project overrides any project_id in the body.
func (h *ActivityHandler) CreateProjectActivity(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	params := req.Params()
	params.ProjectID = projectID
	h.create(w, r, params)
}

func (h *ActivityHandler) create(w http.ResponseWriter, r *http.Request, params activity.Params) {
	created, err := h.svc.Create(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToActivityResponse(created))
}

// GetActivity handles GET /api/v1/activities/{id}.
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityResponse(a))
}

// UpdateActivity handles PATCH /api/v1/activities/{id}.
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityResponse(updated))
}

// DeleteActivity handles DELETE /api/v1/activities/{id}.
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
