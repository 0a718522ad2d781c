package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/handlers"
	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/mocks"
)

func newActivityHandler(t *testing.T) (*handlers.ActivityHandler, *mocks.MockActivityService) {
	t.Helper()
	svc := mocks.NewMockActivityService(t)
	return handlers.NewActivityHandler(svc), svc
}

func TestListActivities(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	svc.EXPECT().List(mock.Anything).Return([]activity.Activity{validActivity(uuid.New())}, nil)

	rec := httptest.NewRecorder()
	h.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ActivityListResponse](t, rec); resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListProjectActivities(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		h, svc := newActivityHandler(t)

		projectID := uuid.New()
		done := validActivity(projectID)
		done.Completed = true
		svc.EXPECT().ListByProject(mock.Anything, projectID).
			Return([]activity.Activity{validActivity(projectID), done}, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/activities", nil),
			map[string]string{"id": projectID.String()})
		h.ListProjectActivities(rec, req)

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.ActivityListResponse](t, rec); resp.Count != 2 {
			t.Errorf("Count = %d, want 2", resp.Count)
		}
	})

	t.Run("pending", func(t *testing.T) {
		t.Parallel()
		h, svc := newActivityHandler(t)

		projectID := uuid.New()
		svc.EXPECT().ListPendingByProject(mock.Anything, projectID).
			Return([]activity.Activity{validActivity(projectID)}, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(
			httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/activities?pending=true", nil),
			map[string]string{"id": projectID.String()})
		h.ListProjectActivities(rec, req)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		h, svc := newActivityHandler(t)

		projectID := uuid.New()
		svc.EXPECT().ListByProject(mock.Anything, projectID).
			Return(nil, &domain.NotFoundError{Entity: "project", ID: projectID.String()})

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/activities", nil),
			map[string]string{"id": projectID.String()})
		h.ListProjectActivities(rec, req)

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestCreateActivity_Success(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	projectID := uuid.New()
	created := validActivity(projectID)
	svc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p activity.Params) bool {
		return p.ProjectID == projectID && p.Title == "Deploy" && p.EstimatedHours == 1.5
	})).Return(&created, nil)

	body := jsonBody(t, dto.CreateActivityRequest{Title: "Deploy", ProjectID: projectID.String(), EstimatedHours: 1.5})
	rec := httptest.NewRecorder()
	h.CreateActivity(rec, httptest.NewRequest(http.MethodPost, "/api/v1/activities", body))

	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.ActivityResponse](t, rec); resp.ID != created.ID.String() {
		t.Errorf("ID = %q", resp.ID)
	}
}

func TestCreateProjectActivity_PathWins(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	projectID := uuid.New()
	created := validActivity(projectID)
	svc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p activity.Params) bool {
		return p.ProjectID == projectID
	})).Return(&created, nil)

	body := jsonBody(t, dto.CreateActivityRequest{Title: "Deploy", ProjectID: uuid.NewString()})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+projectID.String()+"/activities", body),
		map[string]string{"id": projectID.String()})
	h.CreateProjectActivity(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateActivity_InvalidProjectID(t *testing.T) {
	t.Parallel()
	h, _ := newActivityHandler(t)

	rec := httptest.NewRecorder()
	h.CreateActivity(rec, httptest.NewRequest(http.MethodPost, "/api/v1/activities",
		bytes.NewBufferString(`{"title":"Deploy","project_id":"nope"}`)))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetActivity_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	id := uuid.New()
	svc.EXPECT().Get(mock.Anything, id).Return(nil, &domain.NotFoundError{Entity: "activity", ID: id.String()})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/activities/"+id.String(), nil),
		map[string]string{"id": id.String()})
	h.GetActivity(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestUpdateActivity_Complete(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	updated := validActivity(uuid.New())
	updated.Completed = true
	svc.EXPECT().Update(mock.Anything, updated.ID, mock.MatchedBy(func(p activity.Patch) bool {
		return p.Completed.HasValue() && p.Completed.Value && !p.Title.IsSet
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/activities/"+updated.ID.String(),
			bytes.NewBufferString(`{"completed":true}`)),
		map[string]string{"id": updated.ID.String()})
	h.UpdateActivity(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ActivityResponse](t, rec); !resp.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestDeleteActivity(t *testing.T) {
	t.Parallel()
	h, svc := newActivityHandler(t)

	id := uuid.New()
	svc.EXPECT().Delete(mock.Anything, id).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/activities/"+id.String(), nil),
		map[string]string{"id": id.String()})
	h.DeleteActivity(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
