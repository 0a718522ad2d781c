package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/brunogodoif/projectmanagement/internal/adapters/http"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/handlers"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/mocks"
)

type testServices struct {
	clients    *mocks.MockClientService
	projects   *mocks.MockProjectService
	activities *mocks.MockActivityService
	registry   *mocks.MockHealthRegistry
}

func newTestHandlers(t *testing.T) (adapthttp.Handlers, testServices) {
	t.Helper()
	s := testServices{
		clients:    mocks.NewMockClientService(t),
		projects:   mocks.NewMockProjectService(t),
		activities: mocks.NewMockActivityService(t),
		registry:   mocks.NewMockHealthRegistry(t),
	}
	h := adapthttp.Handlers{
		Clients:    handlers.NewClientHandler(s.clients),
		Projects:   handlers.NewProjectHandler(s.projects),
		Activities: handlers.NewActivityHandler(s.activities),
		Health:     handlers.NewHealthHandler(s.registry),
	}
	return h, s
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	h, s := newTestHandlers(t)
	return adapthttp.NewRouter(h), s
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)
	h.Metrics = http.NotFoundHandler()
	router := adapthttp.NewRouter(h)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/clients"},
		{http.MethodPost, "/api/v1/clients"},
		{http.MethodGet, "/api/v1/clients/{id}"},
		{http.MethodPatch, "/api/v1/clients/{id}"},
		{http.MethodDelete, "/api/v1/clients/{id}"},
		{http.MethodGet, "/api/v1/clients/{id}/projects"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/{id}"},
		{http.MethodPatch, "/api/v1/projects/{id}"},
		{http.MethodDelete, "/api/v1/projects/{id}"},
		{http.MethodGet, "/api/v1/projects/{id}/activities"},
		{http.MethodPost, "/api/v1/projects/{id}/activities"},
		{http.MethodGet, "/api/v1/activities"},
		{http.MethodPost, "/api/v1/activities"},
		{http.MethodGet, "/api/v1/activities/{id}"},
		{http.MethodPatch, "/api/v1/activities/{id}"},
		{http.MethodDelete, "/api/v1/activities/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, s := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	s.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_APIMiddlewareScopedToAPI(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)
	h.API = func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	router := adapthttp.NewRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("API status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("liveness status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	s.projects.EXPECT().List(mock.Anything).Return([]project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
