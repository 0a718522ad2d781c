// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Clients    *handlers.ClientHandler
	Projects   *handlers.ProjectHandler
	Activities *handlers.ActivityHandler
	Health     *handlers.HealthHandler

	// Metrics serves the Prometheus exposition format. Nil skips /metrics.
	Metrics http.Handler

	// API wraps only the /api/v1 routes (authentication, rate limiting),
	// leaving probes and metrics open. Nil applies nothing.
	API func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		if h.API != nil {
			r.Use(h.API)
		}

		// Client CRUD.
		r.Get("/clients", h.Clients.ListClients)
		r.Post("/clients", h.Clients.CreateClient)
		r.Get("/clients/{id}", h.Clients.GetClient)
		r.Patch("/clients/{id}", h.Clients.UpdateClient)
		r.Delete("/clients/{id}", h.Clients.DeleteClient)
		r.Get("/clients/{id}/projects", h.Projects.ListClientProjects)

		// Project CRUD.
		r.Get("/projects", h.Projects.ListProjects)
		r.Post("/projects", h.Projects.CreateProject)
		r.Get("/projects/{id}", h.Projects.GetProject)
		r.Patch("/projects/{id}", h.Projects.UpdateProject)
		r.Delete("/projects/{id}", h.Projects.DeleteProject)

		// Nested project-activity operations.
		r.Get("/projects/{id}/activities", h.Activities.ListProjectActivities)
		r.Post("/projects/{id}/activities", h.Activities.CreateProjectActivity)

		// Flat activity CRUD.
		r.Get("/activities", h.Activities.ListActivities)
		r.Post("/activities", h.Activities.CreateActivity)
		r.Get("/activities/{id}", h.Activities.GetActivity)
		r.Patch("/activities/{id}", h.Activities.UpdateActivity)
		r.Delete("/activities/{id}", h.Activities.DeleteActivity)
	})

	return r
}
