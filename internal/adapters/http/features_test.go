package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	adapthttp "github.com/brunogodoif/projectmanagement/internal/adapters/http"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/handlers"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/middleware"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/memory"
	"github.com/brunogodoif/projectmanagement/internal/app"
	"github.com/brunogodoif/projectmanagement/internal/platform/health"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// world holds one scenario's server and the ids created by name.
type world struct {
	router http.Handler
	ids    map[string]string
	status int
	body   map[string]any
}

func newWorld() *world {
	clients := memory.NewClientStore()
	projects := memory.NewProjectStore()
	activities := memory.NewActivityStore()
	logger := discardLogger()

	h := adapthttp.Handlers{
		Clients:    handlers.NewClientHandler(app.NewClientService(clients, projects, logger)),
		Projects:   handlers.NewProjectHandler(app.NewProjectService(projects, clients, activities, logger)),
		Activities: handlers.NewActivityHandler(app.NewActivityService(activities, projects, logger)),
		Health:     handlers.NewHealthHandler(health.New()),
	}

	return &world{
		router: adapthttp.NewRouter(h, middleware.Recovery(logger), middleware.RequestID()),
		ids:    make(map[string]string),
	}
}

func (w *world) do(method, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w.router.ServeHTTP(rec, req)

	w.status = rec.Code
	w.body = nil
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &w.body); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// create posts body and records the new id under name.
func (w *world) create(name, path string, body any) error {
	if err := w.do(http.MethodPost, path, body); err != nil {
		return err
	}
	if w.status != http.StatusCreated {
		return fmt.Errorf("POST %s: status %d, body %v", path, w.status, w.body)
	}
	w.ids[name] = fmt.Sprint(w.body["id"])
	return nil
}

func (w *world) id(name string) (string, error) {
	id, ok := w.ids[name]
	if !ok {
		return "", fmt.Errorf("nothing named %q was created", name)
	}
	return id, nil
}

func (w *world) aClient(name, email string) error {
	return w.create(name, "/api/v1/clients", map[string]any{"name": name, "email": email})
}

func (w *world) createClient(name, email string) error {
	return w.do(http.MethodPost, "/api/v1/clients", map[string]any{"name": name, "email": email})
}

func (w *world) projectBody(name, clientName, start, end string) (map[string]any, error) {
	clientID, err := w.id(clientName)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"name":       name,
		"client_id":  clientID,
		"start_date": start,
		"end_date":   end,
		"status":     "OPEN",
	}, nil
}

func (w *world) aProject(name, clientName, start, end string) error {
	body, err := w.projectBody(name, clientName, start, end)
	if err != nil {
		return err
	}
	return w.create(name, "/api/v1/projects", body)
}

func (w *world) createProject(name, clientName, start, end string) error {
	body, err := w.projectBody(name, clientName, start, end)
	if err != nil {
		return err
	}
	return w.do(http.MethodPost, "/api/v1/projects", body)
}

func (w *world) anActivity(title, projectName string) error {
	projectID, err := w.id(projectName)
	if err != nil {
		return err
	}
	return w.create(title, "/api/v1/projects/"+projectID+"/activities", map[string]any{"title": title})
}

func (w *world) deleteNamed(kind string) func(string) error {
	return func(name string) error {
		id, err := w.id(name)
		if err != nil {
			return err
		}
		return w.do(http.MethodDelete, "/api/v1/"+kind+"/"+id, nil)
	}
}

func (w *world) getProject(name string) error {
	id, err := w.id(name)
	if err != nil {
		return err
	}
	return w.do(http.MethodGet, "/api/v1/projects/"+id, nil)
}

func (w *world) listProjects() error {
	return w.do(http.MethodGet, "/api/v1/projects", nil)
}

func (w *world) moveToUnknownClient(name string) error {
	id, err := w.id(name)
	if err != nil {
		return err
	}
	return w.do(http.MethodPatch, "/api/v1/projects/"+id, map[string]any{"client_id": uuid.NewString()})
}

func (w *world) statusShouldBe(want int) error {
	if w.status != want {
		return fmt.Errorf("status = %d, want %d (body %v)", w.status, want, w.body)
	}
	return nil
}

func (w *world) fieldShouldBe(field, want string) error {
	v, ok := w.body[field]
	if !ok {
		return fmt.Errorf("response has no field %q: %v", field, w.body)
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("field %q = %q, want %q", field, got, want)
	}
	return nil
}

func (w *world) projectBelongsTo(_, clientName string) error {
	clientID, err := w.id(clientName)
	if err != nil {
		return err
	}
	return w.fieldShouldBe("client_id", clientID)
}

func initializeScenario(ctx *godog.ScenarioContext) {
	w := newWorld()

	ctx.Step(`^a client "([^"]*)" with email "([^"]*)"$`, w.aClient)
	ctx.Step(`^a project "([^"]*)" for client "([^"]*)" from "([^"]*)" to "([^"]*)"$`, w.aProject)
	ctx.Step(`^an activity "([^"]*)" in project "([^"]*)"$`, w.anActivity)

	ctx.Step(`^I create a client "([^"]*)" with email "([^"]*)"$`, w.createClient)
	ctx.Step(`^I create a project "([^"]*)" for client "([^"]*)" from "([^"]*)" to "([^"]*)"$`, w.createProject)
	ctx.Step(`^I delete client "([^"]*)"$`, w.deleteNamed("clients"))
	ctx.Step(`^I delete project "([^"]*)"$`, w.deleteNamed("projects"))
	ctx.Step(`^I delete activity "([^"]*)"$`, w.deleteNamed("activities"))
	ctx.Step(`^I get project "([^"]*)"$`, w.getProject)
	ctx.Step(`^I list projects$`, w.listProjects)
	ctx.Step(`^I move project "([^"]*)" to an unknown client$`, w.moveToUnknownClient)

	ctx.Step(`^the response status should be (\d+)$`, w.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, w.fieldShouldBe)
	ctx.Step(`^project "([^"]*)" should belong to client "([^"]*)"$`, w.projectBelongsTo)
}
