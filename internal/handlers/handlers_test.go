package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyondem/callsheet/internal/handlers"
	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/routes"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
	"github.com/dyondem/callsheet/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	container := state.New(store.NewMemoryStore(), "")
	container.Load(context.Background())
	t.Cleanup(container.Wait)

	service := services.NewWorkspaceService(container)

	app := fiber.New()
	routes.Setup(app, routes.Handlers{
		Health:    handlers.NewHealthHandler("file", nil),
		Workspace: handlers.NewWorkspaceHandler(service),
		Role:      handlers.NewRoleHandler(service),
		People:    handlers.NewPeopleHandler(service),
		Planner:   handlers.NewPlannerHandler(service),
		Journal:   handlers.NewJournalHandler(service),
		Stage:     handlers.NewStageHandler(service),
		Project:   handlers.NewProjectHandler(service),
		Resource:  handlers.NewResourceHandler(service),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWorkspace_GetReturnsSeed(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/workspace", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := decode[models.Workspace](t, resp)
	assert.Equal(t, models.RoleED, doc.ActiveRole)
	assert.Nil(t, doc.User)
	assert.Len(t, doc.Resources, 2)
}

func TestWorkspace_Replace(t *testing.T) {
	app := newTestApp(t)

	doc := models.DefaultWorkspace()
	doc.Employees = append(doc.Employees, models.Employee{ID: "1", Name: "Ada"})
	// The container normalizes on replace even for raw imports.
	doc.Todos = append(doc.Todos, models.Todo{ID: "2", Text: "x", Status: models.StatusCompleted})

	resp := doJSON(t, app, http.MethodPut, "/api/workspace", doc)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[models.Workspace](t, resp)
	require.Len(t, got.Employees, 1)
	assert.True(t, got.Todos[0].Completed)
}

func TestEmployees_CreateValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/employees", map[string]string{"position": "SM"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/employees", map[string]string{"name": "Ada", "position": "SM"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	emp := decode[models.Employee](t, resp)
	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "Ada", emp.Name)
}

func TestTodoStatusOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/todos", map[string]string{"text": "Book venue"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	todo := decode[models.Todo](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/todos/"+todo.ID+"/status", map[string]string{"status": "Completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.Todo](t, resp)
	assert.True(t, updated.Completed)

	resp = doJSON(t, app, http.MethodPut, "/api/todos/"+todo.ID+"/status", map[string]string{"status": "Whenever"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductionDelete_RequiresConfirmAndCascades(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productions", map[string]string{"title": "Hamlet"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	prod := decode[models.Production](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/productions/"+prod.ID+"/castcrew", map[string]string{"name": "Ophelia"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/productions/"+prod.ID+"/castcrew", map[string]string{"name": "Board op", "type": "Crew"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Without the confirm flag the cascade is refused.
	resp = doJSON(t, app, http.MethodDelete, "/api/productions/"+prod.ID, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/productions/"+prod.ID+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/productions/"+prod.ID+"/castcrew", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.CastCrewMember](t, resp))

	resp = doJSON(t, app, http.MethodGet, "/api/productions", nil)
	assert.Empty(t, decode[[]models.Production](t, resp))
}

func TestMeetingsDerivedViews(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()

	resp := doJSON(t, app, http.MethodPost, "/api/meetings", map[string]string{
		"title": "Retro", "date": now.AddDate(0, 0, -1).Format("2006-01-02"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/meetings", map[string]string{
		"title": "Season planning", "date": now.AddDate(0, 0, 1).Format("2006-01-02"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/meetings/upcoming", nil)
	upcoming := decode[[]models.Meeting](t, resp)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Season planning", upcoming[0].Title)

	resp = doJSON(t, app, http.MethodGet, "/api/meetings/past", nil)
	past := decode[[]models.Meeting](t, resp)
	require.Len(t, past, 1)
	assert.Equal(t, "Retro", past[0].Title)
}

func TestJournalAndMetricsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/journal", map[string]any{
		"title": "Opening week", "content": "Long but good.",
		"eiRating": 4, "psRating": 5, "moodRating": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/metrics?role=ED", nil)
	metrics := decode[[]models.Metric](t, resp)
	require.Len(t, metrics, 1)
	assert.Equal(t, 4, metrics[0].EI)

	resp = doJSON(t, app, http.MethodGet, "/api/metrics/averages", nil)
	avg := decode[state.MetricAverages](t, resp)
	assert.Equal(t, 1, avg.Samples)
	assert.InDelta(t, 5.0, avg.PsychologicalSafety, 0.001)
}

func TestCustomRoleDeleteOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/roles", map[string]any{
		"name": "Tour Manager", "features": []string{"todos", "contacts"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	role := decode[models.CustomRole](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/role", map[string]string{"role": role.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/roles/"+role.ID, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/roles/"+role.ID+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/workspace", nil)
	doc := decode[models.Workspace](t, resp)
	assert.Equal(t, models.RoleED, doc.ActiveRole)
}
