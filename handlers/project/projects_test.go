package project

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/model"
	"github.com/vaibhavkumar/portfolio-api/utils/middleware"
)

func testProject(title, desc string) model.Project {
	return model.Project{Title: title, Desc: desc}
}

const testSecret = "test-admin-secret"

var testDBSeq int64

func setupApp(t *testing.T) (*fiber.App, database.Storage) {
	t.Helper()

	dsn := fmt.Sprintf("file:projects%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	store, err := database.StartSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	gate := middleware.NewAdminGate(testSecret)
	h := NewProjectHandler(store)

	app := fiber.New()
	app.Post("/api/projects", gate.Required(), h.CreateProject)
	app.Put("/api/projects/:id", gate.Required(), h.UpdateProject)
	app.Delete("/api/projects/:id", gate.Required(), h.DeleteProject)

	return app, store
}

func jsonRequest(method, target, body, secret string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Admin-Password", secret)
	}
	return req
}

func TestCreateProjectRejectsBadSecret(t *testing.T) {
	app, store := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/projects", `{"title":"Nope"}`, "wrong-secret"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// No mutation happened.
	projects, err := store.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestCreateProjectRejectsMissingSecret(t *testing.T) {
	app, store := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/projects", `{"title":"Nope"}`, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	projects, err := store.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestCreateProject(t *testing.T) {
	app, store := setupApp(t)

	body := `{"title":"Portfolio","img":"/img/p.png","desc":"My site","link":"https://example.com"}`
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/projects", body, testSecret), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Project struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"project"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Project created", out.Message)
	assert.NotZero(t, out.Project.ID)
	assert.Equal(t, "Portfolio", out.Project.Title)
	assert.Equal(t, "web", out.Project.Category)

	projects, err := store.ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/projects", `{"desc":"no title"}`, testSecret), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateProjectMergesFields(t *testing.T) {
	app, store := setupApp(t)

	created, err := store.CreateProject(testProject("Before", "desc stays"))
	require.NoError(t, err)

	target := fmt.Sprintf("/api/projects/%d", created.ID)
	resp, err := app.Test(jsonRequest(http.MethodPut, target, `{"title":"After"}`, testSecret), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	projects, err := store.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "After", projects[0].Title)
	assert.Equal(t, "desc stays", projects[0].Desc)
}

func TestDeleteProjectMissingReturnsSuccess(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/projects/123456789", "", testSecret), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Project deleted", out["message"])
}

func TestDeleteProject(t *testing.T) {
	app, store := setupApp(t)

	created, err := store.CreateProject(testProject("Short lived", ""))
	require.NoError(t, err)

	target := fmt.Sprintf("/api/projects/%d", created.ID)
	resp, err := app.Test(jsonRequest(http.MethodDelete, target, "", testSecret), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Project deleted", out["message"])

	projects, err := store.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}
