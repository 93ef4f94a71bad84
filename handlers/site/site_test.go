package site

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

const testSecret = "test-admin-secret"

var testDBSeq int64

func setupApp(t *testing.T) (*fiber.App, database.Storage) {
	t.Helper()

	dsn := fmt.Sprintf("file:site%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	store, err := database.StartSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	gate := middleware.NewAdminGate(testSecret)
	h := NewSiteHandler(store)

	app := fiber.New()
	app.Get("/api/data", h.GetData)
	app.Put("/api/settings", gate.Required(), h.UpdateSettings)

	return app, store
}

func strPtr(s string) *string {
	return &s
}

func TestGetDataShape(t *testing.T) {
	app, store := setupApp(t)

	_, err := store.UpsertSettings(database.SettingFields{Name: strPtr("Vaibhav Kumar")})
	require.NoError(t, err)
	_, err = store.CreateProject(model.Project{Title: "Portfolio"})
	require.NoError(t, err)
	_, err = store.CreateBlog(model.Blog{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/data", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Settings *model.Setting  `json:"settings"`
		Projects []model.Project `json:"projects"`
		Blogs    []model.Blog    `json:"blogs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Settings)
	assert.Equal(t, "Vaibhav Kumar", out.Settings.Name)
	assert.Len(t, out.Projects, 1)
	assert.Len(t, out.Blogs, 1)
}

func TestGetDataEmptyStore(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/data", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateSettingsRequiresSecret(t *testing.T) {
	app, store := setupApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"name":"Intruder"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	settings, err := store.GetSettings()
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	app, store := setupApp(t)

	_, err := store.UpsertSettings(database.SettingFields{
		Name: strPtr("Vaibhav Kumar"),
		Bio:  strPtr("Developer"),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"email":"new@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Password", testSecret)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Message  string        `json:"message"`
		Settings model.Setting `json:"settings"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Settings updated", out.Message)
	assert.Equal(t, "Vaibhav Kumar", out.Settings.Name)
	assert.Equal(t, "Developer", out.Settings.Bio)
	assert.Equal(t, "new@example.com", out.Settings.Email)
}

func TestUpdateSettingsRejectsBadEmail(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Password", testSecret)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
