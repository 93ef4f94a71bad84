package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaibhavkumar/portfolio-api/utils/auth"
)

const testSecret = "test-admin-secret"

func setupApp() (*fiber.App, *auth.TokenManager) {
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret: testSecret,
		Expiry: time.Hour,
		Issuer: "portfolio-api",
	})
	h := NewAuthHandler(testSecret, tokens, nil)

	app := fiber.New()
	app.Post("/api/login", h.Login)
	return app, tokens
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginSuccess(t *testing.T) {
	app, tokens := setupApp()

	resp, err := app.Test(loginRequest(`{"password":"test-admin-secret"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.NotEmpty(t, out.Token)

	claims, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(loginRequest(`{"password":"guess"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginEmptyPassword(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(loginRequest(`{}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
