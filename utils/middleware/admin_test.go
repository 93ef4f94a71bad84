package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateApp(secret string) *fiber.App {
	gate := NewAdminGate(secret)
	app := fiber.New()
	app.Post("/protected", gate.Required(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func TestAdminGateAllowsHeaderSecret(t *testing.T) {
	app := gateApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("X-Admin-Password", "s3cret")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminGateAllowsBodySecret(t *testing.T) {
	app := gateApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", strings.NewReader(`{"password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminGateRejectsWrongSecret(t *testing.T) {
	app := gateApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("X-Admin-Password", "wrong")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGateRejectsMissingCredential(t *testing.T) {
	app := gateApp("s3cret")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
