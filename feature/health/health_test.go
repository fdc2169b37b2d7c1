package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (p pingFunc) PingContext(ctx context.Context) error { return p(ctx) }

func setupTestApp(t *testing.T, db Pinger) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(db, zap.NewNop())
	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func statusOf(t *testing.T, app *fiber.App, path string) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	t.Run("Live", func(t *testing.T) {
		code, body := statusOf(t, setupTestApp(t, nil), "/health")
		assert.Equal(t, 200, code)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("Ready", func(t *testing.T) {
		app := setupTestApp(t, pingFunc(func(context.Context) error { return nil }))
		code, body := statusOf(t, app, "/health/ready")
		assert.Equal(t, 200, code)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("Not Ready", func(t *testing.T) {
		app := setupTestApp(t, pingFunc(func(context.Context) error { return errors.New("connection refused") }))
		code, body := statusOf(t, app, "/health/ready")
		assert.Equal(t, 503, code)
		assert.Equal(t, "unavailable", body["status"])
		assert.Equal(t, "connection refused", body["error"])

		code, _ = statusOf(t, app, "/health")
		assert.Equal(t, 200, code)
	})
}

func TestHealth_UnderAPIPrefix(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature(nil, zap.NewNop()).Load(app.Group("/api")))

	code, body := statusOf(t, app, "/api/health")
	assert.Equal(t, 200, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = statusOf(t, app, "/api/health/ready")
	assert.Equal(t, 200, code)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
