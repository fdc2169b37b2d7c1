package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bird-herd/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	svc, client, _ := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, client
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleImageCheck(t *testing.T) {
	app, client := setupTestApp(t)
	populatedBucket(client)
	client.On("StatObject", mock.Anything, "birds", "images/anna/1.jpg", mock.Anything).Return(minio.ObjectInfo{}, missingObject())
	client.On("StatObject", mock.Anything, "birds", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/images?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report ImageReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "fixed", report.Status)
	assert.Equal(t, []string{"anna/1.jpg"}, report.Excluded)
}

func TestHandleImageCheck_Failure(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "birds").Return(false, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/images", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, client := setupTestApp(t)
	// Storage failure only affects its own section
	client.On("BucketExists", mock.Anything, "birds").Return(false, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["schema"]["matched"])
	assert.Equal(t, "error", body["images"]["status"])
}
