package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja/internal/database"
	"loja/internal/server"
	"loja/internal/testdb"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestNewApp_RequiresDB(t *testing.T) {
	_, err := server.NewApp(server.Options{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	db := testdb.Open(t)
	app, err := server.NewApp(server.Options{DB: db, Logger: zerolog.Nop()})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	body := decode(t, resp)
	assert.Equal(t, "healthy", body["status"])

	require.NoError(t, database.Close(db))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unhealthy", decode(t, resp)["status"])
}

func TestUnknownRoute(t *testing.T) {
	app, err := server.NewApp(server.Options{DB: testdb.Open(t), Logger: zerolog.Nop()})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nada", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Rota não encontrada", decode(t, resp)["error"])
}

func TestDocsMounted(t *testing.T) {
	app, err := server.NewApp(server.Options{DB: testdb.Open(t), DocsPath: "/api-docs", Logger: zerolog.Nop()})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Loja API", decode(t, resp)["info"].(map[string]interface{})["title"])
}
