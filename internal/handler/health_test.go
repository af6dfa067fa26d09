package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/ai"
	"github.com/pkordes/trip-planner/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := handler.NewHealthHandler().Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestGetOpenAPI_servesEmbeddedDocument(t *testing.T) {
	rec := do(t, handler.NewHealthHandler().Handler(), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestUnknownRoute_returnsJSON404(t *testing.T) {
	rec := do(t, handler.NewHealthHandler().Handler(), http.MethodGet, "/stays", nil)

	assertError(t, rec, http.StatusNotFound, "not_found")
}

func TestMetrics_mountedWhenConfigured(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	h := handler.NewServer(handler.Deps{Metrics: metrics}).Handler()

	rec := do(t, h, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

type staticStatus ai.Status

func (s staticStatus) Status() ai.Status { return ai.Status(s) }

func TestGetAIStatus(t *testing.T) {
	h := handler.NewServer(handler.Deps{AI: staticStatus{Configured: true, Model: "gemini-test"}}).Handler()

	rec := do(t, h, http.MethodGet, "/ai/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ai.Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Configured)
	assert.Equal(t, "gemini-test", got.Model)
}
