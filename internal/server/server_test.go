package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoot(t *testing.T) {
	h := NewRouter(Options{})
	rec := get(t, h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", string(body))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestSecurityHeaders(t *testing.T) {
	rec := get(t, NewRouter(Options{}), "/healthz")

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
	// Quiet paths skip the request id
	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestVersion(t *testing.T) {
	rec := get(t, NewRouter(Options{Version: "1.2.3", Environment: "prod"}), "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "prod", resp.Environment)
}

func TestReadyz(t *testing.T) {
	ok := HealthCheckFunc(func(context.Context) error { return nil })
	down := HealthCheckFunc(func(context.Context) error { return errors.New("gateway closed") })

	t.Run("no checks", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, NewRouter(Options{}), "/readyz").Code)
	})

	t.Run("all pass", func(t *testing.T) {
		h := NewRouter(Options{Checks: map[string]HealthChecker{"store": ok, "discord": ok}})
		assert.Equal(t, http.StatusOK, get(t, h, "/readyz").Code)
	})

	t.Run("one fails", func(t *testing.T) {
		h := NewRouter(Options{Checks: map[string]HealthChecker{"store": ok, "discord": down}})
		rec := get(t, h, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "discord check failed", resp.Message)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewRouter(Options{})
	get(t, h, "/")

	rec := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(t, NewRouter(Options{}), "/nope").Code)
}
