package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, err := NewRouter(Services{})
	require.NoError(t, err)

	paths := make(map[string]bool)
	for _, r := range router.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		"GET /",
		"GET /venues",
		"POST /venues/search",
		"GET /venues/:id",
		"GET /venues/create",
		"POST /venues/create",
		"DELETE /venues/:id",
		"POST /venues/:id/delete",
		"GET /venues/:id/edit",
		"POST /venues/:id/edit",
		"GET /artists",
		"POST /artists/search",
		"GET /artists/:id",
		"GET /artists/create",
		"POST /artists/create",
		"GET /artists/:id/edit",
		"POST /artists/:id/edit",
		"GET /shows",
		"GET /shows/create",
		"POST /shows/create",
		"GET /metrics",
		"GET /healthz",
	} {
		assert.True(t, paths[route], route)
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Unavailable", func(t *testing.T) {
		router := gin.New()
		router.GET("/healthz", healthCheck(func(ctx context.Context) error {
			return errors.New("dial tcp: connection refused")
		}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})

	t.Run("Healthy", func(t *testing.T) {
		router := gin.New()
		router.GET("/healthz", healthCheck(func(ctx context.Context) error { return nil }))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
