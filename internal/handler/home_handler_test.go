package handler_test

import (
	"context"
	"net/http"
	"testing"

	"go-gin-booking/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome(t *testing.T) {
	t.Run("Renders Pending Flashes Once", func(t *testing.T) {
		env := setupTestRouter(t)
		require.NoError(t, env.flash.Push(context.Background(), env.sid,
			cache.Flash{Category: cache.FlashSuccess, Message: "The show was successfully listed!"}))

		w := env.do(http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The show was successfully listed!")

		w = env.do(http.MethodGet, "/", nil)
		assert.NotContains(t, w.Body.String(), "The show was successfully listed!")
	})

	t.Run("Unmatched Route", func(t *testing.T) {
		env := setupTestRouter(t)

		w := env.do(http.MethodGet, "/nowhere", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Not Found")
	})

	t.Run("Health", func(t *testing.T) {
		env := setupTestRouter(t)

		w := env.do(http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		env := setupTestRouter(t)
		env.do(http.MethodGet, "/", nil)

		w := env.do(http.MethodGet, "/metrics", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `booking_http_requests_total{method="GET",route="/",status="200"} 1`)
	})
}
