package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-gin-booking/internal/api"
	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/middleware"
	"go-gin-booking/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  *gin.Engine
	venues  *mocks.VenueServiceMock
	artists *mocks.ArtistServiceMock
	shows   *mocks.ShowServiceMock
	flash   *cache.MemoryFlashStore
	sid     string
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		venues:  mocks.NewVenueServiceMock(),
		artists: mocks.NewArtistServiceMock(),
		shows:   mocks.NewShowServiceMock(),
		flash:   cache.NewMemoryFlashStore(),
		sid:     uuid.New().String(),
	}

	router, err := api.NewRouter(api.Services{
		Venues:   env.venues,
		Artists:  env.artists,
		Shows:    env.shows,
		Flash:    env.flash,
		Location: time.UTC,
	})
	require.NoError(t, err)
	env.router = router

	return env
}

// do sends the request with the env's session cookie. A non-nil form is sent
// urlencoded.
func (e *testEnv) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: e.sid})

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// messages pops the session's pending flashes.
func (e *testEnv) messages(t *testing.T) []string {
	t.Helper()
	flashes, err := e.flash.Pop(context.Background(), e.sid)
	require.NoError(t, err)

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		messages = append(messages, f.Message)
	}
	return messages
}

func validVenueForm() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Reggae"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"website_link":        {"https://www.themusicalhop.com"},
		"image_link":          {"https://images.unsplash.com/photo-1543900694"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist to play every two weeks."},
	}
}

func validArtistForm() url.Values {
	return url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	}
}
