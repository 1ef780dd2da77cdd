package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/handler"
	"go-gin-booking/internal/middleware"
	"go-gin-booking/internal/model"
	"go-gin-booking/internal/service"
	"go-gin-booking/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Services 路由所需的依賴
type Services struct {
	Venues  service.VenueService
	Artists service.ArtistService
	Shows   service.ShowService
	Flash   cache.FlashStore
	Metrics *middleware.Metrics
	// Health reports whether the backing stores are reachable. Nil means
	// always healthy.
	Health func(ctx context.Context) error
	// Location interprets show start times. Nil means time.Local.
	Location *time.Location
}

// NewRouter builds the gin engine with templates, validators, middleware and
// every route registered.
func NewRouter(s Services) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if s.Metrics == nil {
		s.Metrics = middleware.NewMetrics()
	}
	if s.Flash == nil {
		s.Flash = cache.NewMemoryFlashStore()
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(s.Metrics.Middleware())
	router.Use(middleware.Flash(s.Flash))

	handler.NewHomeHandler().RegisterRoutes(router)
	handler.NewVenueHandler(s.Venues).RegisterRoutes(router)
	handler.NewArtistHandler(s.Artists).RegisterRoutes(router)
	handler.NewShowHandler(s.Shows, s.Location).RegisterRoutes(router)

	router.GET("/metrics", s.Metrics.Handler())
	router.GET("/healthz", healthCheck(s.Health))
	router.NoRoute(handler.NotFound)

	return router, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return model.RegisterValidators(v)
}

func healthCheck(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
