package middleware

import (
	"errors"
	"strconv"
	"time"

	apperrors "go-gin-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsKey = "metrics"

// Metrics holds the HTTP and mutation collectors of one registry.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "booking",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Name:      "mutations_total",
			Help:      "Create, update and delete attempts by entity and outcome.",
		}, []string{"entity", "op", "outcome"}),
	}
}

// Middleware observes every request and exposes the Metrics to handlers.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(metricsKey, m)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordMutation counts one mutation attempt. It is a no-op when the metrics
// middleware is not installed.
func RecordMutation(c *gin.Context, entity, op string, err error) {
	v, ok := c.Get(metricsKey)
	if !ok {
		return
	}
	v.(*Metrics).mutations.WithLabelValues(entity, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "invalid"
	case apperrors.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
