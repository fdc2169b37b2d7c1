package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported by the API.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	imagesServed   *prometheus.CounterVec
	imagesExcluded prometheus.Counter
	storeErrors    *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.imagesServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birdherd_images_served_total",
			Help: "Images returned by sampling queries",
		},
		[]string{"query"}, // query: random, common, names, genus, replacement
	)
	m.imagesExcluded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "birdherd_images_excluded_total",
			Help: "Images newly marked as bad",
		},
	)
	m.storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birdherd_store_errors_total",
			Help: "Catalog operations that failed",
		},
		[]string{"operation"},
	)

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal, m.httpRequestDuration, m.imagesServed, m.imagesExcluded, m.storeErrors,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ImagesServed adds n images returned by the named query.
func (m *Metrics) ImagesServed(query string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.imagesServed.WithLabelValues(query).Add(float64(n))
}

// ImageExcluded counts one newly excluded image.
func (m *Metrics) ImageExcluded() {
	if m == nil {
		return
	}
	m.imagesExcluded.Inc()
}

// StoreError counts a failed catalog operation.
func (m *Metrics) StoreError(operation string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(operation).Inc()
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
