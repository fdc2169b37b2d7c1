package birds

import (
	"time"

	"bird-herd/core/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Birds feature backed by the given catalog.
func NewFeature(catalog Catalog, logger *zap.Logger, m *metrics.Metrics, timeout time.Duration) *Feature {
	svc := NewService(catalog, logger, m, timeout)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "birds"
}

// IsEnabled reports whether a catalog is available.
func (f *Feature) IsEnabled() bool {
	return f.service.catalog != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
