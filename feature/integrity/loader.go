package integrity

import (
	"bird-herd/core/metrics"
	"bird-herd/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new Integrity feature.
func NewFeature(client storage.Client, cfg storage.Config, catalog ImageCatalog, db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) *Feature {
	svc := NewService(client, cfg, catalog, db, m, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: cfg.Enabled && client != nil && catalog != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled reports whether object storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.enabled
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
