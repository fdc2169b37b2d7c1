package health

import (
	"context"
	"time"

	"bird-herd/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency can be reached. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Feature implements the loader.Feature interface.
type Feature struct {
	db      Pinger
	logger  *zap.Logger
	timeout time.Duration
}

// NewFeature creates the health feature. db may be nil, in which case the
// readiness probe only reports the process as up.
func NewFeature(db Pinger, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger, timeout: 2 * time.Second}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled always returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the health routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/health", f.HandleLive)
	app.Get("/health/ready", f.HandleReady)
	return nil
}

// HandleLive reports that the process is serving requests.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (f *Feature) HandleLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleReady also checks the catalog connection.
// @Summary Readiness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/health/ready [get]
func (f *Feature) HandleReady(c *fiber.Ctx) error {
	if f.db == nil {
		return c.JSON(fiber.Map{"status": "ok"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), f.timeout)
	defer cancel()
	if err := f.db.PingContext(ctx); err != nil {
		logger.WithRayID(f.logger, c).Warn("Readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
