package middleware

import (
	"bird-herd/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLog logs every request with its RayID and reports handler errors.
func RequestLog(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}
