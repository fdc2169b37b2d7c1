package integrity

import (
	"bird-herd/core/logger"
	"bird-herd/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/images", h.HandleImageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the catalog schema and that every eligible image exists in the bucket. Never fixes anything. This operation may take a long time.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if images, err := h.service.CheckImages(c.UserContext(), false); err != nil {
		report["images"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["images"] = images
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the catalog schema.
// @Summary Check Catalog Schema
// @Description Checks that the stats and images tables match the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Catalog schema does not match", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleImageCheck checks and optionally fixes images without a stored object.
// @Summary Check Images
// @Description Checks that every eligible image has an object in the bucket. With fix=true, images without an object are excluded.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Exclude images whose object is missing"
// @Success 200 {object} ImageReport "Image Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/images [get]
func (h *Handler) HandleImageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"
	l.Info("Starting image check", zap.Bool("fix", fix))

	report, err := h.service.CheckImages(c.UserContext(), fix)
	if err != nil {
		l.Error("Image check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Image check completed",
		zap.Int("checked", report.Checked),
		zap.Int("missing", len(report.Missing)),
		zap.Int("excluded", len(report.Excluded)))
	return c.JSON(report)
}
