package birds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bird-herd/core/logger"
	"bird-herd/core/utils"
	"bird-herd/feature/birds/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bird sampling.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bird routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/random/:region/:n", h.HandleRandom)
	app.Get("/common/:region/:n", h.HandleCommon)
	app.Get("/genus", h.HandleGenus)
	app.Get("/get", h.HandleGet)
	app.Get("/bad_image", h.HandleBadImage)
}

// HandleRandom returns images of random birds of a region.
// @Summary Random Birds
// @Description Sample n distinct birds of a region uniformly at random, with one image each by default.
// @Tags birds
// @Produce json
// @Param region path string true "State code (e.g. 'ca') or region code (e.g. 'USA-CA')"
// @Param n path int true "Number of birds"
// @Param images query int false "Images per bird (default 1)"
// @Success 200 {array} models.Bird "Sampled birds"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /api/random/{region}/{n} [get]
func (h *Handler) HandleRandom(c *fiber.Ctx) error {
	return h.handleRegion(c, ModeRandom)
}

// HandleCommon returns images of the most common birds of a region.
// @Summary Most Common Birds
// @Description Sample the n most abundant birds of a region, with one image each by default.
// @Tags birds
// @Produce json
// @Param region path string true "State code (e.g. 'ca') or region code (e.g. 'USA-CA')"
// @Param n path int true "Number of birds"
// @Param images query int false "Images per bird (default 1)"
// @Success 200 {array} models.Bird "Sampled birds"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /api/common/{region}/{n} [get]
func (h *Handler) HandleCommon(c *fiber.Ctx) error {
	return h.handleRegion(c, ModeTop)
}

func (h *Handler) handleRegion(c *fiber.Ctx, mode Mode) error {
	region := utils.NormalizeRegion(c.Params("region"))
	n, err := strconv.Atoi(c.Params("n"))
	if err != nil {
		return h.fail(c, badRequest("n must be an integer"), zap.String("region", region))
	}
	images, err := imagesParam(c)
	if err != nil {
		return h.fail(c, err, zap.String("region", region))
	}

	logger.WithRayID(h.service.logger, c).Info("Getting birds for region",
		zap.String("mode", string(mode)),
		zap.String("region", region),
		zap.Int("n", n))

	birds, err := h.service.GetBirds(c.UserContext(), region, n, images, mode)
	if err != nil {
		return h.fail(c, err, zap.String("region", region), zap.Int("n", n))
	}
	return c.JSON(birds)
}

// HandleGenus returns images of every bird of a genus.
// @Summary Birds By Genus
// @Description Sample images for all birds of a genus (case-insensitive), one image each by default.
// @Tags birds
// @Produce json
// @Param name query string true "Genus (e.g. 'Turdus')"
// @Param images query int false "Images per bird (default 1)"
// @Success 200 {array} models.Bird "Sampled birds"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /api/genus [get]
func (h *Handler) HandleGenus(c *fiber.Ctx) error {
	genus := strings.TrimSpace(c.Query("name"))
	images, err := imagesParam(c)
	if err != nil {
		return h.fail(c, err, zap.String("genus", genus))
	}

	birds, err := h.service.GetByGenus(c.UserContext(), genus, images)
	if err != nil {
		return h.fail(c, err, zap.String("genus", genus))
	}
	return c.JSON(birds)
}

// HandleGet returns images of specific birds.
// @Summary Specific Birds
// @Description Sample images for a comma separated list of bird names. Names are normalized (e.g. "Cooper's Hawk" -> "coopers_hawk"); unknown names are ignored.
// @Tags birds
// @Produce json
// @Param birds query string false "Comma separated bird names"
// @Param images query int false "Images per bird (default 1)"
// @Success 200 {array} models.Bird "Sampled birds"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /api/get [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	names := utils.SplitNames(c.Query("birds"))
	if len(names) == 0 {
		return c.JSON([]models.Bird{})
	}
	images, err := imagesParam(c)
	if err != nil {
		return h.fail(c, err, zap.Strings("birds", names))
	}

	birds, err := h.service.GetByNames(c.UserContext(), names, images)
	if err != nil {
		return h.fail(c, err, zap.Strings("birds", names))
	}
	return c.JSON(birds)
}

// HandleBadImage marks an image as bad and returns a replacement.
// @Summary Mark Bad Image
// @Description Exclude an image from all future results and return a fresh image of the same bird. Unknown or already excluded paths return an empty list.
// @Tags birds
// @Produce json
// @Param filepath query string false "Image filepath"
// @Success 200 {array} models.Bird "Replacement image"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /api/bad_image [get]
func (h *Handler) HandleBadImage(c *fiber.Ctx) error {
	filepath := strings.TrimSpace(c.Query("filepath"))
	if filepath == "" {
		return c.JSON([]models.Bird{})
	}

	birds, err := h.service.MarkDeleted(c.UserContext(), filepath)
	if err != nil {
		return h.fail(c, err, zap.String("filepath", filepath))
	}
	return c.JSON(birds)
}

func (h *Handler) fail(c *fiber.Ctx, err error, fields ...zap.Field) error {
	l := logger.WithRayID(h.service.logger, c)
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusBadRequest
		l.Warn("Rejected bird request", append(fields, zap.Error(err))...)
	case errors.Is(err, ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
		l.Error("Bird request failed", append(fields, zap.Error(err))...)
	default:
		l.Error("Bird request failed", append(fields, zap.Error(err))...)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func imagesParam(c *fiber.Ctx) (int, error) {
	raw := c.Query("images")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("images must be an integer")
	}
	return n, nil
}

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
