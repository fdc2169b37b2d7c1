package birds

import (
	"context"
	"fmt"
	"time"

	"bird-herd/core/metrics"
	"bird-herd/feature/birds/models"
	"bird-herd/feature/birds/selection"

	"go.uber.org/zap"
)

// Mode selects how GetBirds picks subjects within a region.
type Mode string

const (
	// ModeRandom picks subjects uniformly at random.
	ModeRandom Mode = "random"
	// ModeTop picks the most abundant subjects.
	ModeTop Mode = "common"
)

// Service runs the bird sampling queries against a Catalog.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
	metrics *metrics.Metrics
	source  selection.Source
	timeout time.Duration
}

// NewService creates a new bird service. metrics may be nil.
func NewService(catalog Catalog, logger *zap.Logger, m *metrics.Metrics, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		catalog: catalog,
		logger:  logger,
		metrics: m,
		source:  selection.DefaultSource,
		timeout: timeout,
	}
}

// SetSource replaces the randomness source, mainly for tests.
func (s *Service) SetSource(src selection.Source) {
	s.source = src
}

// GetBirds samples nImages images for nSubjects birds of a region.
// Asking for more birds than the region has returns all of them.
func (s *Service) GetBirds(ctx context.Context, region string, nSubjects, nImages int, mode Mode) ([]models.Bird, error) {
	if err := validateCounts(nSubjects, nImages); err != nil {
		return nil, err
	}
	if mode != ModeRandom && mode != ModeTop {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.catalog.StatsByRegion(ctx, region)
	if err != nil {
		return nil, s.storeFailure("stats_by_region", err, zap.String("region", region))
	}

	var candidates []string
	if mode == ModeTop {
		candidates = selection.TopByRegion(s.source, stats, nSubjects)
	} else {
		candidates = selection.RandomByRegion(s.source, stats, nSubjects)
	}

	return s.sample(ctx, string(mode), candidates, nImages)
}

// GetByNames samples nImages images for each of the named birds.
// Names are exact programmatic names; unknown ones are dropped.
func (s *Service) GetByNames(ctx context.Context, names []string, nImages int) ([]models.Bird, error) {
	if err := validateCounts(1, nImages); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.sample(ctx, "names", selection.ByNames(names), nImages)
}

// GetByGenus samples nImages images for every bird of a genus.
func (s *Service) GetByGenus(ctx context.Context, genus string, nImages int) ([]models.Bird, error) {
	if err := validateCounts(1, nImages); err != nil {
		return nil, err
	}
	if genus == "" {
		return []models.Bird{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.catalog.StatsByGenus(ctx, genus)
	if err != nil {
		return nil, s.storeFailure("stats_by_genus", err, zap.String("genus", genus))
	}

	return s.sample(ctx, "genus", selection.ByGenus(stats), nImages)
}

// MarkDeleted excludes the image at filepath and returns a fresh image of the
// same bird. A filepath that does not exist, or is already excluded, yields an
// empty result. The exclusion is committed before the replacement is drawn.
func (s *Service) MarkDeleted(ctx context.Context, filepath string) ([]models.Bird, error) {
	if filepath == "" {
		return []models.Bird{}, nil
	}

	markCtx, cancel := context.WithTimeout(ctx, s.timeout)
	subject, found, err := s.catalog.MarkExcluded(markCtx, filepath)
	cancel()
	if err != nil {
		return nil, s.storeFailure("mark_excluded", err, zap.String("filepath", filepath))
	}
	if !found {
		s.logger.Info("Image not found, nothing to mark", zap.String("filepath", filepath))
		return []models.Bird{}, nil
	}

	s.metrics.ImageExcluded()
	s.logger.Info("Image marked as bad, drawing replacement",
		zap.String("filepath", filepath),
		zap.String("programmatic_name", subject))

	replaceCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.sample(replaceCtx, "replacement", []string{subject}, 1)
}

func (s *Service) sample(ctx context.Context, query string, candidates []string, nImages int) ([]models.Bird, error) {
	if len(candidates) == 0 {
		return []models.Bird{}, nil
	}

	images, err := s.catalog.EligibleImages(ctx, candidates)
	if err != nil {
		return nil, s.storeFailure("eligible_images", err, zap.Int("birds", len(candidates)), zap.String("query", query))
	}

	birds := selection.Sample(s.source, candidates, images, nImages)
	s.metrics.ImagesServed(query, len(birds))
	return birds, nil
}

func (s *Service) storeFailure(operation string, err error, fields ...zap.Field) error {
	s.metrics.StoreError(operation)
	fields = append(fields, zap.String("operation", operation), zap.Error(err))
	s.logger.Error("Catalog operation failed", fields...)
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, operation, err)
}

func validateCounts(nSubjects, nImages int) error {
	if nSubjects < 1 {
		return fmt.Errorf("%w: number of birds must be at least 1, got %d", ErrInvalidInput, nSubjects)
	}
	if nImages < 1 {
		return fmt.Errorf("%w: number of images must be at least 1, got %d", ErrInvalidInput, nImages)
	}
	return nil
}
