package integrity

import (
	"context"
	"fmt"

	"bird-herd/core/metrics"
	"bird-herd/core/storage"
	"bird-herd/feature/birds/models"
	"bird-herd/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// scanBatchSize is how many image rows are checked against the bucket at a time.
const scanBatchSize = 500

// ImageCatalog is the part of the bird store the image check needs.
type ImageCatalog interface {
	EachEligibleImage(ctx context.Context, batchSize int, fn func([]models.Image) error) error
	MarkExcluded(ctx context.Context, filepath string) (subject string, found bool, err error)
}

// ImageReport is the result of an image check.
type ImageReport struct {
	Bucket    string   `json:"bucket"`
	Populated bool     `json:"populated"`
	Checked   int      `json:"checked"`
	Missing   []string `json:"missing"`
	Excluded  []string `json:"excluded"`
	Status    string   `json:"status"` // "ok", "missing", "fixed"
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	catalog ImageCatalog
	db      *gorm.DB
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, cfg storage.Config, catalog ImageCatalog, db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		catalog: catalog,
		db:      db,
		metrics: m,
		logger:  logger,
	}
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckImages verifies that every eligible image has an object in the bucket.
// With fix set, images whose object is missing are marked excluded so they are
// never served again.
func (s *Service) CheckImages(ctx context.Context, fix bool) (*ImageReport, error) {
	populated, err := checks.CheckBucket(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}

	report := &ImageReport{
		Bucket:    s.bucket,
		Populated: populated,
		Missing:   []string{},
		Excluded:  []string{},
		Status:    "ok",
	}

	err = s.catalog.EachEligibleImage(ctx, scanBatchSize, func(batch []models.Image) error {
		paths := make([]string, len(batch))
		for i, img := range batch {
			paths[i] = img.Filepath
		}
		missing, err := checks.FindMissingObjects(ctx, s.client, s.bucket, s.prefix, paths, checks.DefaultWorkers)
		if err != nil {
			return err
		}
		report.Checked += len(batch)
		report.Missing = append(report.Missing, missing...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("image check failed: %w", err)
	}

	if len(report.Missing) == 0 {
		return report, nil
	}
	report.Status = "missing"
	s.logger.Warn("Images without a stored object", zap.Int("count", len(report.Missing)))

	if !fix {
		return report, nil
	}

	// Excluding after the scan keeps the batches stable while paging.
	for _, fp := range report.Missing {
		_, found, err := s.catalog.MarkExcluded(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("failed to exclude %s: %w", fp, err)
		}
		if found {
			s.metrics.ImageExcluded()
			report.Excluded = append(report.Excluded, fp)
			s.logger.Info("Excluded image with missing object", zap.String("filepath", fp))
		}
	}
	report.Status = "fixed"
	return report, nil
}
