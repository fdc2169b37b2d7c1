package birds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bird-herd/feature/birds/models"

	"gorm.io/gorm"
)

// notExcluded matches images whose soft delete flag is unset. A map condition
// makes GORM quote the column, which matters because "delete" is a keyword.
var notExcluded = map[string]any{"delete": false}

// Catalog is the narrow view of the bird catalog the service depends on.
type Catalog interface {
	// StatsByRegion returns every stats row of a region.
	StatsByRegion(ctx context.Context, region string) ([]models.RegionStat, error)
	// StatsByGenus returns the stats rows of a genus across all regions, case-insensitively.
	StatsByGenus(ctx context.Context, genus string) ([]models.RegionStat, error)
	// EligibleImages returns the non-excluded images of the given subjects.
	EligibleImages(ctx context.Context, subjects []string) ([]models.Image, error)
	// MarkExcluded flags a non-excluded image as excluded. found is false when no
	// such image existed at call time, including when it was already excluded.
	MarkExcluded(ctx context.Context, filepath string) (subject string, found bool, err error)
}

// Store implements Catalog on top of GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new catalog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// StatsByRegion returns every stats row of a region.
func (s *Store) StatsByRegion(ctx context.Context, region string) ([]models.RegionStat, error) {
	var rows []models.RegionStat
	if err := s.db.WithContext(ctx).Where("region_code = ?", region).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load stats for region %s: %w", region, err)
	}
	return rows, nil
}

// StatsByGenus returns the stats rows of a genus, ordered by programmatic name.
func (s *Store) StatsByGenus(ctx context.Context, genus string) ([]models.RegionStat, error) {
	var rows []models.RegionStat
	err := s.db.WithContext(ctx).
		Where("LOWER(genus) = ?", strings.ToLower(genus)).
		Order("programmatic_name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for genus %s: %w", genus, err)
	}
	return rows, nil
}

// EligibleImages returns the non-excluded images of the given subjects.
func (s *Store) EligibleImages(ctx context.Context, subjects []string) ([]models.Image, error) {
	if len(subjects) == 0 {
		return nil, nil
	}
	var images []models.Image
	err := s.db.WithContext(ctx).
		Where("programmatic_name IN ?", subjects).
		Where(notExcluded).
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load images for %d birds: %w", len(subjects), err)
	}
	return images, nil
}

// MarkExcluded flags the image at filepath as excluded.
//
// The lookup and the conditional update run in one transaction. The update only
// matches a row that is still not excluded, so when two callers race on the same
// filepath exactly one of them sees found=true.
func (s *Store) MarkExcluded(ctx context.Context, filepath string) (string, bool, error) {
	var subject string
	found := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.Image
		err := tx.Where("filepath = ?", filepath).Where(notExcluded).Take(&img).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		res := tx.Model(&models.Image{}).
			Where("filepath = ?", filepath).
			Where(notExcluded).
			Update("delete", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		subject = img.ProgrammaticName
		found = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to mark image %s: %w", filepath, err)
	}
	return subject, found, nil
}

// EachEligibleImage walks every non-excluded image, batchSize rows at a time.
// GORM pages by primary key, so batches come in filepath order.
func (s *Store) EachEligibleImage(ctx context.Context, batchSize int, fn func([]models.Image) error) error {
	if batchSize <= 0 {
		batchSize = 500
	}
	var batch []models.Image
	res := s.db.WithContext(ctx).
		Where(notExcluded).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		})
	if res.Error != nil {
		return fmt.Errorf("failed to scan images: %w", res.Error)
	}
	return nil
}
