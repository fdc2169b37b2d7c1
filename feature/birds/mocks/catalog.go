package mocks

import (
	"context"

	"bird-herd/feature/birds/models"

	"github.com/stretchr/testify/mock"
)

// Catalog is a mock implementation of birds.Catalog
type Catalog struct {
	mock.Mock
}

func (m *Catalog) StatsByRegion(ctx context.Context, region string) ([]models.RegionStat, error) {
	args := m.Called(ctx, region)
	rows, _ := args.Get(0).([]models.RegionStat)
	return rows, args.Error(1)
}

func (m *Catalog) StatsByGenus(ctx context.Context, genus string) ([]models.RegionStat, error) {
	args := m.Called(ctx, genus)
	rows, _ := args.Get(0).([]models.RegionStat)
	return rows, args.Error(1)
}

func (m *Catalog) EligibleImages(ctx context.Context, subjects []string) ([]models.Image, error) {
	args := m.Called(ctx, subjects)
	images, _ := args.Get(0).([]models.Image)
	return images, args.Error(1)
}

func (m *Catalog) MarkExcluded(ctx context.Context, filepath string) (string, bool, error) {
	args := m.Called(ctx, filepath)
	return args.String(0), args.Bool(1), args.Error(2)
}
