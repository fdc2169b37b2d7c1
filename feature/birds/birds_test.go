package birds_test

import (
	"testing"

	"bird-herd/core/database"
	"bird-herd/feature/birds/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func abundance(v float64) *float64 {
	return &v
}

// setupCatalogDB returns an in-memory catalog with the schema in place.
func setupCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RegionStat{}, &models.Image{}))
	return db
}

// seedCatalog loads a small catalog:
//
//	USA-CA: turdus_migratorius (5.0), cyanocitta_stelleri (3.0), calypte_anna (no abundance)
//	USA-NY: turdus_migratorius (4.0), cyanocitta_cristata (6.0)
//	USA-AK: turdus_pilaris (0.5)
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	stats := []models.RegionStat{
		{ProgrammaticName: "turdus_migratorius", RegionCode: "USA-CA", Genus: "Turdus", AbundanceMean: abundance(5.0)},
		{ProgrammaticName: "cyanocitta_stelleri", RegionCode: "USA-CA", Genus: "Cyanocitta", AbundanceMean: abundance(3.0)},
		{ProgrammaticName: "calypte_anna", RegionCode: "USA-CA", Genus: "Calypte"},
		{ProgrammaticName: "turdus_migratorius", RegionCode: "USA-NY", Genus: "Turdus", AbundanceMean: abundance(4.0)},
		{ProgrammaticName: "cyanocitta_cristata", RegionCode: "USA-NY", Genus: "Cyanocitta", AbundanceMean: abundance(6.0)},
		{ProgrammaticName: "turdus_pilaris", RegionCode: "USA-AK", Genus: "turdus", AbundanceMean: abundance(0.5)},
	}
	require.NoError(t, db.Create(&stats).Error)

	images := []models.Image{
		{ProgrammaticName: "turdus_migratorius", Filepath: "img1"},
		{ProgrammaticName: "turdus_migratorius", Filepath: "img2"},
		{ProgrammaticName: "cyanocitta_stelleri", Filepath: "steller/1.jpg"},
		{ProgrammaticName: "cyanocitta_stelleri", Filepath: "steller/2.jpg"},
		{ProgrammaticName: "cyanocitta_stelleri", Filepath: "steller/3.jpg"},
		{ProgrammaticName: "calypte_anna", Filepath: "anna/1.jpg"},
		{ProgrammaticName: "cyanocitta_cristata", Filepath: "bluejay/1.jpg"},
		{ProgrammaticName: "turdus_pilaris", Filepath: "fieldfare/1.jpg"},
	}
	require.NoError(t, db.Create(&images).Error)
}

func excludeImage(t *testing.T, db *gorm.DB, filepath string) {
	t.Helper()
	require.NoError(t, db.Model(&models.Image{}).Where("filepath = ?", filepath).Update("delete", true).Error)
}

func isExcluded(t *testing.T, db *gorm.DB, filepath string) bool {
	t.Helper()
	var img models.Image
	require.NoError(t, db.Where("filepath = ?", filepath).Take(&img).Error)
	return img.Excluded
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}
