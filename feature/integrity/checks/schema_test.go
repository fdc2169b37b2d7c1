package checks

import (
	"testing"

	"bird-herd/core/database"
	"bird-herd/feature/birds/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_SQLite(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, db.AutoMigrate(&models.RegionStat{}, &models.Image{}))

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched, "%+v", report)
		assert.Equal(t, "sqlite", report.Dialect)
		assert.Equal(t, "ok", report.Tables["stats"].Status)
		assert.Equal(t, "ok", report.Tables["images"].Status)
		assert.Empty(t, report.Errors)
	})

	t.Run("Missing Table And Column", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, db.Exec(`CREATE TABLE images (programmatic_name varchar(255), filepath varchar(1024))`).Error)

		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"delete"}, report.Tables["images"].MissingColumns)
		assert.Equal(t, "error", report.Tables["images"].Status)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "stats")
	})
}

func TestCheckSchema_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	cols := []string{"Field", "Type", "Null", "Key", "Default", "Extra"}

	mock.ExpectQuery("SHOW COLUMNS FROM `stats`").WillReturnRows(sqlmock.NewRows(cols).
		AddRow("programmatic_name", "varchar(255)", "NO", "PRI", nil, "").
		AddRow("region_code", "int(11)", "NO", "PRI", nil, "").
		AddRow("genus", "text", "YES", "", nil, "").
		AddRow("abundance_mean", "double", "YES", "", nil, ""))
	mock.ExpectQuery("SHOW COLUMNS FROM `images`").WillReturnRows(sqlmock.NewRows(cols).
		AddRow("programmatic_name", "varchar(255)", "YES", "MUL", nil, "").
		AddRow("filepath", "varchar(1024)", "NO", "PRI", nil, "").
		AddRow("delete", "tinyint(1)", "NO", "", "0", ""))

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"region_code: expected varchar(32), got int(11)"}, report.Tables["stats"].TypeMismatches)
	assert.Equal(t, "ok", report.Tables["images"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeFamily(t *testing.T) {
	assert.Equal(t, "text", typeFamily("character varying"))
	assert.Equal(t, "text", typeFamily("varchar(255)"))
	assert.Equal(t, "bool", typeFamily("boolean"))
	assert.Equal(t, "bool", typeFamily("tinyint(1)"))
	assert.Equal(t, "integer", typeFamily("bigint"))
	assert.Equal(t, "float", typeFamily("double precision"))
}
