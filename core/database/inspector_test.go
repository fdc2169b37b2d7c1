package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: DriverSQLite,
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE images (programmatic_name TEXT, filepath TEXT PRIMARY KEY, \"delete\" BOOLEAN)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "images")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["programmatic_name"])
	assert.Equal(t, "text", colMap["filepath"])
	assert.Equal(t, "boolean", colMap["delete"])

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM `stats`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("Programmatic_Name", "VARCHAR(255)", "NO", "PRI", nil, "").
			AddRow("abundance_mean", "DOUBLE", "YES", "", nil, ""))

	columns, err := GetTableColumns(db, "stats")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "programmatic_name", columns[0].Field)
	assert.Equal(t, "varchar(255)", columns[0].Type)
	assert.Equal(t, "double", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
