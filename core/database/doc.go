// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure connections to the bird catalog
// based on the application's configuration. Three drivers are supported:
//   - postgres: the production catalog (pgx underneath)
//   - mysql: alternative deployments
//   - sqlite: local development and tests (":memory:" works)
//
// # Connect
//
// Connect opens the pool, applies pool limits and verifies the connection with a
// bounded ping. Connection setup and network I/O are bounded by TimeoutSeconds so
// an unreachable store surfaces as an error instead of a hang.
//
// # Schema Inspection
//
// GetTableColumns returns the columns of a table, normalized to lowercase, for
// the schema integrity check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "images")
package database
