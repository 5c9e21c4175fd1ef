package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/udisondev/skillkit/internal/db/migrations"
)

// RunMigrations applies the embedded goose migrations to conn. The
// dialect follows the driver, so the same migration set serves both
// backends.
func RunMigrations(ctx context.Context, conn *sql.DB, driver Driver) error {
	goose.SetBaseFS(migrations.FS)

	dialect := "postgres"
	if driver == DriverSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
