// Package db persists flattened entity settings in a relational
// database. It runs against PostgreSQL for shared deployments and
// embedded SQLite for local tooling; both drivers speak database/sql
// and accept $N placeholders, so the queries are written once.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	_ "modernc.org/sqlite"             // database/sql driver "sqlite"
)

// Driver selects the database backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// ParseDriver validates a driver name coming from configuration.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(s); d {
	case DriverPostgres, DriverSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

func (d Driver) sqlName() (string, error) {
	switch d {
	case DriverPostgres:
		return "pgx", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", string(d))
	}
}

// Open connects to the settings database and verifies the connection
// with a ping.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	name, err := driver.sqlName()
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return conn, nil
}
