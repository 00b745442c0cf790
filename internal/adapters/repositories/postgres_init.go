package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema used by the route repository.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		id TEXT PRIMARY KEY,
		tenant_uuid TEXT NOT NULL,
		name TEXT NOT NULL,
		date TEXT,
		status TEXT NOT NULL DEFAULT 'planned',
		assigned_to TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS route_stops (
		tenant_uuid TEXT NOT NULL,
		route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
		sequence INTEGER NOT NULL,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		PRIMARY KEY (route_id, sequence)
	);
	`

	createTenantIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_routes_tenant_date
	ON routes(tenant_uuid, date);
	`

	createStopsIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_stops_tenant_route
	ON route_stops(tenant_uuid, route_id);
	`

	statements := []string{
		createRoutesQuery,
		createStopsQuery,
		createTenantIndexQuery,
		createStopsIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
