package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent and are
// re-run on each open.
//
// The store is a plain key/value table: the activity collection, the week
// selection and every per-day note live under their own keys.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schema_meta (
		id      INTEGER PRIMARY KEY CHECK(id = 1),
		version INTEGER NOT NULL
	)`,

	`INSERT OR IGNORE INTO schema_meta (id, version) VALUES (1, 1)`,
}
