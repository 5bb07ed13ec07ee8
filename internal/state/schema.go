package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS selection_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			memo_name TEXT
		);

		CREATE TABLE IF NOT EXISTS memo_edits (
			name TEXT PRIMARY KEY,
			edited_at INTEGER NOT NULL,
			edit_count INTEGER NOT NULL DEFAULT 1
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
