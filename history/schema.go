package history

import (
	"database/sql"
	"strconv"
	"time"
)

const schemaVersion = 1

// nowUTC returns the current UTC time formatted as RFC3339 for consistent datetime storage
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func createTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_path TEXT NOT NULL,
			game_name TEXT NOT NULL,
			title_id TEXT DEFAULT '',
			started_at TEXT NOT NULL,
			ended_at TEXT,
			exit_code INTEGER
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_game_path ON sessions(game_path)`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES ('schema_version', ?, ?)
	`, strconv.Itoa(schemaVersion), nowUTC())
	if err != nil {
		return err
	}

	return tx.Commit()
}
