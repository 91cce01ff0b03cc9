package fillerwords

import (
	"database/sql"
	"fmt"

	"github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// Current schema version
const schemaVersion = 1

// Migration represents a database migration
type Migration struct {
	Version int
	Up      string
}

// Migrations for the filler word database
var migrations = []Migration{
	{
		Version: 1,
		Up: `
-- Filler words table: one row per distinct normalized token
CREATE TABLE IF NOT EXISTS filler_words (
    id   INTEGER PRIMARY KEY,
    word TEXT NOT NULL UNIQUE
);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	var currentVersion int
	err := db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&currentVersion)
	if err == sql.ErrNoRows {
		currentVersion = 0
	} else if err != nil {
		// Table doesn't exist yet
		currentVersion = 0
	}

	for _, m := range migrations {
		if m.Version > currentVersion {
			logging.L_info("fillerwords: applying migration", "version", m.Version)
			_, err := db.Exec(m.Up)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", m.Version, err)
			}
			currentVersion = m.Version
		}
	}

	logging.L_debug("fillerwords: schema initialized", "version", currentVersion)
	return nil
}
