package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements, applied in order. Statements are idempotent so
// migration can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		full_name  TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		token      TEXT NOT NULL,
		token_exp  INTEGER NOT NULL DEFAULT 0,
		profile    TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
