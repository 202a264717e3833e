package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The audit trail lives in item_log as
// append-only rows rather than a text blob on the item, so a log append and
// its status update can share one transaction.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY,
    owner_name   TEXT NOT NULL,
    description  TEXT NOT NULL,
    phone        TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'notified', 'delivered')),
    arrival_time DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_owner_name ON items(owner_name);

CREATE TABLE IF NOT EXISTS item_log (
    id         INTEGER PRIMARY KEY,
    item_id    INTEGER NOT NULL REFERENCES items(id),
    entry      TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_item_log_item_id ON item_log(item_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
