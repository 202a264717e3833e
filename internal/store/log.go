package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tgasparic/paketnik/internal/model"
)

// GetItemLog returns an item's audit entries, oldest first. Every item has at
// least one entry (the creation entry) from the moment it exists.
func GetItemLog(ctx context.Context, db *sql.DB, itemID int64) ([]model.LogEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, entry, created_at
		 FROM item_log WHERE item_id = ? ORDER BY id`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting item log: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Entry, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RenderLog joins entries into the accumulated human-readable trail, one
// newline-terminated line per entry.
func RenderLog(entries []model.LogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Entry)
		b.WriteByte('\n')
	}
	return b.String()
}
