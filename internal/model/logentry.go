package model

import "time"

// LogEntry is one immutable line of an item's audit trail. Entries are only
// ever appended, never edited or removed.
type LogEntry struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Entry     string    `json:"entry"`
	CreatedAt time.Time `json:"created_at"`
}
