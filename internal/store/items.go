package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tgasparic/paketnik/internal/model"
	"github.com/tgasparic/paketnik/internal/status"
)

// validPhone reports whether phone is exactly 11 decimal digits. Checked once,
// at creation; the field is immutable afterwards.
func validPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CreateItem validates input and inserts a new item together with its creation
// log entry in a single transaction, so no reader ever observes an item
// without at least one audit entry.
func CreateItem(ctx context.Context, db *sql.DB, ownerName, description, phone string) (*model.Item, error) {
	switch {
	case ownerName == "":
		return nil, &ValidationError{Field: "owner_name", Reason: "must not be empty"}
	case description == "":
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	case !validPhone(phone):
		return nil, &ValidationError{Field: "phone", Reason: "must be exactly 11 digits"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (owner_name, description, phone, status) VALUES (?, ?, ?, ?)`,
		ownerName, description, phone, model.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_log (item_id, entry) VALUES (?, ?)`,
		id, status.CreationEntry(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("writing creation log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil when it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, owner_name, description, phone, status, arrival_time
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.OwnerName, &item.Description, &item.Phone, &item.Status, &item.ArrivalTime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// FindItemsByOwner returns all items whose owner name matches exactly. Owner
// names are not unique; an unknown owner yields an empty result, not an error.
func FindItemsByOwner(ctx context.Context, db *sql.DB, ownerName string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_name, description, phone, status, arrival_time
		 FROM items WHERE owner_name = ? ORDER BY arrival_time, id`, ownerName,
	)
	if err != nil {
		return nil, fmt.Errorf("finding items by owner: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.OwnerName, &item.Description, &item.Phone, &item.Status, &item.ArrivalTime); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdvanceItemStatus moves an item one step along the fixed lifecycle. The
// current status is read, validated and updated together with the log append
// inside a single transaction, so two concurrent requests on the same item
// cannot interleave their read-modify-write and the log/status pairing never
// tears. Returns the updated item, the appended log entry, and whether the
// transition entered the notified state.
//
// Fails with ErrNotFound for an unknown id and *status.InvalidTransitionError
// when the requested status does not follow the current one; in both cases the
// item is left unchanged.
func AdvanceItemStatus(ctx context.Context, db *sql.DB, id int64, requested string) (*model.Item, string, bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM items WHERE id = ?`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, "", false, ErrNotFound
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("reading current status: %w", err)
	}

	entry, notifyOwner, err := status.Plan(current, requested, time.Now())
	if err != nil {
		return nil, "", false, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, requested, id); err != nil {
		return nil, "", false, fmt.Errorf("updating status: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO item_log (item_id, entry) VALUES (?, ?)`, id, entry); err != nil {
		return nil, "", false, fmt.Errorf("appending log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", false, fmt.Errorf("committing transition: %w", err)
	}

	item, err := GetItem(ctx, db, id)
	if err != nil {
		return nil, "", false, err
	}
	return item, entry, notifyOwner, nil
}
