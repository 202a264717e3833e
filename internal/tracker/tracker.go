// Package tracker is the core facade the presentation layers call into. It
// ties the record store, the status state machine and the notification
// dispatcher together.
package tracker

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/tgasparic/paketnik/internal/model"
	"github.com/tgasparic/paketnik/internal/notify"
	"github.com/tgasparic/paketnik/internal/store"
)

// Tracker holds the dependencies of the core operations. The store handle and
// the sender are injected by the caller; Tracker owns neither lifecycle.
type Tracker struct {
	DB     *sql.DB
	Sender notify.Sender
}

// New creates a Tracker.
func New(db *sql.DB, sender notify.Sender) *Tracker {
	return &Tracker{DB: db, Sender: sender}
}

// CreateItem registers a new item in pending state and returns it. Fails with
// *store.ValidationError on empty fields or a malformed phone number.
func (t *Tracker) CreateItem(ctx context.Context, ownerName, description, phone string) (*model.Item, error) {
	return store.CreateItem(ctx, t.DB, ownerName, description, phone)
}

// ListItemsByOwner returns all items registered under the exact owner name,
// never nil.
func (t *Tracker) ListItemsByOwner(ctx context.Context, ownerName string) ([]model.Item, error) {
	items, err := store.FindItemsByOwner(ctx, t.DB, ownerName)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// AdvanceStatus moves an item to the requested status. When the transition
// enters the notified state the owner is texted; the dispatch result is
// returned alongside the transition and never undoes it — "logically notified"
// is deliberately decoupled from "SMS actually arrived". The result is nil for
// transitions that do not notify.
func (t *Tracker) AdvanceStatus(ctx context.Context, id int64, requested string) (*model.Item, string, *notify.Result, error) {
	item, entry, notifyOwner, err := store.AdvanceItemStatus(ctx, t.DB, id, requested)
	if err != nil {
		return nil, "", nil, err
	}
	if !notifyOwner {
		return item, entry, nil, nil
	}

	tmpl, err := store.GetSMSTemplate(ctx, t.DB)
	if err != nil {
		slog.Error("failed to load sms template, using default", "error", err)
		tmpl = store.DefaultSMSTemplate
	}
	body := strings.ReplaceAll(tmpl, "{item}", item.Description)

	result := t.Sender.SendText(ctx, item.Phone, body)
	if result.Sent {
		slog.Info("owner notified", "item", item.ID, "message_id", result.MessageID)
	} else {
		slog.Warn("sms dispatch failed", "item", item.ID, "reason", result.Reason)
	}
	return item, entry, &result, nil
}

// GetItem returns one item by id. Fails with store.ErrNotFound.
func (t *Tracker) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := store.GetItem(ctx, t.DB, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, store.ErrNotFound
	}
	return item, nil
}

// ItemLog returns the accumulated audit trail text for an item. Fails with
// store.ErrNotFound for an unknown id.
func (t *Tracker) ItemLog(ctx context.Context, id int64) (string, error) {
	if _, err := t.GetItem(ctx, id); err != nil {
		return "", err
	}
	entries, err := store.GetItemLog(ctx, t.DB, id)
	if err != nil {
		return "", err
	}
	return store.RenderLog(entries), nil
}
