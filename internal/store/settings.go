package store

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultSMSTemplate is the message sent to an owner when their item enters
// the notified state. {item} is replaced with the item description.
const DefaultSMSTemplate = `Your item "{item}" has arrived and is ready for pickup.`

const smsTemplateKey = "sms_template"

// GetSMSTemplate retrieves the SMS body template, storing the default on
// first use. Uses INSERT OR IGNORE + re-SELECT to avoid a TOCTOU race on
// concurrent startup.
func GetSMSTemplate(ctx context.Context, db *sql.DB) (string, error) {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		smsTemplateKey, DefaultSMSTemplate,
	)
	if err != nil {
		return "", fmt.Errorf("storing default sms template: %w", err)
	}

	var tmpl string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, smsTemplateKey,
	).Scan(&tmpl)
	if err != nil {
		return "", fmt.Errorf("querying sms template: %w", err)
	}

	return tmpl, nil
}

// SetSMSTemplate replaces the SMS body template.
func SetSMSTemplate(ctx context.Context, db *sql.DB, tmpl string) error {
	if tmpl == "" {
		return &ValidationError{Field: "sms_template", Reason: "must not be empty"}
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		smsTemplateKey, tmpl,
	)
	if err != nil {
		return fmt.Errorf("setting sms template: %w", err)
	}
	return nil
}
