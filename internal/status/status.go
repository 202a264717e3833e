// Package status defines the fixed item lifecycle and validates transitions
// along it. The only legal path is pending → notified → delivered; no backward
// moves, no skipping.
package status

import (
	"fmt"
	"time"

	"github.com/tgasparic/paketnik/internal/model"
)

// TimeLayout is the timestamp format used in audit log entries.
const TimeLayout = "2006-01-02 15:04:05"

// order lists the statuses in their one and only legal sequence.
var order = []string{model.StatusPending, model.StatusNotified, model.StatusDelivered}

// InvalidTransitionError reports a requested status that does not immediately
// follow the current one.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

// Known reports whether s is one of the defined statuses.
func Known(s string) bool {
	for _, o := range order {
		if o == s {
			return true
		}
	}
	return false
}

// Next returns the status immediately following s, or "" when s is terminal
// or unknown.
func Next(s string) string {
	for i, o := range order {
		if o == s && i+1 < len(order) {
			return order[i+1]
		}
	}
	return ""
}

// Plan validates a requested transition against the current status. On success
// it returns the audit log entry to append and whether the owner must be
// notified, which is true exactly when the item enters the notified state.
// The record itself is untouched; applying the plan is the store's job.
func Plan(current, requested string, now time.Time) (entry string, notifyOwner bool, err error) {
	if !Known(requested) || Next(current) != requested {
		return "", false, &InvalidTransitionError{From: current, To: requested}
	}
	entry = fmt.Sprintf("Status updated to %s at %s", requested, now.Format(TimeLayout))
	return entry, requested == model.StatusNotified, nil
}

// CreationEntry returns the audit log entry written when an item is created.
func CreationEntry(now time.Time) string {
	return fmt.Sprintf("Item created at %s", now.Format(TimeLayout))
}
