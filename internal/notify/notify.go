// Package notify sends one-way SMS notifications to item owners. Dispatch
// failures are data, not errors: every attempt produces a Result carrying
// either the provider's message id or a failure reason, and the caller decides
// what to do with it.
package notify

import "context"

// Result is the outcome of a dispatch attempt. Exactly one of MessageID or
// Reason is set.
type Result struct {
	Sent      bool   `json:"sent"`
	MessageID string `json:"message_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Sent builds a successful Result.
func Sent(messageID string) Result {
	return Result{Sent: true, MessageID: messageID}
}

// Failed builds a failed Result.
func Failed(reason string) Result {
	return Result{Reason: reason}
}

// Sender delivers a text message to a phone number. Implementations never
// return an error; any failure is folded into the Result.
type Sender interface {
	SendText(ctx context.Context, phone, body string) Result
}
