package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender is a stand-in used when no provider credentials are configured.
// It logs the message instead of sending it and fabricates a message id so
// the rest of the flow behaves exactly as in production.
type LogSender struct{}

// SendText logs the message and reports success.
func (LogSender) SendText(_ context.Context, phone, body string) Result {
	id := "local-" + uuid.NewString()
	slog.Info("sms suppressed, no provider configured", "to", phone, "body", body, "message_id", id)
	return Sent(id)
}
