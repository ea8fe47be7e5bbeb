package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogTransport writes messages to the log instead of sending them. It is used
// when no provider is configured.
type LogTransport struct {
	Logger *slog.Logger
}

func (t *LogTransport) Send(ctx context.Context, msg Message) (Ack, error) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	logger.InfoContext(ctx, "verification email issued",
		slog.String("id", id),
		slog.String("from", msg.From),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return Ack{Provider: ProviderLog, ID: id}, nil
}
