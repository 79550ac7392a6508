package notification

import (
	"context"

	"oficio/models"

	"go.uber.org/zap"
)

// Notifier delivers appointment reminders to clients. Push and SMS delivery
// live behind external services; this interface keeps the worker decoupled
// from whichever channel is wired in.
type Notifier interface {
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotifier is the default Notifier: it records the reminder through the
// structured logger so downstream delivery can be attached later.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	n.Logger.Info("Reminder due",
		zap.String("leadID", payload.LeadID),
		zap.String("clientID", payload.ClientID),
		zap.String("title", payload.Title),
		zap.String("body", payload.Body),
		zap.String("fireDate", payload.FireDate),
	)
	return nil
}
