package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAccountDeletion logs and discards the event.
func (n *NoOpNotifier) SendAccountDeletion(_ context.Context, event *AccountDeletion) error {
	n.log.Debug("notification discarded (no backend configured)",
		"notification_id", event.NotificationID,
		"ebay_user_id", event.EbayUserID,
		"profiles_cleared", event.ProfilesCleared,
	)
	return nil
}
