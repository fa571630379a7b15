// Package notify delivers operator notifications about eBay account events.
package notify

import (
	"context"
	"time"
)

// AccountDeletion describes an eBay marketplace account-deletion
// notification and what the relay did about it.
type AccountDeletion struct {
	NotificationID string
	EbayUserID     string
	EbayUsername   string
	EventDate      time.Time
	// ProfilesCleared is how many relay profiles had their token removed.
	ProfilesCleared int64
}

// Notifier sends account event notifications.
type Notifier interface {
	SendAccountDeletion(ctx context.Context, event *AccountDeletion) error
}
