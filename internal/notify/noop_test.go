package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_SendAccountDeletion(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendAccountDeletion(context.Background(), &AccountDeletion{
		NotificationID:  "notif-1",
		EbayUserID:      "ebay-1",
		ProfilesCleared: 1,
	})
	require.NoError(t, err)
}

// compile-time interface check.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
)
