package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

const (
	colorRed  = 0xE74C3C // tokens were cleared
	colorGray = 0x95A5A6 // no linked profile
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAccountDeletion posts the event as a Discord embed.
func (d *DiscordNotifier) SendAccountDeletion(ctx context.Context, event *AccountDeletion) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildDeletionEmbed(event)},
	}
	return d.post(ctx, payload)
}

func buildDeletionEmbed(event *AccountDeletion) discordEmbed {
	embed := discordEmbed{
		Title: "eBay account deletion received",
		Color: colorGray,
		Fields: []discordEmbedField{
			{Name: "eBay User ID", Value: orDash(event.EbayUserID), Inline: true},
			{Name: "Username", Value: orDash(event.EbayUsername), Inline: true},
			{Name: "Profiles Cleared", Value: strconv.FormatInt(event.ProfilesCleared, 10), Inline: true},
			{Name: "Notification", Value: orDash(event.NotificationID), Inline: false},
		},
	}

	if event.ProfilesCleared > 0 {
		embed.Color = colorRed
		embed.Description = "Stored refresh tokens for this account were removed."
	} else {
		embed.Description = "No relay profile was linked to this account."
	}

	if !event.EventDate.IsZero() {
		embed.Timestamp = event.EventDate.UTC().Format(time.RFC3339)
	}

	return embed
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
