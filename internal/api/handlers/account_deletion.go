package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
	"github.com/auctionsniper/ebay-relay/internal/notify"
)

const maxDeletionBody = 64 << 10

// ProfileClearer removes stored eBay credentials for a linked eBay user.
type ProfileClearer interface {
	ClearByEbayUserID(ctx context.Context, ebayUserID string) (int64, error)
}

// AccountDeletionHandler answers eBay's marketplace account deletion
// endpoint: the GET challenge and the POST notification.
type AccountDeletionHandler struct {
	verificationToken string
	endpointURL       string
	profiles          ProfileClearer
	notifier          notify.Notifier
	log               *slog.Logger
}

// NewAccountDeletionHandler creates a new AccountDeletionHandler. The
// endpoint URL must match the one registered with eBay exactly.
func NewAccountDeletionHandler(
	verificationToken, endpointURL string,
	profiles ProfileClearer,
	notifier notify.Notifier,
	log *slog.Logger,
) *AccountDeletionHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AccountDeletionHandler{
		verificationToken: verificationToken,
		endpointURL:       endpointURL,
		profiles:          profiles,
		notifier:          notifier,
		log:               log,
	}
}

// ChallengeHash computes hex(sha256(code + token + endpoint)).
func ChallengeHash(code, token, endpoint string) string {
	h := sha256.New()
	h.Write([]byte(code))
	h.Write([]byte(token))
	h.Write([]byte(endpoint))
	return hex.EncodeToString(h.Sum(nil))
}

// Challenge answers eBay's endpoint ownership check.
//
// @Summary Account deletion challenge
// @Tags ebay-webhooks
// @Produce json
// @Param challenge_code query string true "Challenge code sent by eBay"
// @Success 200 {object} ChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/ebay-account-deletion [get]
func (h *AccountDeletionHandler) Challenge(c echo.Context) error {
	code := c.QueryParam("challenge_code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing challenge_code"})
	}

	return c.JSON(http.StatusOK, ChallengeResponse{
		ChallengeResponse: ChallengeHash(code, h.verificationToken, h.endpointURL),
	})
}

// deletionNotification is the subset of eBay's
// MARKETPLACE_ACCOUNT_DELETION payload the relay reads.
type deletionNotification struct {
	Metadata struct {
		Topic string `json:"topic"`
	} `json:"metadata"`
	Notification struct {
		NotificationID string    `json:"notificationId"`
		EventDate      time.Time `json:"eventDate"`
		Data           struct {
			Username  string `json:"username"`
			UserID    string `json:"userId"`
			EIASToken string `json:"eiasToken"`
		} `json:"data"`
	} `json:"notification"`
}

// Notify processes an account deletion notification. The response is
// always 200; processing failures are logged and counted.
//
// @Summary Account deletion notification
// @Tags ebay-webhooks
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/users/ebay-account-deletion [post]
func (h *AccountDeletionHandler) Notify(c echo.Context) error {
	ctx := c.Request().Context()
	ack := MessageResponse{Message: "Account deletion received"}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxDeletionBody))
	if err != nil {
		metrics.AccountDeletionsTotal.WithLabelValues("failed").Inc()
		h.log.Warn("reading account deletion body", "error", err)
		return c.JSON(http.StatusOK, ack)
	}

	var n deletionNotification
	if err := json.Unmarshal(body, &n); err != nil || n.Notification.Data.UserID == "" {
		metrics.AccountDeletionsTotal.WithLabelValues("ignored").Inc()
		h.log.Warn("ignoring unrecognized account deletion payload", "bytes", len(body))
		return c.JSON(http.StatusOK, ack)
	}

	data := n.Notification.Data
	cleared, err := h.profiles.ClearByEbayUserID(ctx, data.UserID)
	if err != nil {
		metrics.AccountDeletionsTotal.WithLabelValues("failed").Inc()
		h.log.Error("clearing profiles for deleted ebay account",
			"notification_id", n.Notification.NotificationID,
			"error", err,
		)
		return c.JSON(http.StatusOK, ack)
	}

	metrics.AccountDeletionsTotal.WithLabelValues("processed").Inc()
	h.log.Info("processed ebay account deletion",
		"notification_id", n.Notification.NotificationID,
		"topic", n.Metadata.Topic,
		"profiles_cleared", cleared,
	)

	if err := h.notifier.SendAccountDeletion(ctx, &notify.AccountDeletion{
		NotificationID:  n.Notification.NotificationID,
		EbayUserID:      data.UserID,
		EbayUsername:    data.Username,
		EventDate:       n.Notification.EventDate,
		ProfilesCleared: cleared,
	}); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		h.log.Warn("sending account deletion notification", "error", err)
	}

	return c.JSON(http.StatusOK, ack)
}

// RegisterAccountDeletionRoutes mounts the webhook on the echo server.
func RegisterAccountDeletionRoutes(e *echo.Echo, h *AccountDeletionHandler) {
	e.GET("/api/users/ebay-account-deletion", h.Challenge)
	e.POST("/api/users/ebay-account-deletion", h.Notify)
}
