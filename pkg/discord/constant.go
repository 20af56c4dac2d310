package discord

import (
	"errors"
	"net/http"
	"time"
)

const webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Embed sidebar colors per message type.
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "support-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
