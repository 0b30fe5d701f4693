package discord

import (
	"net/http"
	"time"

	"physrisk-api/pkg/log"
)

// Config holds webhook client settings.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

// WebhookPayload is the Discord webhook message body.
type WebhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

type webhookInfo struct {
	id    string
	token string
}

type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}
