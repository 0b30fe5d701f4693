package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// DefaultTimeout is the HTTP timeout for webhook calls.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is how many times a failed webhook call is retried.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the pause between retries.
	DefaultRetryDelay = time.Second
	// DefaultUsername is the name messages are posted under.
	DefaultUsername = "physrisk-api"
	// MaxMessageLength is Discord's hard limit on message content.
	MaxMessageLength = 2000
	// UserAgent identifies this service to Discord.
	UserAgent = "physrisk-api-webhook"
)
