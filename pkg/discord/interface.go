package discord

import "context"

// IDiscord sends operational reports to a Discord webhook.
// A nil IDiscord is valid everywhere it is accepted; reporting is optional.
type IDiscord interface {
	// ReportBug posts an internal error report. Content longer than
	// MaxMessageLength must be split by the caller.
	ReportBug(ctx context.Context, content string) error
	Close() error
}
