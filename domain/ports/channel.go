package ports

import (
	"context"

	"jobupdate/domain/models"
)

// ChannelPublisher posts a published listing to one external messaging
// channel (Telegram channel, WhatsApp gateway). Send must return a non-nil
// error unless the channel API acknowledged delivery; the caller sets the
// per-channel posted flag only on success.
type ChannelPublisher interface {
	// Name is the channel key used for the posted flag ("telegram", "whatsapp")
	Name() string
	// Send formats and delivers the message, returning the channel's message
	// ID when the API provides one
	Send(ctx context.Context, job *models.Job) (messageID string, err error)
	// IsConfigured reports whether credentials are present; unconfigured
	// channels are skipped silently
	IsConfigured() bool
}
