package ports

import "context"

// RunEvent summary emitted after a pipeline run, consumed by the autopost
// subscriber
type RunEvent struct {
	RunType   string `json:"run_type"`
	Created   int    `json:"created"`
	Timestamp int64  `json:"timestamp"`
}

// EventBus decouples the pipeline from the publisher: the pipeline emits a
// run event, a subscriber triggers channel posting. Optional: when no broker
// is configured the pipeline calls the publisher directly.
type EventBus interface {
	PublishRunEvent(ctx context.Context, event *RunEvent) error
	SubscribeRunEvents(handler func(event *RunEvent)) error
	Close()
}
