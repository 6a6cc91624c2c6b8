package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"jobupdate/domain/ports"
	"jobupdate/pkg/logger"
)

const SubjectAutoPost = "jobs.autopost"

// EventBus is the NATS implementation of ports.EventBus. Plain core NATS
// pub/sub is enough here: a missed autopost event is recovered by the next
// cron cycle, so persistent streams are not needed.
type EventBus struct {
	conn *nats.Conn
	sub  *nats.Subscription
}

func NewEventBus(url string) (ports.EventBus, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS connected", "url", url)
	return &EventBus{conn: nc}, nil
}

func (b *EventBus) PublishRunEvent(ctx context.Context, event *ports.RunEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := b.conn.Publish(SubjectAutoPost, data); err != nil {
		return fmt.Errorf("failed to publish run event: %w", err)
	}
	return b.conn.FlushTimeout(5 * time.Second)
}

func (b *EventBus) SubscribeRunEvents(handler func(event *ports.RunEvent)) error {
	sub, err := b.conn.Subscribe(SubjectAutoPost, func(msg *nats.Msg) {
		var event ports.RunEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Malformed run event, dropping", "error", err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectAutoPost, err)
	}

	b.sub = sub
	logger.Info("Subscribed to run events", "subject", SubjectAutoPost)
	return nil
}

func (b *EventBus) Close() {
	if b.sub != nil {
		_ = b.sub.Unsubscribe()
	}
	if b.conn != nil {
		b.conn.Close()
		logger.Info("NATS connection closed")
	}
}
