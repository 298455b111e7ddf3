package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

const contentSubject = "content.changed"

// NATSEventBus carries content-change events between API instances over
// core NATS pub/sub, so every open admin console refreshes no matter
// which instance handled the mutation.
type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url,
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

	logger.Info("NATS event bus initialized", "url", url, "subject", contentSubject)
	return &NATSEventBus{conn: conn}, nil
}

func (b *NATSEventBus) PublishContentChange(ctx context.Context, event ports.ContentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	if err := b.conn.Publish(contentSubject, data); err != nil {
		return fmt.Errorf("failed to publish content event: %w", err)
	}

	logger.Debug("Content event published",
		"category", event.Category,
		"action", event.Action,
		"id", event.ID,
	)
	return nil
}

func (b *NATSEventBus) SubscribeContentChanges(ctx context.Context, handler func(*ports.ContentEvent)) error {
	sub, err := b.conn.Subscribe(contentSubject, func(msg *nats.Msg) {
		var event ports.ContentEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed content event", "error", err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to content events: %w", err)
	}

	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
	}()

	return nil
}

func (b *NATSEventBus) Close() {
	if b.conn != nil {
		b.conn.Close()
	}
}
