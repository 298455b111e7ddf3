package websocket

import (
	"context"
	"sync"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// ContentBroadcaster bridges content-change events onto the admin
// WebSocket channel so open consoles refresh their lists after another
// admin mutates a category.
type ContentBroadcaster struct {
	sub       ports.ContentEventSubscriber
	hub       *Hub
	running   bool
	runningMu sync.Mutex
	cancel    context.CancelFunc
}

func NewContentBroadcaster(sub ports.ContentEventSubscriber, hub *Hub) *ContentBroadcaster {
	return &ContentBroadcaster{sub: sub, hub: hub}
}

func (b *ContentBroadcaster) Start() error {
	b.runningMu.Lock()
	if b.running {
		b.runningMu.Unlock()
		return nil
	}
	b.running = true
	b.runningMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	if err := b.sub.SubscribeContentChanges(ctx, b.handleEvent); err != nil {
		b.runningMu.Lock()
		b.running = false
		b.runningMu.Unlock()
		cancel()
		return err
	}

	logger.Info("Content broadcaster started")
	return nil
}

func (b *ContentBroadcaster) handleEvent(event *ports.ContentEvent) {
	if event == nil || event.Category == "" {
		logger.Warn("Ignoring malformed content event")
		return
	}

	b.hub.Broadcast(Message{
		Type: "content.changed",
		Data: event,
	})
}

func (b *ContentBroadcaster) Stop() {
	b.runningMu.Lock()
	defer b.runningMu.Unlock()

	if !b.running {
		return
	}
	b.running = false
	if b.cancel != nil {
		b.cancel()
	}
	logger.Info("Content broadcaster stopped")
}
