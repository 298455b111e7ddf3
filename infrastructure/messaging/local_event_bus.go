package messaging

import (
	"context"
	"sync"

	"github.com/VSP7988/maranatha-api/domain/ports"
)

// LocalEventBus is the in-process fallback when NATS is not configured.
// Single-instance deployments still get live admin refresh through it.
type LocalEventBus struct {
	mu       sync.RWMutex
	handlers []func(*ports.ContentEvent)
}

func NewLocalEventBus() *LocalEventBus {
	return &LocalEventBus{}
}

func (b *LocalEventBus) PublishContentChange(ctx context.Context, event ports.ContentEvent) error {
	b.mu.RLock()
	handlers := make([]func(*ports.ContentEvent), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		e := event
		h(&e)
	}
	return nil
}

func (b *LocalEventBus) SubscribeContentChanges(ctx context.Context, handler func(*ports.ContentEvent)) error {
	b.mu.Lock()
	b.handlers = append(b.handlers, handler)
	b.mu.Unlock()
	return nil
}
