package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Content-change actions.
const (
	ContentActionCreated = "created"
	ContentActionUpdated = "updated"
	ContentActionDeleted = "deleted"
	ContentActionToggled = "toggled"
)

// ContentEvent announces that an admin mutated a content category.
// Open admin consoles use it to refresh their lists.
type ContentEvent struct {
	Category string    `json:"category"`
	Table    string    `json:"table"`
	Action   string    `json:"action"`
	ID       uuid.UUID `json:"id"`
	At       time.Time `json:"at"`
}

// ContentEventPublisher publishes content-change events. Implementations
// must be safe to skip (a nil publisher means events are disabled).
type ContentEventPublisher interface {
	PublishContentChange(ctx context.Context, event ContentEvent) error
}

// ContentEventSubscriber delivers content-change events to a handler
// until the context is cancelled.
type ContentEventSubscriber interface {
	SubscribeContentChanges(ctx context.Context, handler func(*ContentEvent)) error
}
