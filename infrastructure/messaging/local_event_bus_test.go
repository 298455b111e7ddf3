package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VSP7988/maranatha-api/domain/ports"
)

func TestLocalEventBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewLocalEventBus()
	ctx := context.Background()

	var first, second *ports.ContentEvent
	require.NoError(t, bus.SubscribeContentChanges(ctx, func(e *ports.ContentEvent) { first = e }))
	require.NoError(t, bus.SubscribeContentChanges(ctx, func(e *ports.ContentEvent) { second = e }))

	event := ports.ContentEvent{
		Category: "banner",
		Table:    "banners",
		Action:   ports.ContentActionCreated,
		ID:       uuid.New(),
		At:       time.Now().UTC(),
	}
	require.NoError(t, bus.PublishContentChange(ctx, event))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, event.ID, first.ID)
	assert.Equal(t, event.ID, second.ID)

	// Handlers get copies, mutating one must not leak into another.
	first.Category = "mutated"
	assert.Equal(t, "banner", second.Category)
}

func TestLocalEventBusNoSubscribers(t *testing.T) {
	bus := NewLocalEventBus()
	err := bus.PublishContentChange(context.Background(), ports.ContentEvent{Category: "event"})
	assert.NoError(t, err)
}
