package websocket

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records writes and can be told to fail them.
type fakeConn struct {
	mu       sync.Mutex
	writeErr error
	messages [][]byte
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	f.messages = append(f.messages, copied)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(a)
	hub.Register(b)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	hub.Broadcast(Message{Type: "content.changed"})

	assert.Eventually(t, func() bool {
		return a.messageCount() == 1 && b.messageCount() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHubDropsFailedWriterAndKeepsRunning(t *testing.T) {
	hub := NewHub()
	healthy := &fakeConn{}
	broken := &fakeConn{writeErr: errors.New("connection reset")}
	hub.Register(healthy)
	hub.Register(broken)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 5*time.Millisecond)

	// Flood past the broadcast buffer so a wedged loop would be felt.
	for i := 0; i < 20; i++ {
		hub.Broadcast(Message{Type: "content.changed"})
	}

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)
	assert.True(t, broken.isClosed(), "the failed writer is closed when dropped")

	// The loop must still accept registrations after the failure.
	late := &fakeConn{}
	done := make(chan struct{})
	go func() {
		hub.Register(late)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register blocked after a failed broadcast write")
	}

	hub.Broadcast(Message{Type: "content.changed"})
	assert.Eventually(t, func() bool { return late.messageCount() >= 1 },
		time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, healthy.messageCount(), 20,
		"the healthy client receives every broadcast")
}

func TestHubUnregisterRemovesClient(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	hub.Unregister(conn)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 5*time.Millisecond)
	assert.True(t, conn.isClosed())
}
