package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// Message is the envelope pushed to connected admin consoles.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Conn is the slice of a websocket connection the hub needs. It is
// satisfied by *websocket.Conn.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub tracks the admin-console WebSocket connections and fans broadcast
// messages out to all of them.
type Hub struct {
	clients    map[Conn]bool
	register   chan Conn
	unregister chan Conn
	broadcast  chan Message
	mu         sync.RWMutex
}

func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[Conn]bool),
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan Message, 16),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			count := len(h.clients)
			h.mu.Unlock()
			logger.Debug("Admin console connected", "clients", count)

		case conn := <-h.unregister:
			h.drop(conn)

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				logger.Warn("Failed to marshal broadcast message", "error", err)
				continue
			}

			h.mu.RLock()
			conns := make([]Conn, 0, len(h.clients))
			for conn := range h.clients {
				conns = append(conns, conn)
			}
			h.mu.RUnlock()

			// Failed writers are removed inline. Sending them through
			// the unregister channel would block this same loop.
			for _, conn := range conns {
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					h.drop(conn)
				}
			}
		}
	}
}

func (h *Hub) drop(conn Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	count := len(h.clients)
	h.mu.Unlock()
	logger.Debug("Admin console disconnected", "clients", count)
}

// Register adds a connection to the hub.
func (h *Hub) Register(conn Conn) {
	h.register <- conn
}

// Unregister removes a connection from the hub and closes it.
func (h *Hub) Unregister(conn Conn) {
	h.unregister <- conn
}

// Broadcast sends a message to every connected client.
func (h *Hub) Broadcast(msg Message) {
	h.broadcast <- msg
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
