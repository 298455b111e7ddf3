package websocket

import (
	"github.com/gofiber/websocket/v2"

	infraws "github.com/VSP7988/maranatha-api/infrastructure/websocket"
)

// AdminHandler keeps an admin-console connection registered with the
// hub until the client goes away. Inbound frames are drained and
// discarded; the channel is push only.
func AdminHandler(hub *infraws.Hub) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
