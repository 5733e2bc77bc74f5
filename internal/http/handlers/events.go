package handlers

import (
	"convo-be/internal/ws"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
)

type EventsHandler struct {
	Hub *ws.Hub
}

// Handle upgrades the connection and streams mutation events until the
// client disconnects. The feed is push-only, but reads must keep draining
// so control frames (close/ping/pong) get processed.
func (h *EventsHandler) Handle(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		return // Accept already wrote the error response
	}

	readCtx := conn.CloseRead(c.Request.Context())

	client := h.Hub.AddClient(conn)
	defer h.Hub.RemoveClient(client)

	// block until the client goes away
	<-readCtx.Done()
}
