package progress

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades GET /ws/progress/:id and streams stage events until
// the client hangs up. The read loop exists only to notice the close.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.Param("id"))
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request id is required"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.Join(requestID, ws)

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
		hub.Leave(requestID, ws)
	}
}
