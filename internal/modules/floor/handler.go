package floor

import (
	"log"
	"net/http"
	"strconv"

	"expofloor/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exhibitions/:id/floor/ws", h.Watch)
}

// Watch upgrades the connection and streams stall status changes for one
// exhibition until the client goes away. The read loop only drains
// control frames; this feed is one-directional.
func (h *Handler) Watch(c *gin.Context) {
	exhibitionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("floor feed: upgrade failed: %v", err)
		return
	}

	h.hub.Register(exhibitionID, conn)
	defer h.hub.Unregister(exhibitionID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
