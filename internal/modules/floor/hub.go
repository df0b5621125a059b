package floor

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans stall status updates out to every dashboard watching an
// exhibition's floor.
type Hub struct {
	mutex sync.RWMutex
	// connections per exhibition id
	connections map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(exhibitionID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.connections[exhibitionID] == nil {
		h.connections[exhibitionID] = make(map[*websocket.Conn]bool)
	}
	h.connections[exhibitionID][conn] = true
}

func (h *Hub) Unregister(exhibitionID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.connections[exhibitionID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.connections, exhibitionID)
		}
	}
}

// Broadcast sends a message to every watcher of the exhibition. Dead
// connections are dropped as they fail.
func (h *Hub) Broadcast(exhibitionID int64, message interface{}) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections[exhibitionID]))
	for conn := range h.connections[exhibitionID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(exhibitionID, conn)
		}
	}
}

func (h *Hub) WatcherCount(exhibitionID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[exhibitionID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for exhibitionID, conns := range h.connections {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.connections, exhibitionID)
	}
}
