package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gorilla/websocket"
)

// Hub tracks open sockets so they can be closed on shutdown. Connections
// never see each other.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   *logger.ZapLogger
}

func NewHub(log *logger.ZapLogger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   log,
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}
	h.log.Log(logger.LogEntry{
		Level:   "debug",
		Message: "[hub] register",
		Fields:  map[string]any{"remote": conn.RemoteAddr().String(), "conns": len(h.conns)},
	})
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; !ok {
		return
	}
	delete(h.conns, conn)
	_ = conn.Close()

	h.log.Log(logger.LogEntry{
		Level:   "debug",
		Message: "[hub] unregister",
		Fields:  map[string]any{"conns": len(h.conns)},
	})
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// CloseAll sends a going-away close frame to every socket and drops them.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
		delete(h.conns, conn)
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
