package booking

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"travelbooking/internal/domain"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

type Event struct {
	Type    string          `json:"type"`
	Booking *domain.Booking `json:"booking"`
}

// client is one live connection. Only its writePump writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks one live connection per user. A new connection replaces the old one.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) *client {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		close(old.send)
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.connections[userID] = c
	return c
}

// Unregister drops c if it is still the user's current connection.
func (h *Hub) Unregister(userID int64, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if existing, exists := h.connections[userID]; exists && existing == c {
		delete(h.connections, userID)
		close(c.send)
	}
}

// SendToUser queues message for the user's live connection without waiting
// for the write. It reports false when the user is offline or too slow.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	data, err := json.Marshal(message)
	if err != nil {
		slog.Warn("booking event encoding failed", "user_id", userID, "error", err)
		return false
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	c, exists := h.connections[userID]
	if !exists {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		slog.Warn("booking event dropped, client too slow", "user_id", userID)
		return false
	}
}

func (h *Hub) Publish(userID int64, event Event) {
	_ = h.SendToUser(userID, event)
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// Serve owns conn until the peer goes away: a writePump delivers queued events
// and pings, and the read loop answers pongs and unregisters on exit.
func (h *Hub) Serve(userID int64, conn *websocket.Conn) {
	c := h.Register(userID, conn)
	go c.writePump()
	defer func() {
		h.Unregister(userID, c)
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		close(c.send)
		delete(h.connections, userID)
	}
}
