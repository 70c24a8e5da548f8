package http

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// outbound is the envelope for every server→client message.
type outbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// client is one connected participant. A dedicated writer goroutine drains
// send, so broadcasts never write to the socket concurrently.
type client struct {
	id    string
	conn  *websocket.Conn
	send  chan outbound
	close sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan outbound, 32),
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			log.Debug().Str("conn", c.id).Err(err).Msg("ws write failed")
			return
		}
	}
}

// enqueue never blocks; a client that cannot keep up loses events rather
// than stalling the room.
func (c *client) enqueue(msg outbound) {
	select {
	case c.send <- msg:
	default:
		log.Warn().Str("conn", c.id).Str("type", msg.Type).Msg("send buffer full, dropping event")
	}
}

func (c *client) closeSend() {
	c.close.Do(func() { close(c.send) })
}

// Hub tracks live connections and their room memberships. It implements
// app.Broadcaster: rooms address connections only through it.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*client
	rooms map[string]map[string]*client
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*client),
		rooms: make(map[string]map[string]*client),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

// unregister drops the connection from the hub and every room group. Room
// state cleanup is the engine's job, not the hub's.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.conns, c.id)
	for code, members := range h.rooms {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, code)
		}
	}
	h.mu.Unlock()
	c.closeSend()
}

func (h *Hub) joinRoom(code string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[code]
	if !ok {
		members = make(map[string]*client)
		h.rooms[code] = members
	}
	members[c.id] = c
}

func (h *Hub) leaveRoom(code string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[code]; ok {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, code)
		}
	}
}

// ToRoom fans an event out to every connection joined to the room.
func (h *Hub) ToRoom(roomCode, event string, payload any) {
	h.mu.RLock()
	members := make([]*client, 0, len(h.rooms[roomCode]))
	for _, c := range h.rooms[roomCode] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	msg := outbound{Type: event, Payload: payload}
	for _, c := range members {
		c.enqueue(msg)
	}
}

// ToConn delivers an event to a single connection, if still present.
func (h *Hub) ToConn(connID, event string, payload any) {
	h.mu.RLock()
	c, ok := h.conns[connID]
	h.mu.RUnlock()
	if ok {
		c.enqueue(outbound{Type: event, Payload: payload})
	}
}
