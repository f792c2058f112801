package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// hub is the process-wide connection registry, grouped by room code. It
// has its own lock so broadcast latency never couples to room-state
// mutation latency.
type hub struct {
	mu           sync.Mutex
	rooms        map[string]map[*client]struct{}
	writeTimeout time.Duration
}

type client struct {
	id   string
	conn *websocket.Conn
}

func newHub(writeTimeout time.Duration) *hub {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &hub{
		rooms:        make(map[string]map[*client]struct{}),
		writeTimeout: writeTimeout,
	}
}

func (h *hub) add(roomCode string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[roomCode]
	if group == nil {
		group = make(map[*client]struct{})
		h.rooms[roomCode] = group
	}
	group[c] = struct{}{}
}

func (h *hub) remove(roomCode string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[roomCode]
	if group == nil {
		return
	}
	if _, ok := group[c]; !ok {
		return
	}
	delete(group, c)
	_ = c.conn.Close()
	if len(group) == 0 {
		delete(h.rooms, roomCode)
	}
}

// broadcast delivers payload to every connection in the room. Deliveries
// are independent: a failed or stalled connection is evicted and never
// blocks the rest past the write timeout.
func (h *hub) broadcast(roomCode string, payload any) {
	h.mu.Lock()
	group := h.rooms[roomCode]
	clients := make([]*client, 0, len(group))
	for c := range group {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	for _, c := range clients {
		_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws evicted room_code=%s conn_id=%s error=%v", roomCode, c.id, err)
			h.remove(roomCode, c)
		}
	}
}

func (h *hub) send(c *client, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	_ = c.conn.WriteMessage(websocket.TextMessage, data)
}

// closeRoom drops every connection of a reclaimed room.
func (h *hub) closeRoom(roomCode string) {
	h.mu.Lock()
	group := h.rooms[roomCode]
	delete(h.rooms, roomCode)
	h.mu.Unlock()
	for c := range group {
		_ = c.conn.Close()
	}
}

func (h *hub) roomSize(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	roomCode, ok := parseWebsocketPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	roomCode = normalizeCode(roomCode)
	if !s.store.HasRoom(roomCode) {
		http.NotFound(w, r)
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{id: uuid.NewString(), conn: conn}
	log.Printf("ws connected room_code=%s conn_id=%s remote=%s", roomCode, c.id, r.RemoteAddr)
	s.hub.add(roomCode, c)
	s.sendState(roomCode, c)
	go s.readWS(roomCode, c)
}

// wsMessage is the inbound client message envelope. Only the fixed set of
// event types below is relayed; everything else is dropped. The hub does
// not check payloads against room truth, it is a relay.
type wsMessage struct {
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data"`
	Nickname string          `json:"nickname"`
	Player   string          `json:"player"`
	Choice   string          `json:"choice"`
}

func (s *Server) readWS(roomCode string, c *client) {
	defer func() {
		s.hub.remove(roomCode, c)
		s.hub.broadcast(roomCode, map[string]any{"type": wsTypePlayerDisconnected})
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected room_code=%s conn_id=%s error=%v", roomCode, c.id, err)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.touchRoom(roomCode)
		switch msg.Type {
		case wsTypeUpdate:
			s.hub.broadcast(roomCode, map[string]any{
				"type": wsTypeStateUpdate,
				"data": msg.Data,
			})
		case wsTypePlayerJoined:
			s.hub.broadcast(roomCode, map[string]any{
				"type":     wsTypePlayerJoined,
				"nickname": msg.Nickname,
			})
		case wsTypeGameStarted:
			s.hub.broadcast(roomCode, map[string]any{"type": wsTypeGameStarted})
		case wsTypeChoiceMade:
			s.hub.broadcast(roomCode, map[string]any{
				"type":   wsTypeChoiceMade,
				"player": msg.Player,
				"choice": msg.Choice,
			})
		case wsTypeTurnComplete:
			s.hub.broadcast(roomCode, map[string]any{"type": wsTypeTurnComplete})
		case wsTypeGameFinished:
			s.hub.broadcast(roomCode, map[string]any{"type": wsTypeGameFinished})
		default:
			log.Printf("ws unknown message room_code=%s conn_id=%s type=%s", roomCode, c.id, msg.Type)
		}
	}
}

// stateSnapshot projects the room under its read lock. The returned maps
// are freshly built, so callers can hand them to the hub after the lock
// is released; socket writes must never run while a room lock is held.
func (s *Server) stateSnapshot(roomCode string) (map[string]any, bool) {
	var state map[string]any
	if err := s.store.ViewRoom(roomCode, func(room *Room) error {
		state = roomStateView(room)
		return nil
	}); err != nil {
		return nil, false
	}
	return state, true
}

func (s *Server) sendState(roomCode string, c *client) {
	state, ok := s.stateSnapshot(roomCode)
	if !ok {
		return
	}
	s.hub.send(c, map[string]any{
		"type": wsTypeStateUpdate,
		"data": state,
	})
}

// broadcastState pushes a fresh state snapshot to the whole room after a
// successful mutation, so clients stay consistent without having to
// publish their own update events. A stalled connection can hold a write
// for up to the hub timeout, so the broadcast runs outside the room lock.
func (s *Server) broadcastState(roomCode string) {
	state, ok := s.stateSnapshot(roomCode)
	if !ok {
		return
	}
	s.hub.broadcast(roomCode, map[string]any{
		"type": wsTypeStateUpdate,
		"data": state,
	})
}

func (s *Server) broadcastRoomEvent(roomCode, eventType string, fields map[string]any) {
	payload := map[string]any{"type": eventType}
	for key, value := range fields {
		payload[key] = value
	}
	s.hub.broadcast(roomCode, payload)
}
