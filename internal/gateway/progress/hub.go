// Package progress pushes generation stage updates to subscribed websocket
// clients, keyed by request id. Updates published before a client connects
// are replayed from a short history on join.
package progress

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const defaultHistorySize = 20

type Event struct {
	RequestID string    `json:"request_id"`
	Stage     string    `json:"stage"`
	At        time.Time `json:"at"`
}

type stream struct {
	connections map[*websocket.Conn]struct{}
	history     []Event
	done        bool
}

type Hub struct {
	mu          sync.Mutex
	streams     map[string]*stream
	historySize int
}

func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &Hub{
		streams:     make(map[string]*stream),
		historySize: historySize,
	}
}

// Join subscribes a connection, writing the events it missed to the socket
// before registering it. The replay happens under the hub lock — the same
// lock Publish writes under — so the connection never has two writers:
// gorilla/websocket allows at most one concurrent writer per connection.
func (h *Hub) Join(requestID string, ws *websocket.Conn) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.streamLocked(requestID)
	missed := append([]Event(nil), s.history...)
	for _, ev := range missed {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = ws.Close()
			return missed
		}
	}
	s.connections[ws] = struct{}{}
	return missed
}

func (h *Hub) Leave(requestID string, ws *websocket.Conn) {
	h.mu.Lock()
	if s, ok := h.streams[requestID]; ok {
		delete(s.connections, ws)
		if len(s.connections) == 0 && s.done {
			delete(h.streams, requestID)
		}
	}
	h.mu.Unlock()
	_ = ws.Close()
}

// Publish fans one stage update out to every subscriber. The "done" stage
// marks the stream finished so it can be reaped once the last client leaves.
func (h *Hub) Publish(requestID, stage string) {
	ev := Event{RequestID: requestID, Stage: stage, At: time.Now().UTC()}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.streamLocked(requestID)
	s.history = append(s.history, ev)
	if len(s.history) > h.historySize {
		s.history = s.history[len(s.history)-h.historySize:]
	}
	if stage == "done" {
		s.done = true
	}

	for ws := range s.connections {
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = ws.Close()
			delete(s.connections, ws)
		}
	}
}

func (h *Hub) streamLocked(requestID string) *stream {
	s, ok := h.streams[requestID]
	if !ok {
		s = &stream{connections: make(map[*websocket.Conn]struct{})}
		h.streams[requestID] = s
	}
	return s
}
