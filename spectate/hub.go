package spectate

import (
	"net/http"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	// Spectators are read-only; any origin may watch.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans the match's snapshot lines out to websocket spectators.
// A slow watcher loses frames, a dead one gets dropped; neither can
// hold up the simulation loop that calls Publish.
type Hub struct {
	log slog.Logger

	mu   sync.Mutex
	subs map[uuid.UUID]*subscriber
	last []byte
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log slog.Logger) *Hub {
	if log == nil {
		log = slog.Disabled
	}
	return &Hub{
		log:  log,
		subs: make(map[uuid.UUID]*subscriber),
	}
}

// Publish hands one snapshot line to every subscriber without
// blocking: a full send queue just drops the frame for that watcher.
func (h *Hub) Publish(line []byte) {
	h.mu.Lock()
	h.last = line
	for id, sub := range h.subs {
		select {
		case sub.send <- line:
		default:
			h.log.Debugf("spectator %s lagging, frame dropped", id)
		}
	}
	h.mu.Unlock()
}

// Watchers returns the current subscriber count.
func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// HandleWatch upgrades the request and streams every snapshot line as
// one text message, starting from the most recent one.
func (h *Hub) HandleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("upgrade: %v", err)
		return
	}

	id := uuid.New()
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	// Queue the replay before the map insert so a concurrent Publish
	// cannot land ahead of it.
	h.mu.Lock()
	if h.last != nil {
		sub.send <- h.last
	}
	h.subs[id] = sub
	h.mu.Unlock()

	h.log.Infof("spectator %s joined from %s", id, conn.RemoteAddr())
	go h.writePump(id, sub)
	go h.readPump(id, sub)
}

func (h *Hub) writePump(id uuid.UUID, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case line := <-sub.send:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.TextMessage, line); err != nil {
				h.drop(id, sub, err)
				return
			}
		case <-ticker.C:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(id, sub, err)
				return
			}
		}
	}
}

// readPump discards anything a spectator sends; it exists to notice
// closes and keep the pong deadline fresh.
func (h *Hub) readPump(id uuid.UUID, sub *subscriber) {
	sub.conn.SetReadLimit(512)
	sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		sub.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			h.drop(id, sub, err)
			return
		}
	}
}

func (h *Hub) drop(id uuid.UUID, sub *subscriber, err error) {
	h.mu.Lock()
	_, present := h.subs[id]
	delete(h.subs, id)
	h.mu.Unlock()

	sub.conn.Close()
	if present {
		h.log.Infof("spectator %s left: %v", id, err)
	}
}
