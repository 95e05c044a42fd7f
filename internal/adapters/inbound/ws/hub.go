// Package ws streams settlement events to websocket subscribers. The hub is
// fire-and-forget: a slow or dead subscriber is dropped, never waited on.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"nftmarket/internal/application/dto"
	portsout "nftmarket/internal/application/ports/out"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the maximum time to wait for a write to complete.
	writeWait = 10 * time.Second

	// pongWait is the maximum time to wait for a pong from the client.
	pongWait = 60 * time.Second

	// pingPeriod sends pings at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// sendBufferSize is the channel buffer for outgoing events per subscriber.
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type subscriber struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans settlement events out to all connected subscribers.
type Hub struct {
	register    chan *subscriber
	unregister  chan *subscriber
	broadcast   chan []byte
	subscribers map[string]*subscriber
	logger      *log.Logger
	closeOnce   sync.Once
	done        chan struct{}
}

var _ portsout.SettlementEventPublisher = (*Hub)(nil)

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
		broadcast:   make(chan []byte, 256),
		subscribers: make(map[string]*subscriber),
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Run owns the subscriber set. It returns when ctx is canceled, closing
// every subscriber connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.register:
			h.subscribers[sub.id] = sub
			h.logf("event subscriber connected subscriber_id=%s total=%d", sub.id, len(h.subscribers))
		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub.id]; ok {
				delete(h.subscribers, sub.id)
				close(sub.send)
				h.logf("event subscriber disconnected subscriber_id=%s total=%d", sub.id, len(h.subscribers))
			}
		case payload := <-h.broadcast:
			for id, sub := range h.subscribers {
				select {
				case sub.send <- payload:
				default:
					delete(h.subscribers, id)
					close(sub.send)
					h.logf("event subscriber dropped subscriber_id=%s reason=slow_consumer", id)
				}
			}
		}
	}
}

// Publish serializes the event and hands it to the broadcast loop. When the
// hub is saturated or stopped the event is dropped.
func (h *Hub) Publish(_ context.Context, event dto.SettlementEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logf("event encode failed action=%s error=%v", event.Action, err)
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	default:
		h.logf("event dropped action=%s reason=broadcast_saturated", event.Action)
	}
}

// HandleSubscribe upgrades the request to a websocket connection and streams
// settlement events until the client goes away.
func (h *Hub) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logf("websocket upgrade failed error=%v", err)
		return
	}

	sub := &subscriber{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	select {
	case h.register <- sub:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go sub.writeLoop()
	go sub.readLoop(h)
}

func (h *Hub) closeAll() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.send)
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

func (s *subscriber) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound frames. The stream is one way, but reading is
// required to process control frames and notice disconnects.
func (s *subscriber) readLoop(h *Hub) {
	defer func() {
		select {
		case h.unregister <- s:
		case <-h.done:
		}
		_ = s.conn.Close()
	}()

	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
