// Package stream pushes simulation snapshots to websocket subscribers.
// Clients receive the latest snapshot whenever its content changes; slow
// clients are dropped rather than allowed to stall the tick loop.
package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeTimeout  = 5 * time.Second
	sendQueueSize = 8
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: map[*client]struct{}{},
	}
}

// Broadcast queues the payload for every connected client. Clients whose
// queue is full miss this frame; they catch up on the next one.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = payload
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
		}
	}
}

// Handler upgrades the request and serves frames until the client goes away
// or ctx is cancelled.
func (h *Hub) Handler(ctx context.Context) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}

		c := &client{
			conn: conn,
			send: make(chan []byte, sendQueueSize),
		}
		h.register(c)
		h.log.Info("stream client connected", zap.String("remote", r.RemoteAddr))

		go h.readLoop(c)
		h.writeLoop(ctx, c)

		h.unregister(c)
		_ = conn.Close()
		h.log.Info("stream client disconnected", zap.String("remote", r.RemoteAddr))
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// readLoop drains incoming messages so pings and close frames are handled.
// Subscribers never send application data.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(1024)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			_ = c.conn.Close()
			return
		}
	}
}

func (h *Hub) writeLoop(ctx context.Context, c *client) {
	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(time.Second),
			)
			return
		case payload, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}

// Serve runs a dedicated HTTP listener for the websocket endpoint and shuts
// it down when ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.Handler(ctx))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
