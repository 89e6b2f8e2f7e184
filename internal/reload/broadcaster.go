// Package reload notifies connected dev clients over WebSocket whenever a
// freshly compiled plan is swapped in, so browsers can refresh without
// polling.
package reload

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Event is the message sent to clients on a plan swap.
type Event struct {
	Type    string `json:"type"`
	Scripts int    `json:"scripts"`
}

// Broadcaster accepts WebSocket clients and fans plan-swap events out to
// them. A client that cannot keep up is dropped rather than blocking the
// swap.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request and tracks the connection until the client
// goes away.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	b.mu.Lock()
	b.clients[conn] = true
	b.mu.Unlock()

	// Reads are discarded; the socket exists only for server pushes and to
	// detect disconnects.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}

	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()
	conn.Close(websocket.StatusNormalClosure, "")
}

// Broadcast sends a plan-swap event to every connected client.
func (b *Broadcaster) Broadcast(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	b.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.Unlock()

	for _, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := conn.Write(writeCtx, websocket.MessageText, payload); err != nil {
			b.mu.Lock()
			delete(b.clients, conn)
			b.mu.Unlock()
			conn.Close(websocket.StatusPolicyViolation, "write timeout")
		}
		cancel()
	}
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}
