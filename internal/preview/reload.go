package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessage is sent to browsers over the live-reload socket.
type ReloadMessage struct {
	Type string `json:"type"`
	File string `json:"file,omitempty"`
}

// Reloader manages the WebSocket connections used for live reload. When the
// override configuration changes, every connected browser gets a reload
// message and re-fetches the page with the new kit.
type Reloader struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	onChange func(clients int)
}

// NewReloader creates a reload broadcaster.
func NewReloader() *Reloader {
	return &Reloader{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Local development tool; any origin may connect.
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the request and parks the connection until the
// client goes away.
func (r *Reloader) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.notifyChange(len(r.clients))
	r.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.mu.Lock()
	delete(r.clients, conn)
	r.notifyChange(len(r.clients))
	r.mu.Unlock()
	conn.Close()
}

// NotifyReload broadcasts a full reload to all clients.
func (r *Reloader) NotifyReload(file string) {
	r.broadcast(ReloadMessage{Type: "reload", File: file})
}

// ClientCount returns the number of connected browsers.
func (r *Reloader) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// OnClientChange registers a callback invoked with the client count after
// every connect and disconnect. Must be set before serving.
func (r *Reloader) OnClientChange(fn func(clients int)) {
	r.onChange = fn
}

func (r *Reloader) notifyChange(clients int) {
	if r.onChange != nil {
		r.onChange(clients)
	}
}

func (r *Reloader) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			r.mu.Lock()
			delete(r.clients, client)
			r.mu.Unlock()
			client.Close()
		}
	}
}
