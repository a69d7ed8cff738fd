package websockets

import (
	"sync"
)

type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan []byte

	// tenantChannels groups tablet clients by the restaurant they belong to
	tenantChannels map[string]map[*Client]bool

	// mu guards clients and tenantChannels. Run and BroadcastToTenant touch
	// the same maps from different goroutines.
	mu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:      make(chan []byte),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		clients:        make(map[*Client]bool),
		tenantChannels: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) RegisterTenantClient(client *Client, restaurantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.tenantChannels[restaurantID]; !ok {
		h.tenantChannels[restaurantID] = make(map[*Client]bool)
	}
	h.tenantChannels[restaurantID][client] = true
}

func (h *Hub) BroadcastToTenant(restaurantID string, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.tenantChannels[restaurantID]; ok {
		for client := range clients {
			select {
			case client.send <- message:
			default:
				h.dropClientLocked(client)
			}
		}
	}
}

// dropClientLocked closes the client's send channel and removes it from
// every map, so no later broadcast can send on the closed channel.
// The caller must hold h.mu.
func (h *Hub) dropClientLocked(client *Client) {
	close(client.send)
	delete(h.clients, client)
	for _, clients := range h.tenantChannels {
		delete(clients, client)
	}
}

func (h *Hub) BroadcastMessage(message []byte) {
	h.broadcast <- message
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.dropClientLocked(client)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.dropClientLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}
