package websocket

import (
	"encoding/json"
	"sync"

	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

// Event types pushed to connected admin dashboards
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the wire format of one dashboard notification
type OrderEvent struct {
	Type  string       `json:"type"`
	Order *model.Order `json:"order"`
}

// Client is one connected admin dashboard session
type Client struct {
	Hub    *Hub
	Conn   *Conn
	UserID uint
	Send   chan []byte
}

// Hub fans order events out to every connected admin dashboard. Implements
// the order service's event sink, so new orders appear live without polling.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes registration and broadcast events until the process exits.
// Start in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			logger.Info("Dashboard client connected", map[string]interface{}{
				"user_id":     client.UserID,
				"connections": count,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			logger.Info("Dashboard client disconnected", map[string]interface{}{
				"user_id":     client.UserID,
				"connections": count,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer, drop the connection rather than block
					go h.Unregister(client)
					logger.Warn("Dashboard send buffer full, disconnecting", map[string]interface{}{
						"user_id": client.UserID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// OrderCreated pushes a new-order event to all dashboards
func (h *Hub) OrderCreated(order *model.Order) {
	h.publish(EventOrderCreated, order)
}

// OrderStatusChanged pushes a status-change event to all dashboards
func (h *Hub) OrderStatusChanged(order *model.Order) {
	h.publish(EventOrderStatusChanged, order)
}

func (h *Hub) publish(eventType string, order *model.Order) {
	data, err := json.Marshal(OrderEvent{Type: eventType, Order: order})
	if err != nil {
		logger.Error("Failed to marshal order event", err, map[string]interface{}{
			"type": eventType,
		})
		return
	}

	select {
	case h.broadcast <- data:
	default:
		// Dashboards are a live view, dropping under pressure is acceptable
		logger.Warn("Broadcast channel full, order event dropped", map[string]interface{}{
			"type": eventType,
		})
	}
}

// Register adds a dashboard connection
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a dashboard connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
