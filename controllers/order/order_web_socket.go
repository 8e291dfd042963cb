// order_web_socket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/orders"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type statusUpdate struct {
	OrderID   string             `json:"order_id"`
	Ref       string             `json:"ref"`
	BuyerID   string             `json:"buyer_id"`
	From      models.OrderStatus `json:"from,omitempty"`
	Status    models.OrderStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// Hub fans simulator lifecycle events out to connected websocket clients.
// A client disconnecting only drops that client; the simulator's timers are
// untouched.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	unsub   func()
}

func NewHub(sim *orders.Simulator) *Hub {
	h := &Hub{clients: make(map[*websocket.Conn]bool)}
	h.unsub = sim.Subscribe(func(e orders.Event) {
		h.broadcast(statusUpdate{
			OrderID:   e.Order.ID,
			Ref:       e.Order.Ref,
			BuyerID:   e.Order.BuyerID,
			From:      e.From,
			Status:    e.To,
			Timestamp: e.Order.StatusHistory[len(e.Order.StatusHistory)-1].Timestamp,
		})
	})
	return h
}

// GET /orders/ws
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// Close detaches the hub from the simulator and drops all clients.
func (h *Hub) Close() {
	h.unsub()
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) broadcast(update statusUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
