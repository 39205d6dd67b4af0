package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
	ws "github.com/yasminebk/beautyuniverse-backend/internal/websocket"
)

// WSController upgrades admin dashboard connections onto the live order
// feed. Authentication happens in middleware before the upgrade.
type WSController struct {
	hub      *ws.Hub
	upgrader gorillaws.Upgrader
}

func NewWSController(hub *ws.Hub, allowedOrigins []string) *WSController {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originSet[origin] = true
	}

	return &WSController{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || originSet[origin]
			},
		},
	}
}

// OrderFeed upgrades the connection and streams order events
// GET /api/v1/admin/orders/feed
func (ctrl *WSController) OrderFeed(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection", err, map[string]interface{}{
			"user_id": userID,
		})
		return
	}

	client := &ws.Client{
		Hub:    ctrl.hub,
		Conn:   &ws.Conn{Conn: conn},
		UserID: userID,
		Send:   make(chan []byte, 64),
	}
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
