package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	Hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{Hub: hub}
}

// Serve GET /ws : passe la connexion en websocket et l'inscrit au hub.
// Les messages entrants sont journalisés puis ignorés, il n'y a pas de
// protocole client→serveur au-delà du cycle de vie de la connexion.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logs.LogJSON("WARN", "Websocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := h.Hub.Register(conn)

	go func() {
		defer func() {
			h.Hub.Unregister(client)
			_ = conn.Close()
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				return
			}
			logs.LogJSON("DEBUG", "Websocket message received", map[string]interface{}{
				"clientID": client.ID,
				"message":  string(message),
			})
		}
	}()
}
