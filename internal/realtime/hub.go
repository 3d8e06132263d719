package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
)

// Hub maintient l'ensemble des abonnés temps réel et leur diffuse les
// mutations. La livraison est au mieux : un envoi qui échoue évince
// l'abonné, rien n'est mis en file ni rejoué.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

type Client struct {
	ID   string
	conn *websocket.Conn

	// Sérialise les écritures : une seule écriture concurrente par connexion
	writeMu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// Register ajoute une connexion à l'ensemble de diffusion.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := &Client{
		ID:   uuid.New().String(),
		conn: conn,
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	logs.LogJSON("INFO", "Websocket client connected", map[string]interface{}{
		"clientID": client.ID,
	})
	return client
}

// Unregister retire définitivement un abonné ; une reconnexion est une
// toute nouvelle inscription côté client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()

	logs.LogJSON("INFO", "Websocket client disconnected", map[string]interface{}{
		"clientID": client.ID,
	})
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast envoie l'événement à tous les abonnés connectés, au plus une
// fois chacun. Un abonné dont l'envoi échoue est évincé en silence.
func (h *Hub) Broadcast(event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		logs.LogJSON("ERROR", "Broadcast marshal failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		client.writeMu.Lock()
		err := client.conn.WriteMessage(websocket.TextMessage, data)
		client.writeMu.Unlock()

		if err != nil {
			h.Unregister(client)
			_ = client.conn.Close()
		}
	}
}
