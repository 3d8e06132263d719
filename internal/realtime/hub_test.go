package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws", NewHandler(hub).Serve)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("attendu %d abonnés, obtenu %d", want, hub.ClientCount())
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub, srv := setupServer(t)

	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.Broadcast(NewPost(map[string]interface{}{"id": 42}))

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, TypeNewPost, event["type"])

		postData, ok := event["post"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(42), postData["id"])
	}
}

func TestDisconnectedSubscriberReceivesNothing(t *testing.T) {
	hub, srv := setupServer(t)

	leaver := dial(t, srv)
	stayer := dial(t, srv)
	waitForClients(t, hub, 2)

	// Déconnexion avant la mutation : retrait définitif de la diffusion
	require.NoError(t, leaver.Close())
	waitForClients(t, hub, 1)

	hub.Broadcast(PostLiked(7, 3))

	event := readEvent(t, stayer)
	assert.Equal(t, TypePostLiked, event["type"])
	assert.Equal(t, float64(7), event["postId"])
	assert.Equal(t, float64(3), event["likes"])
}

func TestBroadcastOrderPreserved(t *testing.T) {
	hub, srv := setupServer(t)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Broadcast(NewComment(1, map[string]interface{}{"id": 10}))
	hub.Broadcast(NewComment(1, map[string]interface{}{"id": 11}))

	// Les mutations arrivent dans l'ordre où elles ont été appliquées
	first := readEvent(t, conn)
	second := readEvent(t, conn)
	assert.Equal(t, float64(10), first["comment"].(map[string]interface{})["id"])
	assert.Equal(t, float64(11), second["comment"].(map[string]interface{})["id"])
}

func TestClientMessagesAreIgnored(t *testing.T) {
	hub, srv := setupServer(t)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	// Un message entrant ne ferme pas la connexion et ne déclenche rien
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))

	hub.Broadcast(PostLiked(1, 1))
	event := readEvent(t, conn)
	assert.Equal(t, TypePostLiked, event["type"])
}
