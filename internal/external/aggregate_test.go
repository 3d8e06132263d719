package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Faux serveur de test : l'utilisateur 2 répond toujours en erreur pour
// vérifier la dégradation à zéro.
func setupUpstream(t *testing.T) *Service {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, payload interface{}) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"users": map[string]string{"1": "John Doe", "2": "Jane Smith", "3": "Alex Johnson"},
		})
	})
	mux.HandleFunc("/users/1/posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"posts": []ExternalPost{
				{ID: 11, UserID: 1, Content: "Premier"},
				{ID: 14, UserID: 1, Content: "Deuxième"},
				{ID: 17, UserID: 1, Content: "Troisième"},
			},
		})
	})
	mux.HandleFunc("/users/2/posts", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/users/3/posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"posts": []ExternalPost{
				{ID: 12, UserID: 3, Content: "Seul"},
			},
		})
	})
	mux.HandleFunc("/posts/", func(w http.ResponseWriter, r *http.Request) {
		comments := []ExternalComment{}
		if r.URL.Path == "/posts/12/comments" {
			comments = []ExternalComment{
				{ID: 1, PostID: 12, Content: "Top"},
				{ID: 2, PostID: 12, Content: "Bravo"},
			}
		}
		writeJSON(w, map[string]interface{}{"comments": comments})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewService(srv.URL, "jeton-de-test")
}

func TestExternalTopUsers(t *testing.T) {
	service := setupUpstream(t)

	top, err := service.TopUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, TopUser{ID: "1", Name: "John Doe", PostCount: 3}, top[0])
	assert.Equal(t, TopUser{ID: "3", Name: "Alex Johnson", PostCount: 1}, top[1])

	// L'appel en échec vaut zéro post, pas un échec global
	assert.Equal(t, TopUser{ID: "2", Name: "Jane Smith", PostCount: 0}, top[2])
}

func TestExternalLatestPosts(t *testing.T) {
	service := setupUpstream(t)

	posts, err := service.Posts(context.Background(), "latest")
	require.NoError(t, err)
	require.Len(t, posts, 4)

	// Id décroissant
	assert.Equal(t, 17, posts[0].ID)
	assert.Equal(t, 14, posts[1].ID)
	assert.Equal(t, 12, posts[2].ID)
	assert.Equal(t, 11, posts[3].ID)
}

func TestExternalPopularPosts(t *testing.T) {
	service := setupUpstream(t)

	posts, err := service.Posts(context.Background(), "popular")
	require.NoError(t, err)

	// Seul le post 12 a des commentaires
	require.Len(t, posts, 1)
	assert.Equal(t, 12, posts[0].ID)
}

func TestExternalTopUsersUpstreamDown(t *testing.T) {
	service := NewService("http://127.0.0.1:1", "")

	_, err := service.TopUsers(context.Background())
	assert.Error(t, err)
}

func TestGetPostsEndpointInvalidType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(setupUpstream(t))
	r := gin.New()
	r.GET("/api/external/posts", handler.GetPosts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/external/posts?type=oldest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPassthroughUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(setupUpstream(t))
	r := gin.New()
	r.GET("/api/external/users", handler.GetUsers)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/external/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Relais sans transformation
	var body usersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "John Doe", body.Users["1"])
}
