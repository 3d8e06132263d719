package stats

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/database"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &post.Post{}, &post.Comment{}))
	return db
}

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)

	users := user.NewRepository(db)
	posts := post.NewRepository(db)

	a, err := users.Create("A", "password")
	require.NoError(t, err)
	b, err := users.Create("B", "password")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := posts.Create(a.ID, fmt.Sprintf("Post A%d", i), false)
		require.NoError(t, err)
	}
	_, err = posts.Create(b.ID, "Post B", false)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/stats", NewHandler(db).GetStats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var s Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 2, s.TotalUsers)
	assert.Equal(t, 4, s.TotalPosts)
	assert.Equal(t, 2, s.AvgPostsPerUser)
}

func TestComputeWithoutUsers(t *testing.T) {
	handler := NewHandler(setupDB(t))

	s, err := handler.Compute()
	require.NoError(t, err)

	// Pas de division par zéro : moyenne nulle
	assert.Equal(t, 0, s.TotalUsers)
	assert.Equal(t, 0, s.AvgPostsPerUser)
}

func TestComputeRounding(t *testing.T) {
	db := setupDB(t)
	handler := NewHandler(db)

	users := user.NewRepository(db)
	posts := post.NewRepository(db)

	a, err := users.Create("A", "password")
	require.NoError(t, err)
	_, err = users.Create("B", "password")
	require.NoError(t, err)

	// 3 posts pour 2 utilisateurs : 1,5 arrondi à 2
	for i := 0; i < 3; i++ {
		_, err := posts.Create(a.ID, fmt.Sprintf("Post %d", i), false)
		require.NoError(t, err)
	}

	s, err := handler.Compute()
	require.NoError(t, err)
	assert.Equal(t, 2, s.AvgPostsPerUser)
}
