package like

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

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/middleware"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/realtime"
)

func setupRouter(t *testing.T, db *gorm.DB, demoUserID int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	posts := post.NewRepository(db)
	handler := NewHandler(NewRepository(db), posts, realtime.NewHub())

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.DemoUserMiddleware(demoUserID))
	api.POST("/posts/:postId/like", handler.ToggleLike)
	return r
}

func toggle(t *testing.T, r *gin.Engine, postID int) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), nil)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestToggleLikeEndpoint(t *testing.T) {
	db := setupDB(t)
	_, liker, p := seedPost(t, db)
	r := setupRouter(t, db, liker.ID)

	// Premier appel : like
	code, body := toggle(t, r, p.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, 1, postLikes(t, db, p.ID))

	// Second appel : bascule en unlike
	code, body = toggle(t, r, p.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, 0, postLikes(t, db, p.ID))
}

func TestToggleLikeEndpointInvalidID(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(t, db, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/abc/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikeEndpointUnknownPost(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(t, db, 1)

	code, body := toggle(t, r, 999)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "error")
}
