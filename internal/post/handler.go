package post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/realtime"
)

type Handler struct {
	Repo *Repository
	Hub  *realtime.Hub
}

func NewHandler(repo *Repository, hub *realtime.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

// CreatePostInput est validé explicitement à la frontière HTTP.
type CreatePostInput struct {
	Content  string `json:"content" binding:"required"`
	HasImage bool   `json:"hasImage"`
}

type CreateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// GetFeed GET /api/posts/feed?limit=N
func (h *Handler) GetFeed(c *gin.Context) {
	route := c.FullPath()
	viewerID := c.GetInt("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultFeedLimit)))
	if err != nil {
		limit = DefaultFeedLimit
	}

	posts, err := h.Repo.Feed(limit, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du fil"})
		logs.LogJSON("ERROR", "Feed query failed", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetTrending GET /api/posts/trending?limit=N&period=&sortBy=
// period et sortBy sont acceptés mais jamais appliqués : le classement
// reste le nombre de commentaires.
func (h *Handler) GetTrending(c *gin.Context) {
	route := c.FullPath()
	viewerID := c.GetInt("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultTrendingLimit)))
	if err != nil {
		limit = DefaultTrendingLimit
	}

	posts, err := h.Repo.Trending(limit, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des tendances"})
		logs.LogJSON("ERROR", "Trending query failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"period": c.Query("period"),
			"sortBy": c.Query("sortBy"),
		})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetComments GET /api/posts/:postId/comments
func (h *Handler) GetComments(c *gin.Context) {
	route := c.FullPath()

	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return
	}

	comments, err := h.Repo.Comments(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		logs.LogJSON("ERROR", "Comments query failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreatePost POST /api/posts
func (h *Handler) CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetInt("user_id")

	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données de post invalides", "details": err.Error()})
		return
	}

	created, err := h.Repo.Create(userID, input.Content, input.HasImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.LogJSON("ERROR", "Post creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	h.Hub.Broadcast(realtime.NewPost(created))

	c.JSON(http.StatusCreated, created)
	logs.LogJSON("INFO", "Post created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": created.ID,
	})
}

// CreateComment POST /api/posts/:postId/comments
func (h *Handler) CreateComment(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetInt("user_id")

	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return
	}

	if _, err := h.Repo.GetByID(postID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Post lookup failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données de commentaire invalides", "details": err.Error()})
		return
	}

	created, err := h.Repo.CreateComment(postID, userID, input.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
		logs.LogJSON("ERROR", "Comment creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	h.Hub.Broadcast(realtime.NewComment(postID, created))

	c.JSON(http.StatusCreated, created)
	logs.LogJSON("INFO", "Comment created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
}
