package external

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Les trois routes suivantes relaient la réponse du serveur de test
// telle quelle, sans transformation.

// GetUsers GET /api/external/users
func (h *Handler) GetUsers(c *gin.Context) {
	h.passthrough(c, "/users")
}

// GetUserPosts GET /api/external/users/:userId/posts
func (h *Handler) GetUserPosts(c *gin.Context) {
	h.passthrough(c, fmt.Sprintf("/users/%s/posts", c.Param("userId")))
}

// GetPostComments GET /api/external/posts/:postId/comments
func (h *Handler) GetPostComments(c *gin.Context) {
	h.passthrough(c, fmt.Sprintf("/posts/%s/comments", c.Param("postId")))
}

func (h *Handler) passthrough(c *gin.Context, path string) {
	resp, err := h.Service.client.R().Get(path)
	if err != nil || resp.IsError() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur du serveur de test"})
		fields := map[string]interface{}{
			"route": c.FullPath(),
			"path":  path,
		}
		if err != nil {
			fields["error"] = err.Error()
		} else {
			fields["status"] = resp.StatusCode()
		}
		logs.LogJSON("ERROR", "Upstream request failed", fields)
		return
	}

	c.Data(http.StatusOK, "application/json", resp.Body())
}

// GetTopUsers GET /api/external/users/top
// Classement des utilisateurs du serveur de test par volume de posts.
func (h *Handler) GetTopUsers(c *gin.Context) {
	top, err := h.Service.TopUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur du serveur de test"})
		logs.LogJSON("ERROR", "External top users failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, top)
}

// GetPosts GET /api/external/posts?type=popular|latest
func (h *Handler) GetPosts(c *gin.Context) {
	kind := c.Query("type")
	if kind != "popular" && kind != "latest" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre type invalide"})
		return
	}

	posts, err := h.Service.Posts(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur du serveur de test"})
		logs.LogJSON("ERROR", "External posts failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
			"type":  kind,
		})
		return
	}

	c.JSON(http.StatusOK, posts)
}
