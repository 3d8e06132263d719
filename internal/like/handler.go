package like

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/realtime"
)

type Handler struct {
	Repo  *Repository
	Posts *post.Repository
	Hub   *realtime.Hub
}

func NewHandler(repo *Repository, posts *post.Repository, hub *realtime.Hub) *Handler {
	return &Handler{Repo: repo, Posts: posts, Hub: hub}
}

// ToggleLike POST /api/posts/:postId/like
// Like si l'utilisateur n'a pas encore liké le post, unlike sinon.
func (h *Handler) ToggleLike(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetInt("user_id")

	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return
	}

	if _, err := h.Posts.GetByID(postID); err != nil {
		if errors.Is(err, post.ErrNotFound) {
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

	hasLiked, err := h.Repo.HasLiked(userID, postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Like lookup failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	if hasLiked {
		if err := h.Repo.Unlike(userID, postID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du like"})
			logs.LogJSON("ERROR", "Unlike failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": false})
	} else {
		if _, err := h.Repo.Like(userID, postID); err != nil {
			if errors.Is(err, ErrAlreadyLiked) {
				c.JSON(http.StatusConflict, gin.H{"error": "Post déjà liké"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout du like"})
			logs.LogJSON("ERROR", "Like failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": true})
	}

	// Diffuse le compteur à jour après la bascule
	updated, err := h.Posts.GetByID(postID)
	if err == nil {
		h.Hub.Broadcast(realtime.PostLiked(postID, updated.Likes))
	}
}
