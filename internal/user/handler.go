package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GetTopUsers GET /api/users/top?limit=N
func (h *Handler) GetTopUsers(c *gin.Context) {
	route := c.FullPath()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultTopLimit)))
	if err != nil {
		limit = DefaultTopLimit
	}

	users, err := h.Repo.TopUsers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du classement"})
		logs.LogJSON("ERROR", "Top users query failed", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	for i := range users {
		users[i].AvatarURL = AvatarURL(users[i].Username)
	}

	c.JSON(http.StatusOK, users)
}
