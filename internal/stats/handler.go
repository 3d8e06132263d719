package stats

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

type Stats struct {
	TotalUsers      int `json:"totalUsers"`
	TotalPosts      int `json:"totalPosts"`
	AvgPostsPerUser int `json:"avgPostsPerUser"`
}

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Compute agrège les compteurs globaux. Sans utilisateur, la moyenne
// vaut zéro plutôt qu'une division par zéro.
func (h *Handler) Compute() (*Stats, error) {
	var totalUsers, totalPosts int64

	if err := h.DB.Model(&user.User{}).Count(&totalUsers).Error; err != nil {
		return nil, err
	}
	if err := h.DB.Model(&post.Post{}).Count(&totalPosts).Error; err != nil {
		return nil, err
	}

	avg := 0
	if totalUsers > 0 {
		avg = int(math.Round(float64(totalPosts) / float64(totalUsers)))
	}

	return &Stats{
		TotalUsers:      int(totalUsers),
		TotalPosts:      int(totalPosts),
		AvgPostsPerUser: avg,
	}, nil
}

// GetStats GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	s, err := h.Compute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du calcul des statistiques"})
		logs.LogJSON("ERROR", "Stats query failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, s)
}
