package middleware

import (
	"github.com/gin-gonic/gin"
)

// DemoUserMiddleware injecte l'identifiant de l'utilisateur de
// démonstration dans le contexte, là où une vraie authentification
// poserait l'identifiant extrait du token.
func DemoUserMiddleware(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
