package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/config"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/database"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/external"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/like"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/middleware"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/realtime"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/seed"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/stats"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logs.LogJSON("FATAL", "Database connection failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := db.AutoMigrate(&user.User{}, &post.Post{}, &post.Comment{}, &like.Like{}); err != nil {
		logs.LogJSON("FATAL", "Database migration failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := seed.Run(db); err != nil {
		logs.LogJSON("FATAL", "Seeding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	hub := realtime.NewHub()

	userRepo := user.NewRepository(db)
	postRepo := post.NewRepository(db)
	likeRepo := like.NewRepository(db)

	userHandler := user.NewHandler(userRepo)
	postHandler := post.NewHandler(postRepo, hub)
	likeHandler := like.NewHandler(likeRepo, postRepo, hub)
	statsHandler := stats.NewHandler(db)
	externalHandler := external.NewHandler(external.NewService(cfg.TestServerURL, cfg.TestServerToken))
	wsHandler := realtime.NewHandler(hub)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/ws", wsHandler.Serve)

	api := r.Group("/api")
	api.Use(middleware.DemoUserMiddleware(cfg.DemoUserID))

	api.GET("/users/top", userHandler.GetTopUsers)
	api.GET("/posts/feed", postHandler.GetFeed)
	api.GET("/posts/trending", postHandler.GetTrending)
	api.GET("/posts/:postId/comments", postHandler.GetComments)
	api.POST("/posts", postHandler.CreatePost)
	api.POST("/posts/:postId/comments", postHandler.CreateComment)
	api.POST("/posts/:postId/like", likeHandler.ToggleLike)
	api.GET("/stats", statsHandler.GetStats)

	api.GET("/external/users", externalHandler.GetUsers)
	api.GET("/external/users/top", externalHandler.GetTopUsers)
	api.GET("/external/users/:userId/posts", externalHandler.GetUserPosts)
	api.GET("/external/posts", externalHandler.GetPosts)
	api.GET("/external/posts/:postId/comments", externalHandler.GetPostComments)

	logs.LogJSON("INFO", "Server starting", map[string]interface{}{
		"port": cfg.Port,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
