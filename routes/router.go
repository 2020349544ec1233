package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/duoblog/duoblog/config"
	"github.com/duoblog/duoblog/controllers"
	"github.com/duoblog/duoblog/middleware"
	"github.com/duoblog/duoblog/services"
	"github.com/duoblog/duoblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(users services.UserService, posts services.PostService, comments services.CommentService, tokens *utils.TokenManager) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Requests are logged to a rolling file separate from the app log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.ErrorHandler(utils.Sugar))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(users, tokens)
	postController := controllers.NewPostController(posts)
	commentController := controllers.NewCommentController(comments)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	authGroup.POST("/register", userController.Register)
	authGroup.POST("/login", userController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(tokens), userController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(tokens), userController.Me)

	// Public reads
	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", postController.GetPost)
	api.GET("/posts/:id/comments", commentController.ListComments)
	api.GET("/users/:id", userController.GetUser)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(tokens), middleware.RateLimit(cfg.RateLimitPerMinute))
	protected.GET("/users", userController.ListUsers)
	protected.PUT("/users/:id", userController.UpdateUser)
	protected.DELETE("/users/:id", userController.DeleteUser)
	protected.POST("/posts", postController.CreatePost)
	protected.PUT("/posts/:id", postController.UpdatePost)
	protected.DELETE("/posts/:id", postController.DeletePost)
	protected.POST("/posts/:id/comments", commentController.CreateComment)
	protected.PUT("/comments/:commentId", commentController.UpdateComment)
	protected.DELETE("/comments/:commentId", commentController.DeleteComment)

	return r
}
