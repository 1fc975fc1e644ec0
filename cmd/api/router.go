package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAdminRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupSocialRoutes(v1, c)
		setupNotificationRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		// Public discovery endpoints
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
		users.GET("/:id/followers", c.SocialHandler.Followers)
		users.GET("/:id/following", c.SocialHandler.Following)
	}

	me := v1.Group("/users")
	me.Use(middleware.Auth(c.JWTManager))
	{
		me.GET("/me", c.UserHandler.GetProfile)
		me.PUT("/me", c.UserHandler.UpdateProfile)
		me.POST("/:id/follow", c.SocialHandler.Follow)
		me.DELETE("/:id/unfollow", c.SocialHandler.Unfollow)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager), middleware.RequireRole(authz.RoleAdmin))
	{
		admin.PUT("/users/:id/role", c.UserHandler.UpdateRole)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/slug/:slug", c.AuthorHandler.GetBySlug)
	}

	authed := v1.Group("/authors")
	authed.Use(middleware.Auth(c.JWTManager))
	{
		authed.POST("", c.AuthorHandler.Create)
		authed.PUT("/:id", c.AuthorHandler.Update)
		authed.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
	}

	authed := v1.Group("/books")
	authed.Use(middleware.Auth(c.JWTManager))
	{
		authed.POST("", c.BookHandler.Create)
		authed.PUT("/:id", c.BookHandler.Update)
		authed.DELETE("/:id", c.BookHandler.Delete)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.GET("/:id/comments", c.CommentHandler.ListByPost)
	}

	authed := v1.Group("/posts")
	authed.Use(middleware.Auth(c.JWTManager))
	{
		authed.POST("", c.PostHandler.Create)
		authed.PUT("/:id", c.PostHandler.Update)
		authed.DELETE("/:id", c.PostHandler.Delete)
		authed.POST("/:id/comments", c.CommentHandler.Create)
		authed.POST("/:id/like", c.SocialHandler.Like)
		authed.DELETE("/:id/unlike", c.SocialHandler.Unlike)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.Auth(c.JWTManager))
	{
		comments.PUT("/:id", c.CommentHandler.Update)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.PostHandler.ListTags)
	}

	authed := v1.Group("/tags")
	authed.Use(middleware.Auth(c.JWTManager))
	{
		authed.POST("", c.PostHandler.CreateTag)
	}
}

func setupSocialRoutes(v1 *gin.RouterGroup, c *container.Container) {
	feed := v1.Group("/feed")
	feed.Use(middleware.Auth(c.JWTManager))
	{
		feed.GET("", c.SocialHandler.Feed)
	}
}

func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notifications := v1.Group("/notifications")
	notifications.Use(middleware.Auth(c.JWTManager))
	{
		notifications.GET("", c.NotificationHandler.List)
		notifications.PUT("/read-all", c.NotificationHandler.MarkAllRead)
		notifications.PUT("/:id/read", c.NotificationHandler.MarkRead)
	}
}

// healthCheckHandler reports the status of the database and cache.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
