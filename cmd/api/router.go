package api

import (
	"net/http"

	authDelivery "blogapp-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/register", h.authHandler.Register)
			auth.GET("/me", authDelivery.AuthMiddleware(h.authUsecase), h.authHandler.Me)
		}

		// Admin routes (protected): blog and post management for the
		// authenticated author
		admin := api.Group("/admin")
		admin.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			admin.GET("/blogs-user", h.adminHandler.GetBlogs)
			admin.POST("/blogs", h.adminHandler.CreateBlog)
			admin.PUT("/blogs/:blogId", h.adminHandler.EditBlog)
			admin.DELETE("/blogs/:blogId", h.adminHandler.DeleteBlog)
			admin.POST("/blogs/:blogId/posts", h.adminHandler.CreatePost)

			admin.GET("/posts-user", h.adminHandler.GetPosts)
			admin.GET("/posts/:postId", h.adminHandler.GetPost)
			admin.PUT("/posts/:postId", h.adminHandler.EditPost)
			admin.DELETE("/posts/:postId", h.adminHandler.DeletePost)
		}

		// Feed routes: listing is public, reactions and comments require
		// an authenticated account
		feed := api.Group("/feed")
		{
			feed.GET("/posts", h.feedHandler.GetAllPosts)
			feed.PUT("/posts/:postId/like", authDelivery.AuthMiddleware(h.authUsecase), h.feedHandler.LikePost)
			feed.PUT("/posts/:postId/dislike", authDelivery.AuthMiddleware(h.authUsecase), h.feedHandler.DislikePost)
			feed.POST("/posts/:postId/comment", authDelivery.AuthMiddleware(h.authUsecase), h.feedHandler.AddComment)
		}
	}
}
