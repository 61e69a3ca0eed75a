package api

import (
	authDelivery "blogapp-backend/internal/auth/delivery"
	authUsecase "blogapp-backend/internal/auth/usecase"
	blogDelivery "blogapp-backend/internal/blog/delivery"
	blogUsecase "blogapp-backend/internal/blog/usecase"
	"blogapp-backend/internal/metrics"
	"blogapp-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	authHandler  *authDelivery.AuthHandler
	adminHandler *blogDelivery.AdminHandler
	feedHandler  *blogDelivery.FeedHandler
	authUsecase  authUsecase.AuthUsecase
	metrics      *metrics.Metrics
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, adminUc blogUsecase.AdminUsecase, feedUc blogUsecase.FeedUsecase, cfg *config.Config) *Handler {
	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	return &Handler{
		authHandler:  authDelivery.NewAuthHandler(authUc, m),
		adminHandler: blogDelivery.NewAdminHandler(adminUc),
		feedHandler:  blogDelivery.NewFeedHandler(feedUc, m),
		authUsecase:  authUc,
		metrics:      m,
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(h.metrics.Middleware())

	SetupRoutes(r, h)

	return r.Run(addr)
}
