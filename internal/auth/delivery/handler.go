package delivery

import (
	"net/http"

	authdomain "blogapp-backend/internal/auth/domain"
	authdto "blogapp-backend/internal/auth/dto"
	"blogapp-backend/internal/auth/usecase"
	"blogapp-backend/internal/metrics"
	"blogapp-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	metrics     *metrics.Metrics
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		metrics:     m,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	c.JSON(http.StatusOK, user)
}
