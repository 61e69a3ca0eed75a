package delivery

import (
	"net/http"

	blogdto "blogapp-backend/internal/blog/dto"
	"blogapp-backend/internal/blog/usecase"
	"blogapp-backend/internal/metrics"
	"blogapp-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUsecase usecase.FeedUsecase
	metrics     *metrics.Metrics
}

func NewFeedHandler(feedUsecase usecase.FeedUsecase, m *metrics.Metrics) *FeedHandler {
	return &FeedHandler{
		feedUsecase: feedUsecase,
		metrics:     m,
	}
}

func (h *FeedHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.feedUsecase.GetAllPosts()
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *FeedHandler) LikePost(c *gin.Context) {
	post, err := h.feedUsecase.Like(c.Param("postId"), c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	h.metrics.Reactions.WithLabelValues("like").Inc()
	c.JSON(http.StatusOK, post)
}

func (h *FeedHandler) DislikePost(c *gin.Context) {
	post, err := h.feedUsecase.Dislike(c.Param("postId"), c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	h.metrics.Reactions.WithLabelValues("dislike").Inc()
	c.JSON(http.StatusOK, post)
}

func (h *FeedHandler) AddComment(c *gin.Context) {
	var req blogdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.feedUsecase.AddComment(c.Param("postId"), c.GetString("userID"), req.Content)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}
