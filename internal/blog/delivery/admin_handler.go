package delivery

import (
	"net/http"

	blogdto "blogapp-backend/internal/blog/dto"
	"blogapp-backend/internal/blog/usecase"
	"blogapp-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) GetBlogs(c *gin.Context) {
	blogs, err := h.adminUsecase.GetBlogsByAuthor(c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *AdminHandler) CreateBlog(c *gin.Context) {
	var req blogdto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.adminUsecase.CreateBlog(&req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *AdminHandler) EditBlog(c *gin.Context) {
	var req blogdto.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.adminUsecase.EditBlog(c.Param("blogId"), &req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *AdminHandler) DeleteBlog(c *gin.Context) {
	if err := h.adminUsecase.DeleteBlog(c.Param("blogId"), c.GetString("userID")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogdto.MessageResponse{Message: "Blog deleted successfully."})
}

func (h *AdminHandler) GetPosts(c *gin.Context) {
	posts, err := h.adminUsecase.GetPostsByAuthor(c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *AdminHandler) GetPost(c *gin.Context) {
	post, err := h.adminUsecase.GetPost(c.Param("postId"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) CreatePost(c *gin.Context) {
	var req blogdto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.adminUsecase.CreatePost(c.Param("blogId"), &req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) EditPost(c *gin.Context) {
	var req blogdto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.adminUsecase.EditPost(c.Param("postId"), &req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.adminUsecase.DeletePost(c.Param("postId"), c.GetString("userID")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogdto.MessageResponse{Message: "Post deleted successfully."})
}
