package dto

type BlogRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type PostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Labels  []string `json:"labels"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
