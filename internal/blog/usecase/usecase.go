package usecase

import (
	blogdomain "blogapp-backend/internal/blog/domain"
	blogdto "blogapp-backend/internal/blog/dto"
)

// AdminUsecase covers the ownership-gated blog and post management. The
// acting account id always comes from the authenticated request context.
type AdminUsecase interface {
	GetBlogsByAuthor(actingID string) ([]*blogdomain.Blog, error)
	CreateBlog(req *blogdto.BlogRequest, actingID string) (*blogdomain.Blog, error)
	EditBlog(blogID string, req *blogdto.BlogRequest, actingID string) (*blogdomain.Blog, error)
	DeleteBlog(blogID, actingID string) error

	GetPostsByAuthor(actingID string) ([]*blogdomain.Post, error)
	GetPost(postID string) (*blogdomain.Post, error)
	CreatePost(blogID string, req *blogdto.PostRequest, actingID string) (*blogdomain.Post, error)
	EditPost(postID string, req *blogdto.PostRequest, actingID string) (*blogdomain.Post, error)
	DeletePost(postID, actingID string) error
}

// FeedUsecase covers the social operations open to any authenticated
// account: reactions and comments carry no ownership check.
type FeedUsecase interface {
	GetAllPosts() ([]*blogdomain.Post, error)
	Like(postID, actingID string) (*blogdomain.Post, error)
	Dislike(postID, actingID string) (*blogdomain.Post, error)
	AddComment(postID, actingID, content string) (*blogdomain.Comment, error)
}
