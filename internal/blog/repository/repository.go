package repository

import (
	authdomain "blogapp-backend/internal/auth/domain"
	blogdomain "blogapp-backend/internal/blog/domain"
)

// Find methods return (nil, nil) when no row matches.

type BlogRepository interface {
	Create(blog *blogdomain.Blog) error
	FindByID(id string) (*blogdomain.Blog, error)
	FindByAuthorID(authorID string) ([]*blogdomain.Blog, error)
	Update(blog *blogdomain.Blog) error
	// Delete removes the blog and all posts it owns.
	Delete(blog *blogdomain.Blog) error
}

type PostRepository interface {
	Create(post *blogdomain.Post) error
	FindByID(id string) (*blogdomain.Post, error)
	FindAll() ([]*blogdomain.Post, error)
	FindByAuthorID(authorID string) ([]*blogdomain.Post, error)
	Update(post *blogdomain.Post) error
	Delete(post *blogdomain.Post) error
	// Rate applies one like/dislike toggle for the user and persists the
	// updated reaction sets atomically with respect to other reactions on
	// the same post. Returns the updated post, or (nil, nil) if the post
	// does not exist.
	Rate(postID string, user *authdomain.User, kind blogdomain.ReactionKind) (*blogdomain.Post, error)
}

type CommentRepository interface {
	Create(comment *blogdomain.Comment) error
}

type LabelRepository interface {
	// FindOrCreate resolves label names to rows, creating missing ones.
	FindOrCreate(names []string) ([]blogdomain.Label, error)
}
