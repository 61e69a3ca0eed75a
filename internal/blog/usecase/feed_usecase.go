package usecase

import (
	authrepo "blogapp-backend/internal/auth/repository"
	blogdomain "blogapp-backend/internal/blog/domain"
	"blogapp-backend/internal/blog/repository"
	"blogapp-backend/pkg/apperr"
)

// feedUsecase implements FeedUsecase interface
type feedUsecase struct {
	userRepo    authrepo.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewFeedUsecase creates a new instance of feedUsecase
func NewFeedUsecase(userRepo authrepo.UserRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) FeedUsecase {
	return &feedUsecase{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (u *feedUsecase) GetAllPosts() ([]*blogdomain.Post, error) {
	return u.postRepo.FindAll()
}

func (u *feedUsecase) Like(postID, actingID string) (*blogdomain.Post, error) {
	return u.rate(postID, actingID, blogdomain.ReactionLike)
}

func (u *feedUsecase) Dislike(postID, actingID string) (*blogdomain.Post, error) {
	return u.rate(postID, actingID, blogdomain.ReactionDislike)
}

// rate applies one reaction toggle. Any authenticated account may react to
// any post, including its own.
func (u *feedUsecase) rate(postID, actingID string, kind blogdomain.ReactionKind) (*blogdomain.Post, error) {
	user, err := u.userRepo.FindByID(actingID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrAccountNotFound
	}

	post, err := u.postRepo.Rate(postID, user, kind)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrPostNotFound
	}
	return post, nil
}

func (u *feedUsecase) AddComment(postID, actingID, content string) (*blogdomain.Comment, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrPostNotFound
	}

	user, err := u.userRepo.FindByID(actingID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrAccountNotFound
	}

	comment := &blogdomain.Comment{
		Content: content,
		PostID:  post.ID,
		UserID:  user.ID,
	}
	if err := u.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
