package repository

import (
	"errors"
	"time"

	authdomain "blogapp-backend/internal/auth/domain"
	blogdomain "blogapp-backend/internal/blog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of postRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Create(post *blogdomain.Post) error {
	post.ID = uuid.New().String()
	post.PublishDate = time.Now()
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id string) (*blogdomain.Post, error) {
	var post blogdomain.Post
	err := r.db.Preload("Likes").Preload("Dislikes").Preload("Labels").Preload("Comments").
		Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll() ([]*blogdomain.Post, error) {
	var posts []*blogdomain.Post
	err := r.db.Preload("Likes").Preload("Dislikes").Preload("Labels").Preload("Comments").
		Order("publish_date DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindByAuthorID(authorID string) ([]*blogdomain.Post, error) {
	var posts []*blogdomain.Post
	err := r.db.Preload("Likes").Preload("Dislikes").Preload("Labels").
		Where("author_id = ?", authorID).Order("publish_date DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(post *blogdomain.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if post.Labels != nil {
			if err := tx.Model(post).Association("Labels").Replace(post.Labels); err != nil {
				return err
			}
		}
		return tx.Save(post).Error
	})
}

func (r *postRepository) Delete(post *blogdomain.Post) error {
	return r.db.Delete(post).Error
}

// Rate runs the read-modify-write of the reaction sets under a row lock on
// the post, so concurrent toggles from the same account serialize instead of
// losing updates or leaving the account in both sets.
func (r *postRepository) Rate(postID string, user *authdomain.User, kind blogdomain.ReactionKind) (*blogdomain.Post, error) {
	var post blogdomain.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).First(&post).Error; err != nil {
			return err
		}

		if err := tx.Model(&post).Association("Likes").Find(&post.Likes); err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Dislikes").Find(&post.Dislikes); err != nil {
			return err
		}

		post.React(user, kind)

		if err := tx.Model(&post).Association("Likes").Replace(post.Likes); err != nil {
			return err
		}
		return tx.Model(&post).Association("Dislikes").Replace(post.Dislikes)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}
