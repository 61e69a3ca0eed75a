package repository

import (
	"errors"
	"time"

	blogdomain "blogapp-backend/internal/blog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// blogRepository implements BlogRepository interface
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new instance of blogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{
		db: db,
	}
}

func (r *blogRepository) Create(blog *blogdomain.Blog) error {
	blog.ID = uuid.New().String()
	blog.CreatedAt = time.Now()
	return r.db.Create(blog).Error
}

func (r *blogRepository) FindByID(id string) (*blogdomain.Blog, error) {
	var blog blogdomain.Blog
	err := r.db.Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindByAuthorID(authorID string) ([]*blogdomain.Blog, error) {
	var blogs []*blogdomain.Blog
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Update(blog *blogdomain.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes the blog and cascades to its posts in one transaction, so
// a failed cascade never leaves orphaned posts behind.
func (r *blogRepository) Delete(blog *blogdomain.Blog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&blogdomain.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(blog).Error
	})
}
