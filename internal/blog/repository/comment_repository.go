package repository

import (
	"time"

	blogdomain "blogapp-backend/internal/blog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// commentRepository implements CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of commentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(comment *blogdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}
