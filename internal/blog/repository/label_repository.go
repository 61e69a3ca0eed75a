package repository

import (
	"errors"

	blogdomain "blogapp-backend/internal/blog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// labelRepository implements LabelRepository interface
type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of labelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{
		db: db,
	}
}

func (r *labelRepository) FindOrCreate(names []string) ([]blogdomain.Label, error) {
	labels := make([]blogdomain.Label, 0, len(names))
	for _, name := range names {
		var label blogdomain.Label
		err := r.db.Where("name = ?", name).First(&label).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			label = blogdomain.Label{ID: uuid.New().String(), Name: name}
			err = r.db.Create(&label).Error
		}
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}
