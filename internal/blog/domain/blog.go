package domain

import "time"

type Blog struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"author_id" gorm:"index;not null"`
	Posts       []Post    `json:"posts,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
}

type Label struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content"`
	PostID    string    `json:"post_id" gorm:"index;not null"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
