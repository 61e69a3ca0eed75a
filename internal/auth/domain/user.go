package domain

import "time"

const RoleUser = "USER"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Role      string    `json:"role"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Country   string    `json:"country,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
