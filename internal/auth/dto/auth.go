package dto

import authdomain "blogapp-backend/internal/auth/domain"

type LoginRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=4"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname"`
	Country   string `json:"country"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}
