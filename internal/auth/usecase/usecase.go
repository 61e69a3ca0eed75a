package usecase

import (
	authdomain "blogapp-backend/internal/auth/domain"
	authdto "blogapp-backend/internal/auth/dto"
)

// AuthUsecase handles account authentication
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)
	// ResolveToken validates the bearer token and loads the account it
	// names. Used by the auth middleware on every protected request.
	ResolveToken(tokenString string) (*authdomain.User, error)
}
