package usecase

import (
	authdomain "blogapp-backend/internal/auth/domain"
	authdto "blogapp-backend/internal/auth/dto"
	"blogapp-backend/internal/auth/repository"
	"blogapp-backend/pkg/apperr"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperr.ErrAccountNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{Token: token, User: user}, nil
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, apperr.ErrUsernameTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username:  req.Username,
		Password:  hashedPassword,
		Role:      authdomain.RoleUser,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Country:   req.Country,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{Token: token, User: user}, nil
}

func (u *authUsecase) ResolveToken(tokenString string) (*authdomain.User, error) {
	accountID, err := u.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperr.ErrAccountNotFound
	}

	return user, nil
}
