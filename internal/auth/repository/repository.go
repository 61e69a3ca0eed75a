package repository

import authdomain "blogapp-backend/internal/auth/domain"

// UserRepository is the persistence boundary for accounts. Find methods
// return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByUsername(username string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
