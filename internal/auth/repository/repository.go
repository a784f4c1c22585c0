package repository

import (
	authdomain "lifegoals/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, returning nil when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by its ID, returning nil when absent
	FindByID(id string) (*authdomain.User, error)

	// Update updates an existing user
	Update(user *authdomain.User) error
}
