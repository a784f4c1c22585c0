package usecase

import (
	"errors"

	authdomain "lifegoals/internal/auth/domain"
	authdto "lifegoals/internal/auth/dto"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair is rejected
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that already has an account
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidToken is returned when a bearer token fails validation
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when a user ID resolves to no account
	ErrUserNotFound = errors.New("user not found")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account and establishes a session for it
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login authenticates a user by email and password
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// ValidateToken parses a bearer token and resolves the user it belongs to
	ValidateToken(token string) (*authdomain.User, error)

	// GetProfile returns the user for an ID
	GetProfile(userID string) (*authdomain.User, error)

	// UpdateProfile applies a partial profile update
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
}
