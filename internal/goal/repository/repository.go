package repository

import (
	"lifegoals/internal/goal/domain"
)

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	// Create creates a new goal
	Create(goal *domain.Goal) error

	// FindByID finds a goal by its ID, returning nil when absent
	FindByID(id string) (*domain.Goal, error)

	// FindByUserID finds all goals for a user, oldest first
	FindByUserID(userID string) ([]*domain.Goal, error)

	// Update updates an existing goal
	Update(goal *domain.Goal) error

	// Delete deletes a goal by ID
	Delete(id string) error
}
