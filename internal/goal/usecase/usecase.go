package usecase

import (
	"errors"

	"lifegoals/internal/goal/domain"
)

var (
	// ErrGoalNotFound is returned when a goal ID resolves to nothing
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNotOwner is returned when a goal belongs to a different user
	ErrNotOwner = errors.New("not authorized to access this goal")

	// ErrTitleRequired is returned when creating a goal without a title
	ErrTitleRequired = errors.New("title is required")
)

// GoalUsecase defines the interface for goal business logic
type GoalUsecase interface {
	// ListGoals retrieves all goals owned by a user
	ListGoals(userID string) ([]*domain.Goal, error)

	// CreateGoal creates a new goal for a user
	CreateGoal(userID, title, description string, completed bool) (*domain.Goal, error)

	// GetGoalByID retrieves a goal by ID (with ownership check)
	GetGoalByID(userID, goalID string) (*domain.Goal, error)

	// UpdateGoal applies a partial update to an existing goal
	UpdateGoal(userID, goalID string, updates GoalUpdateRequest) (*domain.Goal, error)

	// DeleteGoal deletes a goal
	DeleteGoal(userID, goalID string) error
}

// GoalUpdateRequest represents the fields that can be updated.
// Absent fields are left untouched, so a completion toggle does not
// clobber the title or description.
type GoalUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
