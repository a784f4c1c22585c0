package usecase

import (
	"strings"

	"lifegoals/internal/goal/domain"
	"lifegoals/internal/goal/repository"
)

// goalUsecase implements GoalUsecase interface
type goalUsecase struct {
	goalRepo repository.GoalRepository
}

// NewGoalUsecase creates a new instance of goalUsecase
func NewGoalUsecase(goalRepo repository.GoalRepository) GoalUsecase {
	return &goalUsecase{
		goalRepo: goalRepo,
	}
}

func (u *goalUsecase) ListGoals(userID string) ([]*domain.Goal, error) {
	goals, err := u.goalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []*domain.Goal{}
	}
	return goals, nil
}

func (u *goalUsecase) CreateGoal(userID, title, description string, completed bool) (*domain.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	goal := &domain.Goal{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   completed,
	}

	if err := u.goalRepo.Create(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (u *goalUsecase) GetGoalByID(userID, goalID string) (*domain.Goal, error) {
	goal, err := u.goalRepo.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}
	if goal.UserID != userID {
		return nil, ErrNotOwner
	}
	return goal, nil
}

func (u *goalUsecase) UpdateGoal(userID, goalID string, updates GoalUpdateRequest) (*domain.Goal, error) {
	goal, err := u.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, ErrTitleRequired
		}
		goal.Title = *updates.Title
	}
	if updates.Description != nil {
		goal.Description = *updates.Description
	}
	if updates.Completed != nil {
		goal.Completed = *updates.Completed
	}

	if err := u.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (u *goalUsecase) DeleteGoal(userID, goalID string) error {
	if _, err := u.GetGoalByID(userID, goalID); err != nil {
		return err
	}
	return u.goalRepo.Delete(goalID)
}
