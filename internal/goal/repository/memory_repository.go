package repository

import (
	"sort"
	"sync"
	"time"

	"lifegoals/internal/goal/domain"

	"github.com/google/uuid"
)

// MemoryGoalRepository is a mutex-guarded in-memory GoalRepository used by
// tests and database-free local runs.
type MemoryGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]*domain.Goal
}

// NewMemoryGoalRepository creates an empty in-memory repository
func NewMemoryGoalRepository() *MemoryGoalRepository {
	return &MemoryGoalRepository{
		goals: make(map[string]*domain.Goal),
	}
}

func (r *MemoryGoalRepository) Create(goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()

	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *MemoryGoalRepository) FindByID(id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, exists := r.goals[id]
	if !exists {
		return nil, nil
	}
	copied := *goal
	return &copied, nil
}

func (r *MemoryGoalRepository) FindByUserID(userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []*domain.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			goals = append(goals, &copied)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (r *MemoryGoalRepository) Update(goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.UpdatedAt = time.Now()
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *MemoryGoalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.goals, id)
	return nil
}
