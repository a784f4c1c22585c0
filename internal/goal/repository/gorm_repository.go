package repository

import (
	"errors"
	"time"

	"lifegoals/internal/goal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormGoalRepository implements GoalRepository using GORM
type gormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GORM-based GoalRepository
func NewGormGoalRepository(db *gorm.DB) GoalRepository {
	return &gormGoalRepository{db: db}
}

func (r *gormGoalRepository) Create(goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()
	return r.db.Create(goal).Error
}

func (r *gormGoalRepository) FindByID(id string) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.Where("id = ?", id).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *gormGoalRepository) FindByUserID(userID string) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error
	return goals, err
}

func (r *gormGoalRepository) Update(goal *domain.Goal) error {
	goal.UpdatedAt = time.Now()
	return r.db.Save(goal).Error
}

func (r *gormGoalRepository) Delete(id string) error {
	return r.db.Delete(&domain.Goal{}, "id = ?", id).Error
}
