package repository

import (
	"sync"
	"time"

	authdomain "lifegoals/internal/auth/domain"

	"github.com/google/uuid"
)

// MemoryUserRepository is a mutex-guarded in-memory UserRepository used by
// tests and database-free local runs.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*authdomain.User
}

// NewMemoryUserRepository creates an empty in-memory repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*authdomain.User),
	}
}

func (r *MemoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *MemoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}
