package repositories

import (
	"fmt"
	"sync"

	"shoply/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
// Users live in a slice so ids stay sequential and insertion order is
// preserved for the process lifetime.
type MemoryUserRepository struct {
	users []models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// Create appends a new user, assigning the next sequential id.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *user)
	return nil
}

// GetByEmail returns the user with the given email. The match is
// case-sensitive, exactly as stored.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// GetByID returns the user with the given id.
func (r *MemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with id %d: %w", id, ErrNotFound)
}

// Count reports how many users are stored. Used by tests to assert the
// store grew (or did not grow) across an operation.
func (r *MemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
