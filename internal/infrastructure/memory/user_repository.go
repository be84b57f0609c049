package memory

import (
	"context"
	"sync"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type UserRepositoryMemory struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		users: make(map[string]*entities.User),
	}
}

func (r *UserRepositoryMemory) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return repositories.ErrAlreadyExists
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrAlreadyExists
		}
	}

	userCopy := *user
	r.users[user.ID] = &userCopy
	return nil
}

func (r *UserRepositoryMemory) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (r *UserRepositoryMemory) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepositoryMemory) GetByGoogleID(_ context.Context, googleID string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.GoogleID != "" && user.GoogleID == googleID {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepositoryMemory) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return repositories.ErrAlreadyExists
		}
	}

	userCopy := *user
	r.users[user.ID] = &userCopy
	return nil
}

func (r *UserRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepositoryMemory) List(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}
