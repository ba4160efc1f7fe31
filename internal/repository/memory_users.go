package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"repouso-data/internal/domain"

	"github.com/google/uuid"
)

// MemoryUsersRepository in-memory console-account store.
type MemoryUsersRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUsersRepository() *MemoryUsersRepository {
	return &MemoryUsersRepository{users: map[string]domain.User{}}
}

var _ UsersRepository = (*MemoryUsersRepository)(nil)

func (r *MemoryUsersRepository) GetUser(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUsersRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUsersRepository) ListUsers(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.User
	for _, u := range r.users {
		item := u
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].FullName < items[j].FullName
	})
	return items, nil
}

func (r *MemoryUsersRepository) CreateUser(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *user
	row.UserID = id
	if row.Status == "" {
		row.Status = "active"
	}
	r.users[id] = row
	return id, nil
}

func (r *MemoryUsersRepository) UpdateUser(_ context.Context, userID string, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	row := *user
	row.UserID = userID
	if len(row.PasswordHash) == 0 {
		row.PasswordHash = old.PasswordHash
	}
	r.users[userID] = row
	return nil
}

func (r *MemoryUsersRepository) DeleteUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return ErrNotFound
	}
	delete(r.users, userID)
	return nil
}
