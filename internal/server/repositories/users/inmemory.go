package users

import (
	"context"
	"sync"
	"time"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in a map. Used in tests and when the
// server runs with the "inmemory" DSN. Safe for concurrent use.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorConflict
	}

	u := *user
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()

	r.byID[u.ID] = &u
	r.byEmail[u.Email] = &u

	result := u
	return &result, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *u
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *u
	return &result, nil
}
