package items

import (
	"context"
	"sync"
	"time"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps items in a map. Used in tests and when the
// server runs with the "inmemory" DSN. Safe for concurrent use.
// Insertion order is tracked separately so List stays deterministic even
// when creation timestamps collide.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Item
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.Item)}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := *item
	i.ID = uuid.New().String()
	now := time.Now()
	i.CreatedAt = now
	i.UpdatedAt = now

	r.items[i.ID] = &i
	r.order = append(r.order, i.ID)

	result := i
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *i
	return &result, nil
}

// List returns all items, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Item, 0, len(r.order))
	for n := len(r.order) - 1; n >= 0; n-- {
		copied := *r.items[r.order[n]]
		result = append(result, &copied)
	}
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, upd *models.ItemUpdate) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Name != nil {
		i.Name = *upd.Name
	}
	if upd.Description != nil {
		i.Description = *upd.Description
	}
	i.UpdatedAt = time.Now()

	result := *i
	return &result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	for n, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:n], r.order[n+1:]...)
			break
		}
	}
	return nil
}
