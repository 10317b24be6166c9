package storage

import (
	"context"

	"github.com/akondrashov/stash/internal/server/repositories/items"
	"github.com/akondrashov/stash/internal/server/repositories/users"
)

type InMemoryManager struct {
	users users.Repository
	items items.Repository
}

func (m *InMemoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryManager) Items() items.Repository {
	return m.items
}

func (m *InMemoryManager) Ping(ctx context.Context) error {
	return nil
}

func (m *InMemoryManager) Close() error {
	return nil
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{
		users: users.NewInMemoryRepository(),
		items: items.NewInMemoryRepository(),
	}
}
