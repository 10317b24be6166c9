// Package storage wires repositories to a concrete backend: PostgreSQL in
// production, an in-memory store for tests and local development.
package storage

import (
	"context"

	"github.com/akondrashov/stash/internal/server/repositories/items"
	"github.com/akondrashov/stash/internal/server/repositories/users"
)

// Manager bundles the repositories of one backend.
type Manager interface {
	Users() users.Repository
	Items() items.Repository

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// InMemoryDSN selects the in-memory backend instead of PostgreSQL.
const InMemoryDSN = "inmemory"

// NewManager picks a backend based on the DSN.
func NewManager(dsn string) (Manager, error) {
	if dsn == InMemoryDSN {
		return NewInMemoryManager(), nil
	}
	return NewPostgresManager(dsn)
}
