// Package items provides storage for user-owned items.
package items

import (
	"context"

	"github.com/akondrashov/stash/internal/server/models"
)

type Repository interface {
	// Create inserts a new item and returns it with the store-assigned
	// identifier and timestamps.
	Create(ctx context.Context, item *models.Item) (*models.Item, error)

	// GetByID returns the item with the given identifier or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// List returns all items, newest first.
	List(ctx context.Context) ([]*models.Item, error)

	// Update applies a partial update and returns the updated item, or
	// common.ErrorNotFound if the item is absent. Nil fields are left
	// unchanged.
	Update(ctx context.Context, id string, upd *models.ItemUpdate) (*models.Item, error)

	// Delete removes the item or returns common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
