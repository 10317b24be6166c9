// Package users provides storage for registered accounts.
package users

import (
	"context"

	"github.com/akondrashov/stash/internal/server/models"
)

type Repository interface {
	// Create inserts a new account and returns it with the store-assigned
	// identifier. A duplicate email yields common.ErrorConflict; the
	// store's uniqueness constraint is the authority, not any pre-check.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with the given natural key or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account with the given identifier or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
