package services

import (
	"context"
	"errors"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/auth"
	"github.com/akondrashov/stash/internal/server/models"
	"github.com/akondrashov/stash/internal/server/repositories/items"
)

// ItemService implements the item operations. Reads and listing are open;
// create, update, and delete require an authenticated actor, and mutation
// additionally requires the actor to be the recorded owner. The missing
// item check always runs before the ownership check.
type ItemService struct {
	repo items.Repository
}

func NewItemService(repo items.Repository) *ItemService {
	return &ItemService{repo: repo}
}

// Create stores a new item owned by actorID.
func (s *ItemService) Create(ctx context.Context, actorID, name, description string) (*models.Item, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	item := &models.Item{OwnerID: actorID, Name: name, Description: description}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return created, nil
}

// Get returns a single item. No authentication required.
func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return item, nil
}

// List returns all items, newest first. No authentication required.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return result, nil
}

// Update applies a partial update on behalf of actorID. Checks run in a
// fixed order: the item must exist, then the actor must own it, then the
// patch must change something.
func (s *ItemService) Update(ctx context.Context, actorID, id string, upd *models.ItemUpdate) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeOwner(actorID, item.OwnerID); err != nil {
		return nil, err
	}

	if upd.Empty() {
		return nil, common.ErrorValidation
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return updated, nil
}

// Delete removes an item on behalf of actorID.
func (s *ItemService) Delete(ctx context.Context, actorID, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeOwner(actorID, item.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorUnavailable
	}
	return nil
}
