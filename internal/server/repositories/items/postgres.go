package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/dbx"
	"github.com/akondrashov/stash/internal/server/models"
)

// PostgresRepository implements item storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		INSERT INTO items (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.Name, item.Description).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `
		SELECT id, owner_id, name, description, created_at, updated_at FROM items
		WHERE id = $1
	`

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Item, error) {
	query := `
		SELECT id, owner_id, name, description, created_at, updated_at FROM items
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.ItemUpdate) (*models.Item, error) {
	// COALESCE keeps the stored value for fields the caller did not send.
	query := `
		UPDATE items
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at, updated_at
	`

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id, upd.Name, upd.Description).Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
