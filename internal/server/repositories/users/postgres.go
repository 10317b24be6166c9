package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/dbx"
	"github.com/akondrashov/stash/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a violated unique
// constraint.
const uniqueViolation = "23505"

// PostgresRepository implements account storage over *sql.DB.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create runs the duplicate check and the insert in one transaction. The
// unique constraint on email remains the authority: a registration racing
// past the check still comes back as ErrorConflict from the insert.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
		if err := tx.QueryRowContext(ctx, check, user.Email).Scan(&exists); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if exists {
			return common.ErrorConflict
		}

		insert := `
			INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`
		err := tx.QueryRowContext(ctx, insert,
			user.Email, user.Name, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return common.ErrorConflict
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at FROM users
		WHERE email = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at FROM users
		WHERE id = $1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
