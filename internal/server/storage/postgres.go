package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akondrashov/stash/internal/server/migrations"
	"github.com/akondrashov/stash/internal/server/repositories/items"
	"github.com/akondrashov/stash/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresManager struct {
	db    *sql.DB
	users users.Repository
	items items.Repository
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Items() items.Repository {
	return m.items
}

func (m *PostgresManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		items: items.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
