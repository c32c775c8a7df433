package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kudosapp/kudos/internal/dbx"
	"github.com/kudosapp/kudos/internal/server/migrations"
	"github.com/kudosapp/kudos/internal/server/repositories/kudos"
	"github.com/kudosapp/kudos/internal/server/repositories/users"
)

// PostgresRepositoryManager is a stateless factory for the PostgreSQL-backed
// repositories.
type PostgresRepositoryManager struct{}

// NewPostgres returns the PostgreSQL repository manager.
func NewPostgres() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// OpenDB opens a connection pool through the pgx stdlib driver.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Kudos(db dbx.DBTX) kudos.Repository {
	return kudos.NewPostgresRepository(db)
}
