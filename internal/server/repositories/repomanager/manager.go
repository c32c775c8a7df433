// Package repomanager constructs repositories over a shared database handle
// or a transaction, and runs migrations at startup.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/kudosapp/kudos/internal/dbx"
	"github.com/kudosapp/kudos/internal/server/repositories/kudos"
	"github.com/kudosapp/kudos/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the given handle, which
// may be the pool itself or a transaction started with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Kudos(db dbx.DBTX) kudos.Repository
}
