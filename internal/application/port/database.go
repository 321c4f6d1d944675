// Package port defines the interfaces the use cases depend on; the
// infrastructure packages implement them.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the cache database, opening it on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}
