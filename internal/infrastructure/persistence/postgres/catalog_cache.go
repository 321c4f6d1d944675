package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

// CatalogCache implements port.CatalogCache on a shared PostgreSQL table.
type CatalogCache struct {
	db  *sql.DB
	now port.Clock
}

// NewCatalogCache creates a cache over an open connection. A nil clock
// means time.Now.
func NewCatalogCache(db *sql.DB, clock port.Clock) *CatalogCache {
	if clock == nil {
		clock = time.Now
	}
	return &CatalogCache{db: db, now: clock}
}

// Get implements port.CatalogCache.
func (c *CatalogCache) Get(ctx context.Context, key string) (entity.Catalog, bool, error) {
	var payload []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM catalog_cache
		 WHERE cache_key = $1 AND (expires_at IS NULL OR expires_at > $2)`,
		key, c.now(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached catalog: %w", err)
	}

	catalog, err := entity.DecodeCatalog(payload)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode cached catalog: %w", err)
	}
	return catalog, true, nil
}

// Set implements port.CatalogCache.
func (c *CatalogCache) Set(ctx context.Context, key string, catalog entity.Catalog, ttlMinutes int) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	now := c.now()
	var expiresAt sql.NullTime
	if ttlMinutes > 0 {
		expiresAt = sql.NullTime{Time: now.Add(time.Duration(ttlMinutes) * time.Minute), Valid: true}
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO catalog_cache (cache_key, payload, families, stored_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			families = EXCLUDED.families,
			stored_at = EXCLUDED.stored_at,
			expires_at = EXCLUDED.expires_at`,
		key, payload, len(catalog), now, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	return nil
}

// Delete implements port.CatalogCache.
func (c *CatalogCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM catalog_cache WHERE cache_key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete cached catalog: %w", err)
	}
	return nil
}
