package sqlite

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

// CatalogCache implements port.CatalogCache on the catalog_cache table.
type CatalogCache struct {
	provider port.DatabaseProvider
	now      port.Clock
}

// NewCatalogCache creates a cache; the database is opened on first use.
// A nil clock means time.Now.
func NewCatalogCache(provider port.DatabaseProvider, clock port.Clock) *CatalogCache {
	if clock == nil {
		clock = time.Now
	}
	return &CatalogCache{provider: provider, now: clock}
}

// Get implements port.CatalogCache. Expired rows are reported as misses.
func (c *CatalogCache) Get(ctx context.Context, key string) (entity.Catalog, bool, error) {
	db, err := c.provider.DB(ctx)
	if err != nil {
		return nil, false, err
	}

	var (
		payload   string
		expiresAt sql.NullInt64
	)
	err = db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM catalog_cache WHERE cache_key = ?`, key,
	).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached catalog: %w", err)
	}

	if expiresAt.Valid && c.now().Unix() >= expiresAt.Int64 {
		return nil, false, nil
	}

	catalog, err := entity.DecodeCatalog([]byte(payload))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode cached catalog: %w", err)
	}
	return catalog, true, nil
}

// Set implements port.CatalogCache.
func (c *CatalogCache) Set(ctx context.Context, key string, catalog entity.Catalog, ttlMinutes int) error {
	db, err := c.provider.DB(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	now := c.now()
	var expiresAt sql.NullInt64
	if ttlMinutes > 0 {
		expiresAt = sql.NullInt64{Int64: now.Add(time.Duration(ttlMinutes) * time.Minute).Unix(), Valid: true}
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO catalog_cache (cache_key, payload, families, stored_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload,
			families = excluded.families,
			stored_at = excluded.stored_at,
			expires_at = excluded.expires_at`,
		key, string(payload), len(catalog), now.Unix(), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	return nil
}

// Delete implements port.CatalogCache.
func (c *CatalogCache) Delete(ctx context.Context, key string) error {
	db, err := c.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM catalog_cache WHERE cache_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cached catalog: %w", err)
	}
	return nil
}

// PurgeExpired removes rows past their expiry and returns how many were dropped.
func (c *CatalogCache) PurgeExpired(ctx context.Context) (int64, error) {
	db, err := c.provider.DB(ctx)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx,
		`DELETE FROM catalog_cache WHERE expires_at IS NOT NULL AND expires_at <= ?`, c.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired catalogs: %w", err)
	}
	return res.RowsAffected()
}
