package port

import (
	"context"
	"time"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

// CatalogCacheKey is the key the full catalog is stored under.
const CatalogCacheKey = "catalog"

// CatalogFetcher downloads the catalog from the font provider.
// A non-2xx response, an undecodable body or an empty catalog is a failed result.
type CatalogFetcher interface {
	Fetch(ctx context.Context) entity.CatalogResult
}

// CatalogSource loads the catalog bundled with the application.
type CatalogSource interface {
	Load(ctx context.Context) entity.CatalogResult
}

// CatalogCache persists a catalog between processes.
type CatalogCache interface {
	// Get returns the cached catalog, false when missing or expired.
	Get(ctx context.Context, key string) (entity.Catalog, bool, error)
	// Set stores the catalog for ttlMinutes. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, catalog entity.Catalog, ttlMinutes int) error
	// Delete removes the key; a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time
