package sqlite_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_DoesNotTouchDiskUntilUsed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "catalog.db")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.IsInitialized())
	assert.Equal(t, dbPath, lazy.Path())
	_, err := os.Stat(filepath.Dir(dbPath))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, lazy.Close())
}

func TestLazyDB_OpensOnceAcrossGoroutines(t *testing.T) {
	ctx := cacheTestCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "catalog.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	var wg sync.WaitGroup
	conns := make(chan any, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			conns <- db
		}()
	}
	wg.Wait()
	close(conns)

	var first any
	for c := range conns {
		if first == nil {
			first = c
		}
		assert.Same(t, first, c)
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_RemembersFailure(t *testing.T) {
	ctx := cacheTestCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestCatalogCache_LazyProviderFailureSurfacesAsError(t *testing.T) {
	ctx := cacheTestCtx()
	var provider port.DatabaseProvider = sqlite.NewLazyDB("")
	cache := sqlite.NewCatalogCache(provider, nil)

	_, ok, err := cache.Get(ctx, port.CatalogCacheKey)
	require.Error(t, err)
	assert.False(t, ok)
	require.Error(t, cache.Set(ctx, port.CatalogCacheKey, sampleCatalog(), 1))
}
