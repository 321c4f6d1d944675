package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10080, cfg.CacheTTL)
	assert.True(t, cfg.IncludeItalic)
	assert.False(t, cfg.DisableRemoteCatalog)
	assert.Empty(t, cfg.Weights)
	assert.Equal(t, "https://fonts.bunny.net/list", cfg.Catalog.RemoteURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, CacheDriverSQLite, cfg.Cache.Driver)
	assert.Equal(t, 512, cfg.Resolver.MemoSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "127.0.0.1:7331", cfg.Serve.Addr)
}

func TestSelectionDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = []int{400, 700}
	cfg.IncludeItalic = false

	d := cfg.SelectionDefaults()
	cfg.Weights[0] = 100

	assert.Equal(t, []int{400, 700}, d.Weights)
	assert.False(t, d.IncludeItalics)
}
