package config

import (
	"time"

	"github.com/bnema/fontpicker/internal/domain/font"
	"github.com/bnema/fontpicker/internal/infrastructure/bunny"
)

// Default configuration constants
const (
	defaultCacheTTL       = 10080 // minutes (one week)
	defaultMemoSize       = 512   // resolved references
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultServeAddr      = "127.0.0.1:7331"
	defaultTimeoutSeconds = int(bunny.DefaultTimeout / time.Second)
)

// DefaultConfig returns the default configuration values for fontpicker.
func DefaultConfig() *Config {
	return &Config{
		Weights:              []int{},
		IncludeItalic:        true,
		DisableRemoteCatalog: false,
		CacheTTL:             defaultCacheTTL,
		Catalog: CatalogConfig{
			RemoteURL:      font.CatalogURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: CacheConfig{
			Driver: CacheDriverSQLite,
			// SQLitePath is set dynamically in Load()
		},
		Resolver: ResolverConfig{
			MemoSize: defaultMemoSize,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Serve: ServeConfig{
			Addr: defaultServeAddr,
		},
	}
}
