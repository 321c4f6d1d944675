package config

import (
	"slices"
	"time"

	"github.com/bnema/fontpicker/internal/domain/font"
)

// Config represents the complete configuration for fontpicker.
type Config struct {
	// Weights is the default weight allowlist applied to every selection.
	// Empty means no filtering.
	Weights []int `mapstructure:"weights" yaml:"weights" toml:"weights" json:"weights"`
	// IncludeItalic controls whether italic variants are requested by default.
	IncludeItalic bool `mapstructure:"include_italic" yaml:"include_italic" toml:"include_italic" json:"include_italic"`
	// DisableRemoteCatalog skips the cache and the provider; only the fallback catalog is used.
	DisableRemoteCatalog bool `mapstructure:"disable_remote_catalog" yaml:"disable_remote_catalog" toml:"disable_remote_catalog" json:"disable_remote_catalog"`
	// CacheTTL is the catalog cache lifetime in minutes. 0 disables caching.
	CacheTTL int `mapstructure:"cache_ttl" yaml:"cache_ttl" toml:"cache_ttl" json:"cache_ttl"`

	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog" toml:"catalog" json:"catalog"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache" toml:"cache" json:"cache"`
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver" toml:"resolver" json:"resolver"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Serve    ServeConfig    `mapstructure:"serve" yaml:"serve" toml:"serve" json:"serve"`
}

// CatalogConfig configures where the font catalog comes from.
type CatalogConfig struct {
	RemoteURL      string `mapstructure:"remote_url" yaml:"remote_url" toml:"remote_url" json:"remote_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds"`
	// FallbackPath overrides the catalog bundled in the binary.
	FallbackPath string `mapstructure:"fallback_path" yaml:"fallback_path" toml:"fallback_path" json:"fallback_path,omitempty"`
}

// Timeout returns the fetch timeout as a duration.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheDriver selects the persistent catalog cache implementation.
type CacheDriver string

const (
	CacheDriverMemory   CacheDriver = "memory"
	CacheDriverSQLite   CacheDriver = "sqlite"
	CacheDriverPostgres CacheDriver = "postgres"
	CacheDriverNone     CacheDriver = "none"
)

// CacheDrivers lists every accepted driver.
var CacheDrivers = []CacheDriver{CacheDriverMemory, CacheDriverSQLite, CacheDriverPostgres, CacheDriverNone}

// CacheConfig configures the persistent catalog cache.
type CacheConfig struct {
	Driver      CacheDriver `mapstructure:"driver" yaml:"driver" toml:"driver" json:"driver"`
	SQLitePath  string      `mapstructure:"sqlite_path" yaml:"sqlite_path" toml:"sqlite_path" json:"sqlite_path,omitempty"`
	PostgresDSN string      `mapstructure:"postgres_dsn" yaml:"postgres_dsn" toml:"postgres_dsn" json:"postgres_dsn,omitempty"`
}

// ResolverConfig configures reference resolution.
type ResolverConfig struct {
	// MemoSize is the capacity of the resolved-reference LRU.
	MemoSize int `mapstructure:"memo_size" yaml:"memo_size" toml:"memo_size" json:"memo_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
}

// ServeConfig configures the local preview server.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr" json:"addr"`
}

// SelectionDefaults converts the top-level selection keys into font.Defaults.
func (c *Config) SelectionDefaults() font.Defaults {
	return font.Defaults{
		Weights:        slices.Clone(c.Weights),
		IncludeItalics: c.IncludeItalic,
	}
}
