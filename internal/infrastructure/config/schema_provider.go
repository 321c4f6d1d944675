package config

import (
	"fmt"
	"strings"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionSelection = "Selection"
	SectionCatalog   = "Catalog"
	SectionCache     = "Cache"
	SectionResolver  = "Resolver"
	SectionLogging   = "Logging"
	SectionServe     = "Serve"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getSelectionKeys(defaults)...)
	keys = append(keys, p.getCatalogKeys(defaults)...)
	keys = append(keys, p.getCacheKeys(defaults)...)
	keys = append(keys, p.getResolverKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getServeKeys(defaults)...)

	for i := range keys {
		if keys[i].Env == "" {
			keys[i].Env = envName(keys[i].Key)
		}
	}
	return keys
}

// envName mirrors viper's FONTPICKER_ prefix and "." -> "_" replacer.
func envName(key string) string {
	return "FONTPICKER_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (*SchemaProvider) getSelectionKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "weights",
			Type:        "[]int",
			Default:     fmt.Sprint(defaults.Weights),
			Description: "Default weight allowlist applied to every selection (empty = all weights)",
			Section:     SectionSelection,
		},
		{
			Key:         "include_italic",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.IncludeItalic),
			Description: "Request italic variants when a family has them",
			Section:     SectionSelection,
		},
		{
			Key:         "disable_remote_catalog",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.DisableRemoteCatalog),
			Description: "Skip the cache and the provider; use only the fallback catalog",
			Section:     SectionSelection,
		},
		{
			Key:         "cache_ttl",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.CacheTTL),
			Description: "Catalog cache lifetime in minutes (0 disables caching)",
			Range:       ">=0",
			Section:     SectionSelection,
		},
	}
}

func (*SchemaProvider) getCatalogKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "catalog.remote_url",
			Type:        "string",
			Default:     defaults.Catalog.RemoteURL,
			Description: "Provider endpoint listing every family",
			Section:     SectionCatalog,
		},
		{
			Key:         "catalog.timeout_seconds",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Catalog.TimeoutSeconds),
			Description: "Catalog fetch timeout",
			Range:       ">0",
			Section:     SectionCatalog,
		},
		{
			Key:         "catalog.fallback_path",
			Type:        "string",
			Default:     "(bundled)",
			Description: "Catalog file used when the cache and the provider are unavailable",
			Section:     SectionCatalog,
		},
	}
}

func (*SchemaProvider) getCacheKeys(defaults *Config) []entity.ConfigKeyInfo {
	drivers := make([]string, 0, len(CacheDrivers))
	for _, d := range CacheDrivers {
		drivers = append(drivers, string(d))
	}
	return []entity.ConfigKeyInfo{
		{
			Key:         "cache.driver",
			Type:        "string",
			Default:     string(defaults.Cache.Driver),
			Description: "Persistent catalog cache backend",
			Values:      drivers,
			Section:     SectionCache,
		},
		{
			Key:         "cache.sqlite_path",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/fontpicker/" + cacheDBFileName,
			Description: "SQLite cache database file",
			Section:     SectionCache,
		},
		{
			Key:         "cache.postgres_dsn",
			Type:        "string",
			Default:     "",
			Description: "PostgreSQL connection string (required for the postgres driver)",
			Section:     SectionCache,
		},
	}
}

func (*SchemaProvider) getResolverKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "resolver.memo_size",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Resolver.MemoSize),
			Description: "Number of resolved references kept in memory",
			Range:       ">0",
			Section:     SectionResolver,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Env:         "FONTPICKER_LOG_LEVEL",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Env:         "FONTPICKER_LOG_FORMAT",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getServeKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "serve.addr",
			Type:        "string",
			Default:     defaults.Serve.Addr,
			Description: "Listen address of the local preview server",
			Section:     SectionServe,
		},
	}
}
