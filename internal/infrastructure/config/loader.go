package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/fontpicker/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// FONTPICKER_CACHE_TTL, FONTPICKER_CACHE_DRIVER, FONTPICKER_CATALOG_REMOTE_URL, ...
	v.SetEnvPrefix("FONTPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logger reads these before the config exists, so they keep the short form.
	if err := v.BindEnv("logging.level", "FONTPICKER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTPICKER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FONTPICKER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTPICKER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

// buildConfig turns viper's current state into a validated Config.
func (m *Manager) buildConfig() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureCachePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureCachePath(config *Config) error {
	if config.Cache.SQLitePath != "" {
		return nil
	}
	dbPath, err := GetCacheDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get cache database path: %w", err)
	}
	config.Cache.SQLitePath = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch driver := CacheDriver(strings.ToLower(strings.TrimSpace(string(config.Cache.Driver)))); driver {
	case "":
		config.Cache.Driver = CacheDriverSQLite
	default:
		config.Cache.Driver = driver
	}

	// Non-positive weights are kept so validation can report them.
	if len(config.Weights) > 0 {
		weights := slices.Clone(config.Weights)
		slices.Sort(weights)
		config.Weights = slices.Compact(weights)
	}

	config.Catalog.RemoteURL = strings.TrimSpace(config.Catalog.RemoteURL)
	config.Catalog.FallbackPath = strings.TrimSpace(config.Catalog.FallbackPath)
	config.Cache.PostgresDSN = strings.TrimSpace(config.Cache.PostgresDSN)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Weights = slices.Clone(m.config.Weights)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration file and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaFileName)
	if err := GenerateSchemaFile(schemaFile); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}

	return nil
}

// setDefaults configures Viper with default values.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("weights", defaults.Weights)
	m.viper.SetDefault("include_italic", defaults.IncludeItalic)
	m.viper.SetDefault("disable_remote_catalog", defaults.DisableRemoteCatalog)
	m.viper.SetDefault("cache_ttl", defaults.CacheTTL)

	m.setCatalogDefaults(defaults)
	m.setCacheDefaults(defaults)

	m.viper.SetDefault("resolver.memo_size", defaults.Resolver.MemoSize)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("serve.addr", defaults.Serve.Addr)
}

func (m *Manager) setCatalogDefaults(defaults *Config) {
	m.viper.SetDefault("catalog.remote_url", defaults.Catalog.RemoteURL)
	m.viper.SetDefault("catalog.timeout_seconds", defaults.Catalog.TimeoutSeconds)
	m.viper.SetDefault("catalog.fallback_path", defaults.Catalog.FallbackPath)
}

func (m *Manager) setCacheDefaults(defaults *Config) {
	m.viper.SetDefault("cache.driver", string(defaults.Cache.Driver))
	m.viper.SetDefault("cache.sqlite_path", defaults.Cache.SQLitePath)
	m.viper.SetDefault("cache.postgres_dsn", defaults.Cache.PostgresDSN)
}
