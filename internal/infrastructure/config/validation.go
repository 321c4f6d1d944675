package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json", "text"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSelection(config)...)
	validationErrors = append(validationErrors, validateCatalog(config)...)
	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateResolver(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateServe(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSelection(config *Config) []string {
	var validationErrors []string
	for _, w := range config.Weights {
		if w <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("weights must be positive integers (got %d)", w))
		}
	}
	if config.CacheTTL < 0 {
		validationErrors = append(validationErrors, "cache_ttl must be non-negative (0 disables the cache)")
	}
	return validationErrors
}

func validateCatalog(config *Config) []string {
	var validationErrors []string
	if config.Catalog.TimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "catalog.timeout_seconds must be positive")
	}
	if config.Catalog.RemoteURL == "" {
		validationErrors = append(validationErrors, "catalog.remote_url cannot be empty")
	} else if u, err := url.Parse(config.Catalog.RemoteURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		validationErrors = append(validationErrors, "catalog.remote_url must be an absolute http(s) URL")
	}
	return validationErrors
}

func validateCache(config *Config) []string {
	if !slices.Contains(CacheDrivers, config.Cache.Driver) {
		names := make([]string, 0, len(CacheDrivers))
		for _, d := range CacheDrivers {
			names = append(names, string(d))
		}
		return []string{fmt.Sprintf("cache.driver must be one of: %s (got %q)", strings.Join(names, ", "), config.Cache.Driver)}
	}
	if config.Cache.Driver == CacheDriverPostgres && config.Cache.PostgresDSN == "" {
		return []string{"cache.postgres_dsn is required when cache.driver is postgres"}
	}
	return nil
}

func validateResolver(config *Config) []string {
	if config.Resolver.MemoSize <= 0 {
		return []string{"resolver.memo_size must be positive"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if config.Logging.Format != "" && !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

func validateServe(config *Config) []string {
	if strings.TrimSpace(config.Serve.Addr) == "" {
		return []string{"serve.addr cannot be empty"}
	}
	return nil
}
