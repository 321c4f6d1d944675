// Package cli wires the font catalog, resolver and renderers for the commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/application/usecase"
	"github.com/bnema/fontpicker/internal/cli/styles"
	"github.com/bnema/fontpicker/internal/domain/build"
	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/infrastructure/bunny"
	"github.com/bnema/fontpicker/internal/infrastructure/cache"
	"github.com/bnema/fontpicker/internal/infrastructure/config"
	"github.com/bnema/fontpicker/internal/infrastructure/persistence/postgres"
	"github.com/bnema/fontpicker/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontpicker/internal/logging"
)

const postgresConnectTimeout = 5 * time.Second

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Catalog pipeline
	Store        *usecase.CatalogStore
	CatalogCache port.CatalogCache
	Memo         *cache.LRU[string, *entity.FontEntry]

	// Use cases
	Fonts        *usecase.SelectFontsUseCase
	ConfigSchema *usecase.GetConfigSchemaUseCase

	manager *config.Manager
	ctx     context.Context
	closers []func() error
}

// Option customizes NewAppFromConfig.
type Option func(*appOptions)

type appOptions struct {
	logger    *zerolog.Logger
	buildInfo build.Info
	fs        afero.Fs
}

// WithLogger replaces the logger derived from the config.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *appOptions) {
		o.logger = &logger
	}
}

// WithBuildInfo sets the build information shown by `version` and sent in the User-Agent.
func WithBuildInfo(info build.Info) Option {
	return func(o *appOptions) {
		o.buildInfo = info
	}
}

// WithFs sets the filesystem the fallback catalog is read from.
func WithFs(fs afero.Fs) Option {
	return func(o *appOptions) {
		o.fs = fs
	}
}

// NewApp loads the configuration from the standard locations and creates
// the application. An invalid config file is reported and replaced by defaults.
func NewApp(opts ...Option) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	loadErr := mgr.Load()
	app, err := NewAppFromConfig(mgr.Get(), opts...)
	if err != nil {
		return nil, err
	}
	app.manager = mgr

	if loadErr != nil {
		logging.FromContext(app.ctx).Warn().Err(loadErr).Msg("using default configuration")
	}
	return app, nil
}

// NewAppFromConfig creates the application from an already loaded config.
func NewAppFromConfig(cfg *config.Config, opts ...Option) (*App, error) {
	o := appOptions{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	if o.logger != nil {
		logger = *o.logger
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:    cfg,
		Theme:     styles.NewTheme(),
		BuildInfo: o.buildInfo,
		ctx:       ctx,
	}

	catalogCache, closer, err := newCatalogCache(logging.WithComponent(ctx, "catalog-cache"), cfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	app.CatalogCache = catalogCache

	fetcher := bunny.NewFetcher(
		bunny.WithURL(cfg.Catalog.RemoteURL),
		bunny.WithTimeout(cfg.Catalog.Timeout()),
		bunny.WithUserAgent(o.buildInfo.UserAgent()),
	)
	fallback := bunny.NewFallbackSource(o.fs, cfg.Catalog.FallbackPath)

	storeOpts := []usecase.CatalogStoreOption{}
	if catalogCache != nil {
		storeOpts = append(storeOpts, usecase.WithCatalogCache(catalogCache))
	}
	app.Store = usecase.NewCatalogStore(fetcher, fallback, usecase.CatalogStoreConfig{
		TTLMinutes:    cfg.CacheTTL,
		DisableRemote: cfg.DisableRemoteCatalog,
	}, storeOpts...)

	app.Memo = cache.NewLRU[string, *entity.FontEntry](cfg.Resolver.MemoSize)
	resolver := usecase.NewResolver(app.Store, app.Memo)
	app.Fonts = usecase.NewSelectFontsUseCase(resolver, app.Store, cfg.SelectionDefaults())
	app.ConfigSchema = usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())

	logger.Debug().
		Str("cache_driver", string(cfg.Cache.Driver)).
		Int("cache_ttl", cfg.CacheTTL).
		Bool("disable_remote", cfg.DisableRemoteCatalog).
		Msg("app initialized")

	return app, nil
}

// newCatalogCache builds the configured persistent cache. A postgres server
// that cannot be reached disables caching rather than failing the command.
func newCatalogCache(ctx context.Context, cfg *config.Config) (port.CatalogCache, func() error, error) {
	log := logging.FromContext(ctx)

	switch cfg.Cache.Driver {
	case config.CacheDriverNone:
		return nil, nil, nil
	case config.CacheDriverMemory:
		return cache.NewMemoryCatalogCache(time.Now), nil, nil
	case config.CacheDriverSQLite:
		lazy := sqlite.NewLazyDB(cfg.Cache.SQLitePath)
		return sqlite.NewCatalogCache(lazy, time.Now), lazy.Close, nil
	case config.CacheDriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, postgresConnectTimeout)
		defer cancel()
		db, err := postgres.NewConnection(connectCtx, cfg.Cache.PostgresDSN)
		if err != nil {
			log.Warn().Err(err).Msg("postgres catalog cache unavailable, caching disabled")
			return nil, nil, nil
		}
		return postgres.NewCatalogCache(db, time.Now), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

// ApplyConfig updates the selection defaults and drops the in-memory catalog
// so the next request reloads it. Catalog source settings need a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.Fonts.SetDefaults(cfg.SelectionDefaults())
	a.Store.Invalidate()
	logging.FromContext(a.ctx).Info().
		Ints("weights", cfg.Weights).
		Bool("include_italic", cfg.IncludeItalic).
		Msg("configuration reloaded")
}

// WatchConfig reloads the configuration on file changes. It is a no-op when
// the app was not created from a config file.
func (a *App) WatchConfig() error {
	if a.manager == nil {
		return nil
	}
	a.manager.OnConfigChange(a.ApplyConfig)
	return a.manager.Watch()
}

// ConfigFile returns the path of the loaded config file, or the default
// location when none was loaded.
func (a *App) ConfigFile() (string, error) {
	if a.manager != nil {
		if path := a.manager.GetConfigFile(); path != "" {
			return path, nil
		}
	}
	return config.GetConfigFile()
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
