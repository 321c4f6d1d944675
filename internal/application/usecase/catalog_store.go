package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/logging"
)

// DefaultCacheTTLMinutes is one week.
const DefaultCacheTTLMinutes = 10080

var (
	errCacheMiss    = errors.New("catalog cache miss")
	errEmptyCatalog = errors.New("catalog is empty")
)

// CatalogStoreConfig holds the options that shape catalog acquisition.
type CatalogStoreConfig struct {
	// TTLMinutes controls the persistent cache and the in-memory lifetime.
	// Zero disables the cache; the in-memory catalog then lives until invalidated.
	TTLMinutes int
	// DisableRemote skips both the cache and the provider; only the bundled
	// fallback is used.
	DisableRemote bool
}

// CatalogStoreOption customizes a CatalogStore.
type CatalogStoreOption func(*CatalogStore)

// WithCatalogCache sets the persistent cache. Without one, every load goes to
// the provider.
func WithCatalogCache(cache port.CatalogCache) CatalogStoreOption {
	return func(s *CatalogStore) {
		s.cache = cache
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(clock port.Clock) CatalogStoreOption {
	return func(s *CatalogStore) {
		if clock != nil {
			s.now = clock
		}
	}
}

// CatalogStore loads the font catalog once per generation and answers slug
// lookups against it. It is safe for concurrent use: at most one goroutine
// runs the cache/fetch/fallback pipeline while the others wait for its result.
type CatalogStore struct {
	fetcher  port.CatalogFetcher
	fallback port.CatalogSource
	cache    port.CatalogCache
	cfg      CatalogStoreConfig
	now      port.Clock

	mu         sync.RWMutex
	loaded     bool
	catalog    entity.Catalog
	source     entity.CatalogSource
	loadedAt   time.Time
	generation uint64
	entries    map[string]*entity.FontEntry

	group singleflight.Group
}

// NewCatalogStore creates a store. fetcher and fallback may be nil.
func NewCatalogStore(
	fetcher port.CatalogFetcher,
	fallback port.CatalogSource,
	cfg CatalogStoreConfig,
	opts ...CatalogStoreOption,
) *CatalogStore {
	s := &CatalogStore{
		fetcher:  fetcher,
		fallback: fallback,
		cfg:      cfg,
		now:      time.Now,
		source:   entity.CatalogSourceNone,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type catalogSnapshot struct {
	catalog entity.Catalog
	source  entity.CatalogSource
}

// All returns the complete catalog, loading it on first use.
func (s *CatalogStore) All(ctx context.Context) entity.Catalog {
	if snap, ok := s.current(); ok {
		return snap.catalog
	}
	return s.load(ctx, false).catalog
}

// Find looks up an entry by slug, case-insensitively. The returned entry has
// its Slug set and must not be modified.
func (s *CatalogStore) Find(ctx context.Context, slug string) *entity.FontEntry {
	key := strings.ToLower(slug)
	if key == "" {
		return nil
	}
	s.All(ctx)

	s.mu.RLock()
	if e, ok := s.entries[key]; ok {
		s.mu.RUnlock()
		return e
	}
	raw, found := s.catalog[key]
	generation := s.generation
	s.mu.RUnlock()

	if !found {
		return nil
	}

	entry := raw.WithSlug(key)

	s.mu.Lock()
	if s.generation == generation && s.entries != nil {
		s.entries[key] = &entry
	}
	s.mu.Unlock()

	return &entry
}

// Generation increments every time the in-memory catalog is replaced or dropped.
func (s *CatalogStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Source reports where the current catalog came from.
func (s *CatalogStore) Source() entity.CatalogSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Invalidate drops the in-memory catalog; the next access reruns the pipeline.
// The persistent cache is left untouched.
func (s *CatalogStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = false
	s.catalog = nil
	s.entries = nil
	s.source = entity.CatalogSourceNone
	s.generation++
}

// Refresh reloads the catalog from the provider, bypassing the cache read.
// When the provider fails, the cache and then the fallback are used as usual.
func (s *CatalogStore) Refresh(ctx context.Context) (entity.Catalog, entity.CatalogSource) {
	snap := s.load(ctx, true)
	return snap.catalog, snap.source
}

func (s *CatalogStore) current() (catalogSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded || s.expiredLocked() {
		return catalogSnapshot{}, false
	}
	return catalogSnapshot{catalog: s.catalog, source: s.source}, true
}

func (s *CatalogStore) expiredLocked() bool {
	if s.cfg.TTLMinutes <= 0 {
		return false
	}
	return s.now().Sub(s.loadedAt) >= time.Duration(s.cfg.TTLMinutes)*time.Minute
}

func (s *CatalogStore) load(ctx context.Context, refresh bool) catalogSnapshot {
	key := "load"
	if refresh {
		key = "refresh"
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		if !refresh {
			if snap, ok := s.current(); ok {
				return snap, nil
			}
		}

		catalog, source := s.acquire(ctx, refresh)

		s.mu.Lock()
		s.loaded = true
		s.catalog = catalog
		s.source = source
		s.loadedAt = s.now()
		s.entries = make(map[string]*entity.FontEntry)
		s.generation++
		s.mu.Unlock()

		return catalogSnapshot{catalog: catalog, source: source}, nil
	})
	return v.(catalogSnapshot)
}

func (s *CatalogStore) acquire(ctx context.Context, remoteFirst bool) (entity.Catalog, entity.CatalogSource) {
	log := logging.FromContext(ctx)

	var cached, remote entity.CatalogResult
	if remoteFirst {
		remote = s.fetchRemote(ctx)
		cached = entity.CatalogSkipped(entity.CatalogSourceCache)
		if !remote.Usable() {
			cached = s.readCache(ctx)
		}
	} else {
		cached = s.readCache(ctx)
		remote = entity.CatalogSkipped(entity.CatalogSourceRemote)
		if !cached.Usable() {
			remote = s.fetchRemote(ctx)
		}
	}

	fallback := entity.CatalogSkipped(entity.CatalogSourceFallback)
	if !cached.Usable() && !remote.Usable() {
		fallback = s.loadFallback(ctx)
	}

	catalog, source := entity.SelectCatalog(cached, remote, fallback)
	if source == entity.CatalogSourceRemote {
		s.writeCache(ctx, catalog)
	}

	log.Debug().
		Str("source", string(source)).
		Int("families", len(catalog)).
		Bool("refresh", remoteFirst).
		Msg("catalog loaded")

	return catalog, source
}

func (s *CatalogStore) cacheEnabled() bool {
	return s.cache != nil && s.cfg.TTLMinutes != 0 && !s.cfg.DisableRemote
}

func (s *CatalogStore) readCache(ctx context.Context) entity.CatalogResult {
	if !s.cacheEnabled() {
		return entity.CatalogSkipped(entity.CatalogSourceCache)
	}

	catalog, ok, err := s.cache.Get(ctx, port.CatalogCacheKey)
	switch {
	case err != nil:
		logging.FromContext(ctx).Warn().Err(err).Msg("catalog cache read failed")
		return entity.CatalogFailed(entity.CatalogSourceCache, err)
	case !ok:
		return entity.CatalogFailed(entity.CatalogSourceCache, errCacheMiss)
	case len(catalog) == 0:
		return entity.CatalogFailed(entity.CatalogSourceCache, errEmptyCatalog)
	}
	return entity.CatalogOK(entity.CatalogSourceCache, catalog)
}

func (s *CatalogStore) fetchRemote(ctx context.Context) entity.CatalogResult {
	if s.cfg.DisableRemote || s.fetcher == nil {
		return entity.CatalogSkipped(entity.CatalogSourceRemote)
	}

	result := s.fetcher.Fetch(ctx)
	logTier(ctx, result)
	return result
}

func (s *CatalogStore) loadFallback(ctx context.Context) entity.CatalogResult {
	if s.fallback == nil {
		return entity.CatalogSkipped(entity.CatalogSourceFallback)
	}

	result := s.fallback.Load(ctx)
	logTier(ctx, result)
	return result
}

func (s *CatalogStore) writeCache(ctx context.Context, catalog entity.Catalog) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.Set(ctx, port.CatalogCacheKey, catalog, s.cfg.TTLMinutes); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("catalog cache write failed")
	}
}

func logTier(ctx context.Context, result entity.CatalogResult) {
	err := result.Err()
	if err == nil {
		if !result.Usable() {
			err = errEmptyCatalog
		} else {
			return
		}
	}
	if errors.Is(err, entity.ErrCatalogSkipped) {
		return
	}
	logging.FromContext(ctx).Debug().
		Err(err).
		Str("source", string(result.Source())).
		Msg("catalog source unavailable")
}
