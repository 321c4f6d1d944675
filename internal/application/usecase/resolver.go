package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/domain/font"
	"github.com/bnema/fontpicker/internal/logging"
)

// CatalogReader is the read side of CatalogStore.
type CatalogReader interface {
	All(ctx context.Context) entity.Catalog
	Find(ctx context.Context, slug string) *entity.FontEntry
	Generation() uint64
}

// Resolver turns free-form font references (slugs, display names, family
// page URLs) into catalog entries.
type Resolver struct {
	store CatalogReader
	memo  port.Cache[string, *entity.FontEntry]

	mu         sync.Mutex
	generation uint64
}

// NewResolver creates a resolver. memo caches hits keyed by the trimmed input.
func NewResolver(store CatalogReader, memo port.Cache[string, *entity.FontEntry]) *Resolver {
	return &Resolver{
		store: store,
		memo:  memo,
	}
}

// Parse returns the entry matching value, or nil when nothing matches.
//
// Lookups are tried in order: memoized input, exact slug, slugified name,
// provider family URL, slugified input.
func (r *Resolver) Parse(ctx context.Context, value string) *entity.FontEntry {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	r.store.All(ctx)
	r.syncMemo()

	if e, ok := r.memo.Get(trimmed); ok {
		return e
	}
	lower := strings.ToLower(trimmed)
	if e, ok := r.memo.Get(lower); ok {
		return e
	}

	entry := r.lookup(ctx, trimmed, lower)
	if entry == nil {
		logging.FromContext(ctx).Debug().Str("font_ref", trimmed).Msg("font reference not found")
		return nil
	}

	r.syncMemo()
	r.memo.Set(trimmed, entry)
	return entry
}

func (r *Resolver) lookup(ctx context.Context, trimmed, lower string) *entity.FontEntry {
	if e := r.store.Find(ctx, lower); e != nil {
		return e
	}

	slug := font.Slugify(trimmed)
	if slug != "" && slug != lower {
		if e := r.store.Find(ctx, slug); e != nil {
			return e
		}
	}

	if font.LooksLikeURL(trimmed) {
		parsed := font.ParseFamilyURL(trimmed)
		if parsed.ProviderHost {
			if parsed.Slug == "" {
				return nil
			}
			return r.store.Find(ctx, parsed.Slug)
		}
	}

	if slug == "" {
		return nil
	}
	return r.store.Find(ctx, slug)
}

// syncMemo drops memoized entries from an older catalog generation.
func (r *Resolver) syncMemo() {
	generation := r.store.Generation()

	r.mu.Lock()
	defer r.mu.Unlock()
	if generation != r.generation {
		r.memo.Purge()
		r.generation = generation
	}
}
