package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/domain/font"
	"github.com/bnema/fontpicker/internal/logging"
)

// SelectFontsUseCase builds selections and collections from font references,
// applying the configured weight and italic defaults.
type SelectFontsUseCase struct {
	resolver *Resolver
	store    CatalogReader

	mu       sync.RWMutex
	defaults font.Defaults
}

// NewSelectFontsUseCase creates a new SelectFontsUseCase.
func NewSelectFontsUseCase(resolver *Resolver, store CatalogReader, defaults font.Defaults) *SelectFontsUseCase {
	return &SelectFontsUseCase{
		resolver: resolver,
		store:    store,
		defaults: cloneDefaults(defaults),
	}
}

// SetDefaults replaces the defaults used for new selections.
// Selections created earlier keep the defaults they were built with.
func (uc *SelectFontsUseCase) SetDefaults(defaults font.Defaults) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.defaults = cloneDefaults(defaults)
}

// Defaults returns a copy of the current defaults.
func (uc *SelectFontsUseCase) Defaults() font.Defaults {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return cloneDefaults(uc.defaults)
}

// Select resolves one reference. The selection is invalid when nothing matched.
func (uc *SelectFontsUseCase) Select(ctx context.Context, value string) *font.Selection {
	ctx = logging.WithFontRef(ctx, value)
	return font.NewSelection(value, uc.resolver.Parse(ctx, value), uc.Defaults())
}

// Collect resolves every reference into one collection, in order.
func (uc *SelectFontsUseCase) Collect(ctx context.Context, values ...string) *font.Collection {
	c := font.NewCollection()
	for _, v := range values {
		c.Add(uc.Select(ctx, v))
	}
	return c
}

// StylesheetURL returns the stylesheet URL for a single reference.
func (uc *SelectFontsUseCase) StylesheetURL(ctx context.Context, value string) (string, bool) {
	return uc.Select(ctx, value).StylesheetURL()
}

// FamilyName returns the display name for a single reference.
func (uc *SelectFontsUseCase) FamilyName(ctx context.Context, value string) (string, bool) {
	return uc.Select(ctx, value).FamilyName()
}

// IsValid reports whether the reference resolves to a catalog entry.
func (uc *SelectFontsUseCase) IsValid(ctx context.Context, value string) bool {
	return uc.Select(ctx, value).IsValid()
}

// FontMatch is a fuzzy search hit.
type FontMatch struct {
	Entry entity.FontEntry
	Score int
}

// searchCandidates adapts catalog entries to fuzzy.Source.
type searchCandidates []entity.FontEntry

func (c searchCandidates) String(i int) string {
	if c[i].FamilyName == "" {
		return c[i].Slug
	}
	return c[i].FamilyName + " " + c[i].Slug
}

func (c searchCandidates) Len() int {
	return len(c)
}

// SearchFonts fuzzy-matches query against family names and slugs, best first.
// A limit <= 0 returns every match.
func (uc *SelectFontsUseCase) SearchFonts(ctx context.Context, query string, limit int) []FontMatch {
	if query == "" {
		return nil
	}

	catalog := uc.store.All(ctx)
	slugs := catalog.Slugs()
	candidates := make(searchCandidates, 0, len(slugs))
	for _, slug := range slugs {
		candidates = append(candidates, catalog[slug].WithSlug(slug))
	}

	matches := fuzzy.FindFrom(query, candidates)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]FontMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, FontMatch{Entry: candidates[m.Index], Score: m.Score})
	}
	return out
}

func cloneDefaults(d font.Defaults) font.Defaults {
	return font.Defaults{
		Weights:        slices.Clone(d.Weights),
		IncludeItalics: d.IncludeItalics,
	}
}
