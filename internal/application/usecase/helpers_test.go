package usecase_test

import (
	"context"

	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func remoteCatalog() entity.Catalog {
	return entity.Catalog{
		"roboto": {
			FamilyName: "Roboto",
			Weights:    []int{100, 300, 400, 500, 700, 900},
			Styles:     []string{"normal", "italic"},
		},
		"open-sans": {
			FamilyName: "Open Sans",
			Weights:    []int{300, 400, 600, 700, 800},
			Styles:     []string{"normal", "italic"},
		},
		"crete-round": {
			FamilyName: "Crete Round",
			Weights:    []int{400},
			Styles:     []string{"normal", "italic"},
		},
		"inter": {
			FamilyName: "Inter",
			Weights:    []int{400, 700},
			Styles:     []string{"normal"},
		},
	}
}

func fallbackCatalog() entity.Catalog {
	return entity.Catalog{
		"abel": {FamilyName: "Abel", Weights: []int{400}, Styles: []string{"normal"}},
	}
}

// fetcherFunc adapts a function to port.CatalogFetcher.
type fetcherFunc func(ctx context.Context) entity.CatalogResult

func (f fetcherFunc) Fetch(ctx context.Context) entity.CatalogResult {
	return f(ctx)
}

// staticReader serves a fixed catalog with a settable generation.
type staticReader struct {
	catalog    entity.Catalog
	generation uint64
	finds      []string
}

func (r *staticReader) All(context.Context) entity.Catalog {
	return r.catalog
}

func (r *staticReader) Find(_ context.Context, slug string) *entity.FontEntry {
	r.finds = append(r.finds, slug)
	raw, ok := r.catalog[slug]
	if !ok {
		return nil
	}
	e := raw.WithSlug(slug)
	return &e
}

func (r *staticReader) Generation() uint64 {
	return r.generation
}
