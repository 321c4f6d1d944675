package entity

import "errors"

// CatalogSource names the tier a catalog was obtained from.
type CatalogSource string

const (
	CatalogSourceNone     CatalogSource = "none"
	CatalogSourceCache    CatalogSource = "cache"
	CatalogSourceRemote   CatalogSource = "remote"
	CatalogSourceFallback CatalogSource = "fallback"
)

// ErrCatalogSkipped marks a tier that was not consulted.
var ErrCatalogSkipped = errors.New("catalog source skipped")

// CatalogResult is the outcome of one acquisition tier: either a catalog or
// the reason it could not be produced.
type CatalogResult struct {
	source  CatalogSource
	catalog Catalog
	err     error
}

// CatalogOK wraps a successfully acquired catalog.
func CatalogOK(source CatalogSource, catalog Catalog) CatalogResult {
	return CatalogResult{source: source, catalog: catalog}
}

// CatalogFailed records why a tier failed.
func CatalogFailed(source CatalogSource, reason error) CatalogResult {
	if reason == nil {
		reason = errors.New("unknown failure")
	}
	return CatalogResult{source: source, err: reason}
}

// CatalogSkipped records a tier that was intentionally not consulted.
func CatalogSkipped(source CatalogSource) CatalogResult {
	return CatalogResult{source: source, err: ErrCatalogSkipped}
}

// Source returns the tier this result came from.
func (r CatalogResult) Source() CatalogSource {
	return r.source
}

// Catalog returns the catalog and whether the tier succeeded.
func (r CatalogResult) Catalog() (Catalog, bool) {
	if r.err != nil {
		return nil, false
	}
	return r.catalog, true
}

// Err returns the failure reason, nil on success.
func (r CatalogResult) Err() error {
	return r.err
}

// Usable reports whether the tier produced a non-empty catalog.
func (r CatalogResult) Usable() bool {
	return r.err == nil && len(r.catalog) > 0
}

// SelectCatalog applies the cache -> remote -> fallback precedence. The first
// usable result wins; when none is usable an empty catalog is returned.
func SelectCatalog(cached, remote, fallback CatalogResult) (Catalog, CatalogSource) {
	for _, r := range []CatalogResult{cached, remote, fallback} {
		if r.Usable() {
			return r.catalog, r.source
		}
	}
	return Catalog{}, CatalogSourceNone
}
