// Package bunny talks to the Bunny Fonts catalog: the remote /list endpoint
// and the catalog snapshot bundled with the binary.
package bunny

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/domain/font"
	"github.com/bnema/fontpicker/internal/logging"
)

const (
	// DefaultTimeout bounds the whole catalog request.
	DefaultTimeout = 5 * time.Second

	maxCatalogBytes  = 32 << 20
	defaultUserAgent = "fontpicker (+https://github.com/bnema/fontpicker)"
)

// ErrEmptyCatalog is returned when a payload decodes to zero families.
var ErrEmptyCatalog = errors.New("catalog contains no families")

// Fetcher implements port.CatalogFetcher against https://fonts.bunny.net/list.
type Fetcher struct {
	url       string
	timeout   time.Duration
	userAgent string
	client    HTTPDoer
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithURL overrides the catalog endpoint.
func WithURL(url string) FetcherOption {
	return func(f *Fetcher) {
		if url != "" {
			f.url = url
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client HTTPDoer) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// NewFetcher creates a Fetcher with a 5 second timeout.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		url:       font.CatalogURL,
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// URL returns the endpoint the fetcher queries.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch implements port.CatalogFetcher. It never returns a Go error: every
// failure is carried by the result.
func (f *Fetcher) Fetch(ctx context.Context) entity.CatalogResult {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	catalog, err := f.fetch(ctx)
	if err != nil {
		return entity.CatalogFailed(entity.CatalogSourceRemote, err)
	}
	if len(catalog) == 0 {
		return entity.CatalogFailed(entity.CatalogSourceRemote, ErrEmptyCatalog)
	}
	return entity.CatalogOK(entity.CatalogSourceRemote, catalog)
}

func (f *Fetcher) fetch(ctx context.Context) (entity.Catalog, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "catalog-fetcher").
		Logger()

	log.Debug().Str("url", f.url).Msg("fetching catalog")
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("failed to close catalog response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	catalog, err := entity.DecodeCatalog(data)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("families", len(catalog)).
		Dur("elapsed", time.Since(started)).
		Msg("fetched catalog")
	return catalog, nil
}
