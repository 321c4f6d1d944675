package bunny

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/spf13/afero"

	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/logging"
)

// bundledCatalog is a snapshot of the provider list shipped with the binary.
//
//go:embed catalog.json
var bundledCatalog []byte

// FallbackSource implements port.CatalogSource. It reads a catalog file
// through afero when a path is configured, the embedded snapshot otherwise.
type FallbackSource struct {
	fs   afero.Fs
	path string
}

// NewFallbackSource creates a source. An empty path selects the embedded
// snapshot; a nil fs means the OS filesystem.
func NewFallbackSource(fs afero.Fs, path string) *FallbackSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FallbackSource{fs: fs, path: path}
}

// Load implements port.CatalogSource.
func (s *FallbackSource) Load(ctx context.Context) entity.CatalogResult {
	log := logging.FromContext(ctx)

	data, origin, err := s.read()
	if err != nil {
		return entity.CatalogFailed(entity.CatalogSourceFallback, err)
	}

	catalog, err := entity.DecodeCatalog(data)
	if err != nil {
		return entity.CatalogFailed(entity.CatalogSourceFallback, fmt.Errorf("%s: %w", origin, err))
	}

	log.Debug().Str("origin", origin).Int("families", len(catalog)).Msg("loaded fallback catalog")
	return entity.CatalogOK(entity.CatalogSourceFallback, catalog)
}

func (s *FallbackSource) read() ([]byte, string, error) {
	if s.path == "" {
		return bundledCatalog, "embedded", nil
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, s.path, fmt.Errorf("failed to read fallback catalog: %w", err)
	}
	return data, s.path, nil
}
