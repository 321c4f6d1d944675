package bunny

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

var _ port.CatalogSource = (*FallbackSource)(nil)

func TestFallbackSource_Embedded(t *testing.T) {
	result := NewFallbackSource(afero.NewMemMapFs(), "").Load(context.Background())

	require.NoError(t, result.Err())
	assert.Equal(t, entity.CatalogSourceFallback, result.Source())

	catalog, ok := result.Catalog()
	require.True(t, ok)
	require.Contains(t, catalog, "roboto")
	assert.Equal(t, "Roboto", catalog["roboto"].FamilyName)
	assert.Contains(t, catalog["roboto"].Styles, "italic")
	assert.Contains(t, catalog, "open-sans")
}

func TestFallbackSource_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/catalog.json",
		[]byte(`{"abel": {"familyName": "Abel", "weights": [400], "styles": ["normal"]}}`), 0o644))

	result := NewFallbackSource(fs, "/data/catalog.json").Load(context.Background())

	catalog, ok := result.Catalog()
	require.True(t, ok)
	assert.Equal(t, entity.Catalog{
		"abel": {FamilyName: "Abel", Weights: []int{400}, Styles: []string{"normal"}},
	}, catalog)
}

func TestFallbackSource_Failures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/broken.json", []byte(`{"abel": `), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/empty.json", []byte(`{}`), 0o644))

	t.Run("missing file", func(t *testing.T) {
		result := NewFallbackSource(fs, "/nope.json").Load(context.Background())
		require.Error(t, result.Err())
		assert.Contains(t, result.Err().Error(), "failed to read fallback catalog")
	})

	t.Run("malformed file", func(t *testing.T) {
		result := NewFallbackSource(fs, "/broken.json").Load(context.Background())
		require.Error(t, result.Err())
		assert.Contains(t, result.Err().Error(), "/broken.json")
	})

	t.Run("empty object is ok but unusable", func(t *testing.T) {
		result := NewFallbackSource(fs, "/empty.json").Load(context.Background())
		require.NoError(t, result.Err())
		assert.False(t, result.Usable())
	})
}
