package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog_ProviderShape(t *testing.T) {
	payload := []byte(`{
		"roboto": {"familyName": "Roboto", "weights": [700, 400, 400], "styles": ["normal", "italic"], "category": "sans-serif"},
		"abel": {"familyName": "Abel", "weights": ["400", "bold", 300.0, "0700", "0x190"], "styles": ["Normal"]}
	}`)

	catalog, err := DecodeCatalog(payload)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "Roboto", catalog["roboto"].FamilyName)
	assert.Equal(t, []int{700, 400, 400}, catalog["roboto"].Weights)
	assert.Equal(t, []string{"normal", "italic"}, catalog["roboto"].Styles)
	assert.Empty(t, catalog["roboto"].Slug)

	assert.Equal(t, []int{400, 300, 700}, catalog["abel"].Weights, "weights are decimal, non-numeric ones are dropped")
}

func TestDecodeCatalog_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"not json", "<html>oops</html>"},
		{"json list", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := DecodeCatalog([]byte(tt.payload))
			assert.Error(t, err)
			assert.Empty(t, catalog)
		})
	}
}

func TestDecodeCatalog_SkipsBrokenEntries(t *testing.T) {
	catalog, err := DecodeCatalog([]byte(`{"ok": {"familyName": "Ok", "weights": [400]}, "broken": "nope"}`))
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
	assert.Contains(t, catalog, "ok")
}

func TestFontEntry_WithSlugCopies(t *testing.T) {
	entry := FontEntry{FamilyName: "Roboto"}
	withSlug := entry.WithSlug("roboto")

	assert.Equal(t, "roboto", withSlug.Slug)
	assert.Empty(t, entry.Slug)
}

func TestSelectCatalog(t *testing.T) {
	cached := Catalog{"a": {FamilyName: "A"}}
	remote := Catalog{"b": {FamilyName: "B"}}
	fallback := Catalog{"c": {FamilyName: "C"}}
	boom := errors.New("boom")

	tests := []struct {
		name       string
		cached     CatalogResult
		remote     CatalogResult
		fallback   CatalogResult
		wantSource CatalogSource
		wantLen    int
	}{
		{
			name:       "cache wins",
			cached:     CatalogOK(CatalogSourceCache, cached),
			remote:     CatalogOK(CatalogSourceRemote, remote),
			fallback:   CatalogOK(CatalogSourceFallback, fallback),
			wantSource: CatalogSourceCache,
			wantLen:    1,
		},
		{
			name:       "empty cache falls through to remote",
			cached:     CatalogOK(CatalogSourceCache, Catalog{}),
			remote:     CatalogOK(CatalogSourceRemote, remote),
			fallback:   CatalogOK(CatalogSourceFallback, fallback),
			wantSource: CatalogSourceRemote,
			wantLen:    1,
		},
		{
			name:       "remote failure uses fallback",
			cached:     CatalogSkipped(CatalogSourceCache),
			remote:     CatalogFailed(CatalogSourceRemote, boom),
			fallback:   CatalogOK(CatalogSourceFallback, fallback),
			wantSource: CatalogSourceFallback,
			wantLen:    1,
		},
		{
			name:       "everything failed",
			cached:     CatalogSkipped(CatalogSourceCache),
			remote:     CatalogFailed(CatalogSourceRemote, boom),
			fallback:   CatalogFailed(CatalogSourceFallback, boom),
			wantSource: CatalogSourceNone,
			wantLen:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, source := SelectCatalog(tt.cached, tt.remote, tt.fallback)
			assert.Equal(t, tt.wantSource, source)
			assert.Len(t, catalog, tt.wantLen)
			assert.NotNil(t, catalog)
		})
	}
}

func TestCatalogResult_Accessors(t *testing.T) {
	failed := CatalogFailed(CatalogSourceRemote, nil)
	_, ok := failed.Catalog()
	assert.False(t, ok)
	assert.Error(t, failed.Err())
	assert.Equal(t, CatalogSourceRemote, failed.Source())

	skipped := CatalogSkipped(CatalogSourceCache)
	assert.ErrorIs(t, skipped.Err(), ErrCatalogSkipped)
	assert.False(t, skipped.Usable())
}

func TestCoerceWeight(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: 400, want: 400},
		{in: " 0700 ", want: 700},
		{in: "300.5", want: 300},
		{in: 900.0, want: 900},
		{in: "0x190", wantErr: true},
		{in: "bold", wantErr: true},
		{in: "1e99", wantErr: true},
	}
	for _, tt := range tests {
		got, err := CoerceWeight(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
