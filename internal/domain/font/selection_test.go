package font

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

func TestSelection_StylesheetURL(t *testing.T) {
	sel := NewSelection("roboto", roboto(), DefaultDefaults())

	url, ok := sel.StylesheetURL()
	require.True(t, ok)
	assert.Equal(t, "https://fonts.bunny.net/css?family=roboto:400,400i,700,700i", url)
}

func TestSelection_DefaultsWithoutItalics(t *testing.T) {
	sel := NewSelection("roboto", roboto(), Defaults{IncludeItalics: false})

	d, ok := sel.StylesheetDescriptor()
	require.True(t, ok)
	assert.Equal(t, "roboto", d.Slug)
	assert.Equal(t, []string{"400", "700"}, d.Tokens)
}

func TestSelection_DefaultWeightsApplied(t *testing.T) {
	sel := NewSelection("roboto", roboto(), Defaults{Weights: []int{700}, IncludeItalics: true})

	url, ok := sel.StylesheetURL()
	require.True(t, ok)
	assert.Equal(t, "https://fonts.bunny.net/css?family=roboto:700,700i", url)
}

func TestSelection_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		entry *entity.FontEntry
	}{
		{"nil entry", nil},
		{"entry without slug", &entity.FontEntry{FamilyName: "Ghost", Weights: []int{400}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection("ghost", tt.entry, DefaultDefaults()).
				WithCSSVariable("--font-ghost")

			assert.False(t, sel.IsValid())
			_, ok := sel.Slug()
			assert.False(t, ok)
			_, ok = sel.FamilyName()
			assert.False(t, ok)
			_, ok = sel.StylesheetDescriptor()
			assert.False(t, ok)
			_, ok = sel.StylesheetURL()
			assert.False(t, ok)
			_, ok = sel.CSSVariableDefinition()
			assert.False(t, ok, "no family and no fallbacks means no values")
			_, ok = sel.Render(true)
			assert.False(t, ok)
			assert.Equal(t, "ghost", sel.Value())
		})
	}
}

func TestSelection_InvalidWithFallbacksStillRendersVariable(t *testing.T) {
	sel := NewSelection("nope", nil, DefaultDefaults()).
		WithCSSVariable("--font-body").
		WithCSSFallbacks("sans-serif")

	out, ok := sel.Render(true)
	require.True(t, ok)
	assert.Equal(t, "<style>\n:root {\n    --font-body: sans-serif;\n}\n</style>", out)
}

func TestSelection_FamilyNameEmpty(t *testing.T) {
	entry := roboto()
	entry.FamilyName = ""
	sel := NewSelection("roboto", entry, DefaultDefaults())

	_, ok := sel.FamilyName()
	assert.False(t, ok)
	slug, ok := sel.Slug()
	assert.True(t, ok)
	assert.Equal(t, "roboto", slug)
}

func TestSelection_WithWeights(t *testing.T) {
	entry := &entity.FontEntry{Slug: "inter", Weights: []int{100, 400, 700, 900}, Styles: []string{"normal"}}

	t.Run("last call wins", func(t *testing.T) {
		sel := NewSelection("inter", entry, DefaultDefaults()).
			WithWeights(100).
			WithWeights([]any{"700", []int{900}})
		assert.Equal(t, []int{700, 900}, sel.WeightFilter())

		d, ok := sel.StylesheetDescriptor()
		require.True(t, ok)
		assert.Equal(t, []string{"700", "900"}, d.Tokens)
	})

	t.Run("empty input clears filter", func(t *testing.T) {
		sel := NewSelection("inter", entry, Defaults{Weights: []int{400}}).
			WithWeights("garbage", -1)
		assert.Nil(t, sel.WeightFilter())

		d, ok := sel.StylesheetDescriptor()
		require.True(t, ok)
		assert.Equal(t, []string{"100", "400", "700", "900"}, d.Tokens)
	})

	t.Run("disjoint filter keeps catalog weights", func(t *testing.T) {
		sel := NewSelection("roboto", roboto(), DefaultDefaults()).WithWeights(900).WithItalics(false)
		d, ok := sel.StylesheetDescriptor()
		require.True(t, ok)
		assert.Equal(t, []string{"400", "700"}, d.Tokens)
	})
}

func TestSelection_WithItalicsOverridesDefault(t *testing.T) {
	sel := NewSelection("roboto", roboto(), Defaults{IncludeItalics: false}).WithItalics(true)
	d, ok := sel.StylesheetDescriptor()
	require.True(t, ok)
	assert.Equal(t, []string{"400", "400i", "700", "700i"}, d.Tokens)

	sel.WithItalics(false)
	d, _ = sel.StylesheetDescriptor()
	assert.Equal(t, []string{"400", "700"}, d.Tokens)
}

func TestSelection_CSSVariable(t *testing.T) {
	t.Run("blank name is ignored", func(t *testing.T) {
		sel := NewSelection("roboto", roboto(), DefaultDefaults()).WithCSSVariable("   ")
		_, ok := sel.CSSVariable()
		assert.False(t, ok)
	})

	t.Run("fallbacks before variable are dropped", func(t *testing.T) {
		sel := NewSelection("roboto", roboto(), DefaultDefaults()).
			WithCSSFallbacks("serif").
			WithCSSVariable("--font-body")
		assert.Empty(t, sel.CSSFallbacks())

		def, ok := sel.CSSVariableDefinition()
		require.True(t, ok)
		assert.Equal(t, []string{`"Roboto"`}, def.Values)
	})

	t.Run("fallbacks normalize and dedupe", func(t *testing.T) {
		sel := NewSelection("roboto", roboto(), DefaultDefaults()).
			WithCSSVariable(" --font-body ").
			WithCSSFallbacks("--x", "--x").
			WithCSSFallbacks("--x", "--x").
			WithCSSFallbacks([]string{" system-ui ", "", "  "}, []any{"--font-base", "system-ui"})

		assert.Equal(t, []string{"var(--x)", "system-ui", "var(--font-base)"}, sel.CSSFallbacks())

		def, ok := sel.CSSVariableDefinition()
		require.True(t, ok)
		assert.Equal(t, "--font-body", def.Variable)
		assert.Equal(t, []string{`"Roboto"`, "var(--x)", "system-ui", "var(--font-base)"}, def.Values)
	})

	t.Run("family name is escaped", func(t *testing.T) {
		entry := roboto()
		entry.FamilyName = `Odd "Quoted" \ Sans`
		sel := NewSelection("roboto", entry, DefaultDefaults()).WithCSSVariable("--f")

		def, ok := sel.CSSVariableDefinition()
		require.True(t, ok)
		assert.Equal(t, []string{`"Odd \"Quoted\" \\ Sans"`}, def.Values)
	})
}

func TestSelection_Render(t *testing.T) {
	sel := NewSelection("roboto", roboto(), DefaultDefaults()).
		WithCSSVariable("--font-heading").
		WithCSSFallbacks("--font-base", "sans-serif")

	out, ok := sel.Render(true)
	require.True(t, ok)
	want := `<link rel="preconnect" href="https://fonts.bunny.net">` + "\n" +
		`<link rel="stylesheet" href="https://fonts.bunny.net/css?family=roboto:400,400i,700,700i">` + "\n" +
		"<style>\n:root {\n    --font-heading: \"Roboto\", var(--font-base), sans-serif;\n}\n</style>"
	assert.Equal(t, want, out)

	link, ok := sel.RenderStylesheetLink(false)
	require.True(t, ok)
	assert.Equal(t, `<link rel="stylesheet" href="https://fonts.bunny.net/css?family=roboto:400,400i,700,700i">`, link)
}

func TestSelection_RenderWithoutVariable(t *testing.T) {
	sel := NewSelection("roboto", roboto(), DefaultDefaults())

	out, ok := sel.Render(false)
	require.True(t, ok)
	assert.Equal(t, `<link rel="stylesheet" href="https://fonts.bunny.net/css?family=roboto:400,400i,700,700i">`, out)

	_, ok = sel.RenderCSSVariables()
	assert.False(t, ok)
}

func TestSelection_VariableValuesAreValidCSS(t *testing.T) {
	entry := roboto()
	entry.FamilyName = `Roboto "Flex"`
	sel := NewSelection("roboto", entry, DefaultDefaults()).
		WithCSSVariable("--f").
		WithCSSFallbacks("sans-serif")

	def, ok := sel.CSSVariableDefinition()
	require.True(t, ok)

	sheet, err := parser.Parse("body { font-family: " + strings.Join(def.Values, ", ") + "; }")
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Declarations, 1)
	assert.Equal(t, "font-family", sheet.Rules[0].Declarations[0].Property)
	assert.Contains(t, sheet.Rules[0].Declarations[0].Value, "sans-serif")
}

func TestSelection_EntryWithoutWeightsProducesNoOutput(t *testing.T) {
	entry := &entity.FontEntry{Slug: "empty", FamilyName: "Empty", Styles: []string{"normal"}}
	sel := NewSelection("empty", entry, DefaultDefaults())

	assert.True(t, sel.IsValid())
	_, ok := sel.StylesheetURL()
	assert.False(t, ok)
	_, ok = sel.Render(true)
	assert.False(t, ok)
}
