package font

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "display name", input: "Open Sans", want: "open-sans"},
		{name: "already a slug", input: "open-sans", want: "open-sans"},
		{name: "punctuation runs collapse", input: "  Noto Sans -- JP!! ", want: "noto-sans-jp"},
		{name: "underscores", input: "Fira_Code", want: "fira-code"},
		{name: "diacritics folded", input: "Crète Round", want: "crete-round"},
		{name: "special letters", input: "Straße Æther", want: "strasse-aether"},
		{name: "ampersand", input: "Bits&Bytes", want: "bits-bytes"},
		{name: "digits kept", input: "Source Code Pro 2", want: "source-code-pro-2"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := strings.Repeat("ab ", 100)
	slug := Slugify(long)

	assert.LessOrEqual(t, len(slug), 128)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
