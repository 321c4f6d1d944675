package font

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugSeparator = '-'
	slugMaxLength = 128
)

// Transliterations that NFD decomposition does not cover.
var slugReplacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"ø", "o", "Ø", "o",
	"œ", "oe", "Œ", "oe",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
	"þ", "th", "Þ", "th",
	"&", "-",
)

// Slugify converts free-form text ("Open Sans", "Noto Sans JP!") into the
// provider's slug form ("open-sans", "noto-sans-jp"). Diacritics are folded
// to ASCII, everything outside [a-z0-9] becomes a single separator.
func Slugify(value string) string {
	value = slugReplacer.Replace(strings.TrimSpace(value))

	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		value,
	)
	if err == nil {
		value = folded
	}
	value = strings.ToLower(value)

	var b strings.Builder
	b.Grow(len(value))
	pendingSep := false
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	slug := b.String()
	if len(slug) > slugMaxLength {
		slug = strings.TrimRight(slug[:slugMaxLength], string(slugSeparator))
	}
	return slug
}
