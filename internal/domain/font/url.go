package font

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// ProviderHost serves family pages and stylesheets.
	ProviderHost = "fonts.bunny.net"
	// ProviderOrigin is used for the preconnect hint.
	ProviderOrigin = "https://" + ProviderHost
	// StylesheetBaseURL is the CSS endpoint accepting family descriptors.
	StylesheetBaseURL = ProviderOrigin + "/css?family="
	// CatalogURL lists every family with weights and styles.
	CatalogURL = ProviderOrigin + "/list"
)

var familyPathPattern = regexp.MustCompile(`(?i)^/family/([a-z0-9-]+)$`)

// LooksLikeURL reports whether the input should be treated as a URL rather
// than a name or slug.
func LooksLikeURL(value string) bool {
	return strings.Contains(value, "://") || strings.Contains(value, ProviderHost+"/")
}

// FamilyURL is the outcome of parsing a provider family page URL.
type FamilyURL struct {
	// ProviderHost is true when the URL points at the provider, whatever its path.
	ProviderHost bool
	// Slug is the lowercased family slug, empty when the path does not match.
	Slug string
}

// ParseFamilyURL extracts the slug from https://fonts.bunny.net/family/<slug>.
func ParseFamilyURL(value string) FamilyURL {
	raw := strings.TrimSpace(value)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return FamilyURL{}
	}
	if !strings.EqualFold(parsed.Hostname(), ProviderHost) {
		return FamilyURL{}
	}

	result := FamilyURL{ProviderHost: true}
	if m := familyPathPattern.FindStringSubmatch(parsed.Path); m != nil {
		result.Slug = strings.ToLower(m[1])
	}
	return result
}
