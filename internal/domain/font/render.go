package font

import (
	"net/url"
	"strings"
)

const (
	cssVariablePrefix = "--"
	cssIndent         = "    "
)

// Descriptor is one family's requested variants for a stylesheet request.
type Descriptor struct {
	Slug   string
	Tokens []string
}

// String renders the descriptor in the provider's family syntax (slug:400,700).
func (d Descriptor) String() string {
	return rawURLEncode(d.Slug) + ":" + strings.Join(d.Tokens, ",")
}

// rawURLEncode percent-encodes everything outside [A-Za-z0-9-_.~] (RFC 3986).
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// VariableDefinition is a CSS custom property and its comma-separated values.
type VariableDefinition struct {
	Variable string
	Values   []string
}

// stylesheetURL joins descriptors into one request URL.
func stylesheetURL(descriptors []Descriptor) (string, bool) {
	parts := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Slug == "" || len(d.Tokens) == 0 {
			continue
		}
		parts = append(parts, d.String())
	}
	if len(parts) == 0 {
		return "", false
	}
	return StylesheetBaseURL + strings.Join(parts, "|"), true
}

// stylesheetLink renders the <link> markup for a stylesheet URL.
func stylesheetLink(href string, preconnect bool) string {
	parts := make([]string, 0, 2)
	if preconnect {
		parts = append(parts, `<link rel="preconnect" href="`+ProviderOrigin+`">`)
	}
	parts = append(parts, `<link rel="stylesheet" href="`+href+`">`)
	return strings.Join(parts, "\n")
}

// variablesBlock renders a :root block; definitions without values are skipped.
func variablesBlock(defs []VariableDefinition) (string, bool) {
	lines := make([]string, 0, len(defs))
	for _, def := range defs {
		if len(def.Values) == 0 {
			continue
		}
		lines = append(lines, cssIndent+def.Variable+": "+strings.Join(def.Values, ", ")+";")
	}
	if len(lines) == 0 {
		return "", false
	}
	return "<style>\n:root {\n" + strings.Join(lines, "\n") + "\n}\n</style>", true
}

// joinParts concatenates the non-empty rendered parts with newlines.
func joinParts(parts ...string) (string, bool) {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, "\n"), true
}

// quoteFamily double-quotes a family name, escaping quotes and backslashes.
func quoteFamily(family string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(family)
	return `"` + escaped + `"`
}

// normalizeFallback turns "--x" into "var(--x)" and trims everything else.
func normalizeFallback(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, cssVariablePrefix) {
		return "var(" + token + ")"
	}
	return token
}
