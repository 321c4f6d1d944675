// Package font resolves catalog entries into Bunny Fonts stylesheet tokens,
// URLs, link tags and CSS custom property blocks.
package font

import (
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

// Defaults are the configured per-selection preferences.
type Defaults struct {
	// Weights is the default weight allowlist; empty disables filtering.
	Weights []int
	// IncludeItalics requests italic variants when the family has them.
	IncludeItalics bool
}

// DefaultDefaults mirrors the stock configuration: no filter, italics on.
func DefaultDefaults() Defaults {
	return Defaults{IncludeItalics: true}
}

// Selection binds one user input to its resolved catalog entry plus per-use
// overrides. A nil entry marks an unresolved selection; every render method
// then reports no output.
//
// Override methods mutate the selection and return it for chaining.
type Selection struct {
	raw            string
	entry          *entity.FontEntry
	weightFilter   []int
	includeItalics bool
	cssVariable    string
	cssFallbacks   []string
}

// NewSelection creates a selection for a resolved (or nil) entry.
func NewSelection(raw string, entry *entity.FontEntry, defaults Defaults) *Selection {
	s := &Selection{
		raw:            raw,
		entry:          entry,
		includeItalics: defaults.IncludeItalics,
	}
	if w := NormalizeWeights(defaults.Weights); len(w) > 0 {
		s.weightFilter = w
	}
	return s
}

// Value returns the raw user input.
func (s *Selection) Value() string {
	return s.raw
}

// Entry returns the resolved catalog entry, nil when unresolved.
func (s *Selection) Entry() *entity.FontEntry {
	return s.entry
}

// IsValid reports whether the selection resolved to a catalog entry with a slug.
func (s *Selection) IsValid() bool {
	return s != nil && s.entry != nil && s.entry.Slug != ""
}

// Slug returns the provider slug.
func (s *Selection) Slug() (string, bool) {
	if !s.IsValid() {
		return "", false
	}
	return s.entry.Slug, true
}

// FamilyName returns the display name; absent when unresolved or undeclared.
func (s *Selection) FamilyName() (string, bool) {
	if !s.IsValid() || s.entry.FamilyName == "" {
		return "", false
	}
	return s.entry.FamilyName, true
}

// WeightFilter returns the active weight filter, nil when none.
func (s *Selection) WeightFilter() []int {
	return slices.Clone(s.weightFilter)
}

// IncludesItalics returns the current italics preference.
func (s *Selection) IncludesItalics() bool {
	return s.includeItalics
}

// CSSVariable returns the configured custom property name.
func (s *Selection) CSSVariable() (string, bool) {
	return s.cssVariable, s.cssVariable != ""
}

// CSSFallbacks returns the normalized fallback tokens.
func (s *Selection) CSSFallbacks() []string {
	return slices.Clone(s.cssFallbacks)
}

// WithWeights replaces the weight filter. Scalars and nested slices are
// accepted; an input without any positive weight clears the filter.
func (s *Selection) WithWeights(weights ...any) *Selection {
	normalized := NormalizeWeights(weights...)
	if len(normalized) == 0 {
		s.weightFilter = nil
		return s
	}
	s.weightFilter = normalized
	return s
}

// WithItalics overrides the configured italics preference.
func (s *Selection) WithItalics(include bool) *Selection {
	s.includeItalics = include
	return s
}

// WithCSSVariable sets the custom property that should reference this family.
// Blank names are ignored.
func (s *Selection) WithCSSVariable(variable string) *Selection {
	variable = strings.TrimSpace(variable)
	if variable == "" {
		return s
	}
	s.cssVariable = variable
	return s
}

// WithCSSFallbacks appends fallback tokens to the CSS variable value. Tokens
// starting with "--" become var() references. Without a CSS variable the
// call is a no-op.
func (s *Selection) WithCSSFallbacks(fallbacks ...any) *Selection {
	if s.cssVariable == "" {
		return s
	}

	for _, item := range Flatten(fallbacks...) {
		token, err := cast.ToStringE(item)
		if err != nil {
			continue
		}
		token = normalizeFallback(token)
		if token == "" {
			continue
		}
		s.cssFallbacks = appendUnique(s.cssFallbacks, token)
	}
	return s
}

// StylesheetDescriptor returns the slug and negotiated tokens.
func (s *Selection) StylesheetDescriptor() (Descriptor, bool) {
	slug, ok := s.Slug()
	if !ok {
		return Descriptor{}, false
	}
	tokens := BuildTokens(s.entry, s.weightFilter, s.includeItalics)
	if len(tokens) == 0 {
		return Descriptor{}, false
	}
	return Descriptor{Slug: slug, Tokens: tokens}, true
}

// StylesheetURL returns the provider stylesheet URL for this selection.
func (s *Selection) StylesheetURL() (string, bool) {
	d, ok := s.StylesheetDescriptor()
	if !ok {
		return "", false
	}
	return stylesheetURL([]Descriptor{d})
}

// CSSVariableDefinition returns the variable and its values: the quoted
// family name (when known) followed by the fallbacks.
func (s *Selection) CSSVariableDefinition() (VariableDefinition, bool) {
	if s.cssVariable == "" {
		return VariableDefinition{}, false
	}

	values := make([]string, 0, len(s.cssFallbacks)+1)
	if family, ok := s.FamilyName(); ok {
		values = append(values, quoteFamily(family))
	}
	values = append(values, s.cssFallbacks...)
	if len(values) == 0 {
		return VariableDefinition{}, false
	}
	return VariableDefinition{Variable: s.cssVariable, Values: values}, true
}

// RenderStylesheetLink renders the <link> tags, optionally with a preconnect hint.
func (s *Selection) RenderStylesheetLink(preconnect bool) (string, bool) {
	href, ok := s.StylesheetURL()
	if !ok {
		return "", false
	}
	return stylesheetLink(href, preconnect), true
}

// RenderCSSVariables renders a <style> block defining the CSS variable.
func (s *Selection) RenderCSSVariables() (string, bool) {
	def, ok := s.CSSVariableDefinition()
	if !ok {
		return "", false
	}
	return variablesBlock([]VariableDefinition{def})
}

// Render combines the stylesheet link and the CSS variable block.
func (s *Selection) Render(preconnect bool) (string, bool) {
	link, _ := s.RenderStylesheetLink(preconnect)
	vars, _ := s.RenderCSSVariables()
	return joinParts(link, vars)
}
