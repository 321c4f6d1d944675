// Package entity holds the font catalog domain types.
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cast"
)

// FontEntry is the catalog record for one font family.
// Entries are treated as immutable once they leave the catalog store.
type FontEntry struct {
	Slug       string   `json:"slug,omitempty"`
	FamilyName string   `json:"familyName"`
	Weights    []int    `json:"weights"`
	Styles     []string `json:"styles"`
}

// Catalog maps slugs to font entries.
type Catalog map[string]FontEntry

// rawFontEntry mirrors the provider payload before coercion.
type rawFontEntry struct {
	FamilyName any   `json:"familyName"`
	Weights    []any `json:"weights"`
	Styles     []any `json:"styles"`
}

// UnmarshalJSON decodes a provider entry leniently: numeric strings are
// accepted as weights, anything that cannot be coerced is dropped.
func (e *FontEntry) UnmarshalJSON(data []byte) error {
	var raw rawFontEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entry := FontEntry{
		FamilyName: cast.ToString(raw.FamilyName),
		Weights:    make([]int, 0, len(raw.Weights)),
		Styles:     make([]string, 0, len(raw.Styles)),
	}
	for _, w := range raw.Weights {
		weight, err := CoerceWeight(w)
		if err != nil {
			continue
		}
		entry.Weights = append(entry.Weights, weight)
	}
	for _, s := range raw.Styles {
		style, err := cast.ToStringE(s)
		if err != nil {
			continue
		}
		entry.Styles = append(entry.Styles, style)
	}

	*e = entry
	return nil
}

// WithSlug returns a copy of the entry carrying the given slug.
func (e FontEntry) WithSlug(slug string) FontEntry {
	e.Slug = slug
	return e
}

// DecodeCatalog parses the provider's font list payload
// (`{"slug": {"familyName": ..., "weights": [...], "styles": [...]}}`).
// Entries that fail to decode are skipped.
func DecodeCatalog(data []byte) (Catalog, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Catalog{}, fmt.Errorf("empty catalog payload")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog := make(Catalog, len(raw))
	for slug, payload := range raw {
		var entry FontEntry
		if err := json.Unmarshal(payload, &entry); err != nil {
			continue
		}
		catalog[slug] = entry
	}
	return catalog, nil
}

// Slugs returns the catalog keys in ascending order.
func (c Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c))
	for slug := range c {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs
}
