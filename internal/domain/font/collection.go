package font

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection aggregates selections into one multi-family stylesheet request
// and one CSS variable block. Insertion order is preserved: it decides the
// family order in the URL and which selection wins a shared variable name.
type Collection struct {
	selections []*Selection
}

// NewCollection builds a collection from selections, collections or
// arbitrarily nested slices and maps of them. Non-selection leaves are ignored.
func NewCollection(items ...any) *Collection {
	c := &Collection{}
	c.Merge(items...)
	return c
}

// Add appends selections in order.
func (c *Collection) Add(selections ...*Selection) *Collection {
	for _, s := range selections {
		if s != nil {
			c.selections = append(c.selections, s)
		}
	}
	return c
}

// Merge flattens nested inputs and appends every selection found.
func (c *Collection) Merge(items ...any) *Collection {
	for _, item := range Flatten(items...) {
		switch v := item.(type) {
		case *Selection:
			c.Add(v)
		case *Collection:
			if v != nil {
				c.Add(v.selections...)
			}
		}
	}
	return c
}

// Selections returns the selections in insertion order.
func (c *Collection) Selections() []*Selection {
	return slices.Clone(c.selections)
}

// Len returns the number of selections, valid or not.
func (c *Collection) Len() int {
	return len(c.selections)
}

// IsEmpty reports whether there is neither a family nor a variable to render.
func (c *Collection) IsEmpty() bool {
	return c.descriptors().Len() == 0 && c.variables().Len() == 0
}

// Descriptors returns one merged descriptor per slug, in first-seen order.
func (c *Collection) Descriptors() []Descriptor {
	families := c.descriptors()
	out := make([]Descriptor, 0, families.Len())
	for pair := families.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Descriptor{Slug: pair.Key, Tokens: pair.Value})
	}
	return out
}

// VariableDefinitions returns one definition per variable name; the last
// selection registering a name provides its values.
func (c *Collection) VariableDefinitions() []VariableDefinition {
	defs := c.variables()
	out := make([]VariableDefinition, 0, defs.Len())
	for pair := defs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, VariableDefinition{Variable: pair.Key, Values: pair.Value})
	}
	return out
}

// StylesheetURL returns one URL requesting every family of the collection.
func (c *Collection) StylesheetURL() (string, bool) {
	return stylesheetURL(c.Descriptors())
}

// RenderStylesheetLink renders the <link> tags for the combined URL.
func (c *Collection) RenderStylesheetLink(preconnect bool) (string, bool) {
	href, ok := c.StylesheetURL()
	if !ok {
		return "", false
	}
	return stylesheetLink(href, preconnect), true
}

// RenderCSSVariables renders every variable definition in one :root block.
func (c *Collection) RenderCSSVariables() (string, bool) {
	return variablesBlock(c.VariableDefinitions())
}

// Render combines the stylesheet link and the CSS variable block.
func (c *Collection) Render(preconnect bool) (string, bool) {
	link, _ := c.RenderStylesheetLink(preconnect)
	vars, _ := c.RenderCSSVariables()
	return joinParts(link, vars)
}

func (c *Collection) descriptors() *orderedmap.OrderedMap[string, []string] {
	families := orderedmap.New[string, []string]()
	for _, s := range c.selections {
		d, ok := s.StylesheetDescriptor()
		if !ok {
			continue
		}
		existing, present := families.Get(d.Slug)
		if !present {
			families.Set(d.Slug, d.Tokens)
			continue
		}
		families.Set(d.Slug, appendUnique(slices.Clone(existing), d.Tokens...))
	}
	return families
}

func (c *Collection) variables() *orderedmap.OrderedMap[string, []string] {
	defs := orderedmap.New[string, []string]()
	for _, s := range c.selections {
		def, ok := s.CSSVariableDefinition()
		if !ok {
			continue
		}
		defs.Set(def.Variable, def.Values)
	}
	return defs
}
