package cli

import (
	"fmt"
	"strings"

	"github.com/bnema/fontpicker/internal/domain/font"
)

// Binding ties a requested value to a CSS variable and its fallbacks.
type Binding struct {
	Value     string
	Variable  string
	Fallbacks []string
}

// ParseBinding parses "value=--name,fallback,...". The value may itself
// contain '=' (family URLs with a query), so the split happens at the last one.
func ParseBinding(raw string) (Binding, error) {
	idx := strings.LastIndex(raw, "=")
	if idx <= 0 || idx == len(raw)-1 {
		return Binding{}, fmt.Errorf("invalid binding %q: expected value=--name[,fallback...]", raw)
	}

	value := strings.TrimSpace(raw[:idx])
	parts := strings.Split(raw[idx+1:], ",")
	variable := strings.TrimSpace(parts[0])
	if value == "" || variable == "" {
		return Binding{}, fmt.Errorf("invalid binding %q: expected value=--name[,fallback...]", raw)
	}

	var fallbacks []string
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			fallbacks = append(fallbacks, p)
		}
	}
	return Binding{Value: value, Variable: variable, Fallbacks: fallbacks}, nil
}

// Overrides are per-request adjustments applied on top of the configured defaults.
type Overrides struct {
	// Weights replaces the weight allowlist when non-empty.
	Weights []int
	// Italics forces italics on or off when set.
	Italics *bool
	// Variables binds the selection at the same position to a CSS variable.
	Variables []string
	Bindings  []Binding
}

// Collect resolves values into a collection, applies the overrides to every
// resolved selection and returns the values that matched nothing.
func (a *App) Collect(values []string, o Overrides) (*font.Collection, []string) {
	c := a.Fonts.Collect(a.ctx, values...)

	var unresolved []string
	for i, s := range c.Selections() {
		if !s.IsValid() {
			unresolved = append(unresolved, s.Value())
			continue
		}
		if len(o.Weights) > 0 {
			s.WithWeights(o.Weights)
		}
		if o.Italics != nil {
			s.WithItalics(*o.Italics)
		}
		if i < len(o.Variables) {
			s.WithCSSVariable(o.Variables[i])
		}
		for _, b := range o.Bindings {
			if b.Value == s.Value() {
				s.WithCSSVariable(b.Variable).WithCSSFallbacks(b.Fallbacks)
			}
		}
	}
	return c, unresolved
}
