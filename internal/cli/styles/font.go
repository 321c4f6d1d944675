package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"

	"github.com/bnema/fontpicker/internal/application/usecase"
	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/domain/font"
)

// FontRenderer renders resolution results, search hits and collection trees.
type FontRenderer struct {
	theme *Theme
}

// NewFontRenderer creates a new FontRenderer.
func NewFontRenderer(theme *Theme) *FontRenderer {
	return &FontRenderer{theme: theme}
}

// RenderResolved renders a matched reference with its catalog metadata.
func (r *FontRenderer) RenderResolved(value string, entry *entity.FontEntry, source entity.CatalogSource) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	arrow := r.theme.Subtle.Render(IconArrow)

	head := fmt.Sprintf("%s %s %s %s %s",
		iconStyle.Render(IconCheck),
		r.theme.Normal.Render(value),
		arrow,
		r.theme.Title.Render(entry.FamilyName),
		r.theme.Subtle.Render("("+entry.Slug+")"),
	)

	lines := []string{
		head,
		"  " + r.theme.Subtle.Render("weights ") + r.theme.Normal.Render(joinInts(entry.Weights)),
		"  " + r.theme.Subtle.Render("styles  ") + r.theme.StyleBadges(entry.Styles),
		"  " + r.theme.Subtle.Render("catalog ") + r.theme.SourceBadge(source),
	}
	return strings.Join(lines, "\n")
}

// RenderMiss renders an unresolved reference with optional suggestions.
func (r *FontRenderer) RenderMiss(value string, suggestions []usecase.FontMatch) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconX), r.theme.Normal.Render(value), r.theme.ErrorStyle.Render("not found in catalog")),
	}
	if len(suggestions) > 0 {
		lines = append(lines, "  "+r.theme.Subtle.Render("did you mean:"))
		for _, s := range suggestions {
			lines = append(lines, fmt.Sprintf("    %s %s", r.theme.Highlight.Render(s.Entry.Slug), r.theme.Subtle.Render(s.Entry.FamilyName)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSearch renders fuzzy search hits, best first.
func (r *FontRenderer) RenderSearch(query string, hits []usecase.FontMatch) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s %s", iconStyle.Render(IconSearch), r.theme.Title.Render(query), r.theme.Subtle.Render(pluralize(len(hits), "match", "matches")))
	if len(hits) == 0 {
		return header
	}

	width := 0
	for _, h := range hits {
		width = max(width, lipgloss.Width(h.Entry.Slug))
	}

	lines := []string{header}
	for _, h := range hits {
		slug := r.theme.Highlight.Width(width).Render(h.Entry.Slug)
		lines = append(lines, fmt.Sprintf("  %s  %s  %s", slug, r.theme.Normal.Render(h.Entry.FamilyName), r.theme.Subtle.Render(joinInts(h.Entry.Weights))))
	}
	return strings.Join(lines, "\n")
}

// RenderTree renders a collection as families -> tokens and variables -> values.
func (r *FontRenderer) RenderTree(c *font.Collection) string {
	tree := treeprint.NewWithRoot(r.theme.Title.Render(IconFont + " collection"))

	url, ok := c.StylesheetURL()
	if ok {
		tree.AddMetaNode("url", url)
	}

	families := tree.AddBranch(r.theme.Subtitle.Render("families"))
	for _, d := range c.Descriptors() {
		branch := families.AddBranch(r.theme.Highlight.Render(d.Slug))
		for _, token := range d.Tokens {
			branch.AddNode(token)
		}
	}

	if defs := c.VariableDefinitions(); len(defs) > 0 {
		vars := tree.AddBranch(r.theme.Subtitle.Render("variables"))
		for _, def := range defs {
			branch := vars.AddBranch(r.theme.Highlight.Render(def.Variable))
			for _, v := range def.Values {
				branch.AddNode(v)
			}
		}
	}

	var unresolved []string
	for _, s := range c.Selections() {
		if !s.IsValid() {
			unresolved = append(unresolved, s.Value())
		}
	}
	if len(unresolved) > 0 {
		misses := tree.AddBranch(r.theme.ErrorStyle.Render("unresolved"))
		for _, v := range unresolved {
			misses.AddNode(v)
		}
	}

	return strings.TrimRight(tree.String(), "\n")
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
