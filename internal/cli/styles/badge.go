package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// SourceBadge renders where a catalog came from: green for the provider,
// accent for the cache, amber for the fallback and red when nothing loaded.
func (t *Theme) SourceBadge(source entity.CatalogSource) string {
	bg := t.Accent
	switch source {
	case entity.CatalogSourceRemote:
		bg = t.Success
	case entity.CatalogSourceFallback:
		bg = t.Warning
	case entity.CatalogSourceNone:
		bg = t.Error
	}
	return t.Badge.Background(bg).Render(string(source))
}

// StyleBadges renders one muted badge per style.
func (t *Theme) StyleBadges(styles []string) string {
	badges := make([]string, 0, len(styles))
	for _, s := range styles {
		badges = append(badges, t.MutedBadge(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpace(badges)...)
}

func joinWithSpace(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
