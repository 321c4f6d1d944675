package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/infrastructure/cache"
)

// CatalogInfo summarizes the state of the catalog store.
type CatalogInfo struct {
	Source      entity.CatalogSource
	Generation  uint64
	Families    int
	CacheDriver string
	CacheTTL    int
	RemoteURL   string
	Memo        cache.LRUStats
}

// CatalogRenderer renders catalog state.
type CatalogRenderer struct {
	theme *Theme
}

// NewCatalogRenderer creates a new CatalogRenderer.
func NewCatalogRenderer(theme *Theme) *CatalogRenderer {
	return &CatalogRenderer{theme: theme}
}

// RenderInfo renders the catalog summary box.
func (r *CatalogRenderer) RenderInfo(info CatalogInfo) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", iconStyle.Render(IconDatabase), "Catalog"))

	ttl := fmt.Sprintf("%d min", info.CacheTTL)
	if info.CacheTTL == 0 {
		ttl = "disabled"
	}

	rows := [][2]string{
		{"source", r.theme.SourceBadge(info.Source)},
		{"families", fmt.Sprintf("%d", info.Families)},
		{"generation", fmt.Sprintf("%d", info.Generation)},
		{"endpoint", info.RemoteURL},
		{"cache", info.CacheDriver + r.theme.Subtle.Render(" ("+ttl+")")},
		{"memo", fmt.Sprintf("%d/%d entries, %d hits, %d misses", info.Memo.Len, info.Memo.Capacity, info.Memo.Hits, info.Memo.Misses)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Width(11).Render(row[0]), r.theme.Normal.Render(row[1])))
	}

	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

// RenderRefresh renders the outcome of a forced refresh.
func (r *CatalogRenderer) RenderRefresh(source entity.CatalogSource, families int) string {
	if source != entity.CatalogSourceRemote {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		return fmt.Sprintf("%s %s %s %s",
			iconStyle.Render(IconWarning),
			r.theme.WarningStyle.Render("provider unavailable, using"),
			r.theme.SourceBadge(source),
			r.theme.Subtle.Render(pluralize(families, "family", "families")),
		)
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconRefresh),
		r.theme.SuccessStyle.Render("catalog refreshed:"),
		r.theme.Normal.Render(pluralize(families, "family", "families")),
	)
}

// RenderCleared renders the result of clearing the persistent cache.
func (r *CatalogRenderer) RenderCleared(driver string, purged int64) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	msg := "catalog cache cleared (" + driver + ")"
	if purged > 0 {
		msg += fmt.Sprintf(", %d expired rows purged", purged)
	}
	return fmt.Sprintf("%s %s", iconStyle.Render(IconCache), r.theme.Normal.Render(msg))
}

// RenderError renders an error message.
func (r *CatalogRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
