package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration keys grouped by section, in the order the
// sections first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	order, sections := groupBySection(keys)

	parts := []string{r.renderHeader(), ""}
	for _, section := range order {
		parts = append(parts, r.renderSection(section, sections[section]), "")
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration keys as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

// RenderPath renders a "file written" confirmation.
func (r *ConfigSchemaRenderer) RenderPath(label, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(IconCheck), r.theme.Subtle.Render(label), r.theme.Normal.Render(path))
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Reference"))
}

func groupBySection(keys []entity.ConfigKeyInfo) ([]string, map[string][]entity.ConfigKeyInfo) {
	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, ok := sections[key.Section]; !ok {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}
	return order, sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	boxContent := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(boxContent)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	def := key.Default
	if def == "" {
		def = `""`
	}

	lines := []string{
		fmt.Sprintf("%s  %s  %s", keyStyle.Render(key.Key), r.theme.Subtle.Render(key.Type), defaultStyle.Render(def)),
		"  " + r.theme.Subtle.Render(key.Description),
	}
	if len(key.Values) > 0 {
		lines = append(lines, "  "+r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", ")))
	} else if key.Range != "" {
		lines = append(lines, "  "+r.theme.Normal.Render("Range: "+key.Range))
	}
	if key.Env != "" {
		lines = append(lines, "  "+r.theme.Subtle.Render("Env: "+key.Env))
	}

	return strings.Join(lines, "\n")
}
