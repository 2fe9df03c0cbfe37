package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config file locations.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config, schema and journal locations.
func (r *ConfigRenderer) RenderPaths(configFile, schemaFile, journalFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	keyStyle := r.theme.Normal.Width(8)

	return fmt.Sprintf(
		"\n  %s %s %s\n  %s %s %s\n  %s %s %s\n",
		iconStyle.Render(IconConfig), keyStyle.Render("Config"), pathStyle.Render(configFile),
		iconStyle.Render(IconInfo), keyStyle.Render("Schema"), pathStyle.Render(schemaFile),
		iconStyle.Render(IconDatabase), keyStyle.Render("Journal"), pathStyle.Render(journalFile),
	)
}

// RenderSchemaWritten confirms a schema export.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("  %s schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}
