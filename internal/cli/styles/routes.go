package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
)

// RoutesRenderer renders the route table and resolution results.
type RoutesRenderer struct {
	theme *Theme
}

// NewRoutesRenderer creates a new routes renderer with the given theme.
func NewRoutesRenderer(theme *Theme) *RoutesRenderer {
	return &RoutesRenderer{theme: theme}
}

// RenderTable lists entries in match order with each view's title.
func (r *RoutesRenderer) RenderTable(routes *route.Table, views *entity.ViewSet, defaultView entity.ViewID) string {
	rows := make([][]string, 0, routes.Len())
	for i, e := range routes.Entries() {
		marker := ""
		if e.View == defaultView {
			marker = "default"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), e.Prefix, string(e.View), views.Title(e.View), marker})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("#", "PREFIX", "VIEW", "TITLE", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.TableHeader
			case col == 1:
				return r.theme.TableCell.Foreground(r.theme.Accent)
			case col == 4:
				return r.theme.TableCell.Foreground(r.theme.Muted)
			default:
				return r.theme.TableCell
			}
		})
	return t.String() + "\n"
}

// RenderResolution renders the outcome of resolving one address.
func (r *RoutesRenderer) RenderResolution(input, pathname string, view entity.ViewID, ok bool) string {
	arrow := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconArrow)
	if !ok {
		return fmt.Sprintf("  %s %s %s %s\n",
			r.theme.WarningStyle.Render(IconX),
			r.theme.Normal.Render(input),
			arrow,
			r.theme.Subtle.Render("no view (navigation proceeds in the current surface)"),
		)
	}
	return fmt.Sprintf("  %s %s %s %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(pathname),
		arrow,
		r.theme.Badge.Render(string(view)),
		r.theme.Subtle.Render(input),
	)
}
