package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

const eventTimeFormat = "2006-01-02 15:04:05"

// EventsRenderer renders the lifecycle journal tail.
type EventsRenderer struct {
	theme *Theme
}

// NewEventsRenderer creates a new events renderer with the given theme.
func NewEventsRenderer(theme *Theme) *EventsRenderer {
	return &EventsRenderer{theme: theme}
}

// Render renders events oldest first. events is expected newest first, as
// returned by the journal.
func (r *EventsRenderer) Render(events []entity.LifecycleEvent) string {
	if len(events) == 0 {
		return r.theme.Subtle.Render(fmt.Sprintf("  %s no lifecycle events recorded", IconInfo)) + "\n"
	}

	rows := make([][]string, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		rows = append(rows, []string{
			ev.At.Local().Format(eventTimeFormat),
			logging.ShortSessionID(ev.SessionID),
			string(ev.Kind),
			viewCell(ev),
			ev.Detail,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("TIME", "RUN", "EVENT", "VIEW", "DETAIL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			if col == 2 {
				return r.kindStyle(rows[row][2])
			}
			return r.theme.TableCell
		})
	return t.String() + "\n"
}

func viewCell(ev entity.LifecycleEvent) string {
	if ev.Target != "" && ev.Target != ev.View {
		return fmt.Sprintf("%s %s %s", ev.View, IconArrow, ev.Target)
	}
	return string(ev.View)
}

func (r *EventsRenderer) kindStyle(kind string) lipgloss.Style {
	base := r.theme.TableCell
	switch entity.LifecycleEventKind(kind) {
	case entity.EventLoadFailed, entity.EventSurfaceCrashed:
		return base.Foreground(r.theme.Error)
	case entity.EventStartupTimeout:
		return base.Foreground(r.theme.Warning)
	case entity.EventWindowShown, entity.EventLoadFinished:
		return base.Foreground(r.theme.Success)
	default:
		return base
	}
}

// Since formats how long ago t was, for summaries.
func Since(now, t time.Time) string {
	d := now.Sub(t).Round(time.Second)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// RenderSummary renders one line per run, most recent first.
func (r *EventsRenderer) RenderSummary(runs []entity.RunSummary, now time.Time) string {
	if len(runs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("  %s %s %s events, %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconDatabase),
			r.theme.Normal.Render(logging.ShortSessionID(run.SessionID)),
			r.theme.Highlight.Render(fmt.Sprintf("%d", run.Events)),
			r.theme.Subtle.Render(Since(now, run.Last)),
		))
		if issues := runIssues(run); issues != "" {
			sb.WriteString("    " + r.theme.WarningStyle.Render(IconWarning+" "+issues) + "\n")
		}
	}
	return sb.String()
}

func runIssues(run entity.RunSummary) string {
	var parts []string
	if run.Failures > 0 {
		parts = append(parts, fmt.Sprintf("%d load failures", run.Failures))
	}
	if run.Crashes > 0 {
		parts = append(parts, fmt.Sprintf("%d crashes", run.Crashes))
	}
	if run.TimedOut {
		parts = append(parts, "startup timed out")
	}
	return strings.Join(parts, ", ")
}
