package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/switchboard/internal/domain/build"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
)

func TestEventsRenderer_Empty(t *testing.T) {
	out := NewEventsRenderer(NewTheme()).Render(nil)
	assert.Contains(t, out, "no lifecycle events recorded")
}

func TestEventsRenderer_OldestFirst(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []entity.LifecycleEvent{
		{SessionID: "20260301_120000_beef", Kind: entity.EventNavigationIntercepted, View: entity.ViewCalendar, Target: entity.ViewMail, At: at.Add(time.Second)},
		{SessionID: "20260301_120000_beef", Kind: entity.EventWindowShown, View: entity.ViewMail, At: at},
	}

	out := NewEventsRenderer(NewTheme()).Render(events)

	assert.Contains(t, out, "beef")
	assert.Contains(t, out, "calendar "+IconArrow+" mail")
	assert.Less(t, strings.Index(out, "window_shown"), strings.Index(out, "navigation_intercepted"))
}

func TestEventsRenderer_Summary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []entity.RunSummary{
		{SessionID: "20260301_115500_cafe", Events: 7, Last: now.Add(-2 * time.Minute), Crashes: 1, TimedOut: true},
		{SessionID: "20260301_090000_beef", Events: 4, Last: now.Add(-3 * time.Hour)},
	}

	out := NewEventsRenderer(NewTheme()).RenderSummary(runs, now)

	assert.Less(t, strings.Index(out, "cafe"), strings.Index(out, "beef"))
	assert.Contains(t, out, "1 crashes, startup timed out")
	assert.Contains(t, out, "3h ago")
	assert.Empty(t, NewEventsRenderer(NewTheme()).RenderSummary(nil, now))
}

func TestRoutesRenderer(t *testing.T) {
	views, err := entity.NewViewSet(entity.DefaultViews())
	assert.NoError(t, err)
	r := NewRoutesRenderer(NewTheme())

	out := r.RenderTable(route.DefaultTable(), views, entity.ViewMail)
	assert.Contains(t, out, "/calendar")
	assert.Contains(t, out, "Proton Account")
	assert.Contains(t, out, "default")

	assert.Contains(t, r.RenderResolution("/settings", "/settings", "", false), "no view")
	assert.Contains(t, r.RenderResolution("/mail/inbox/123", "/mail/inbox/123", entity.ViewMail, true), "mail")
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", Since(now, now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", Since(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", Since(now, now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", Since(now, now.Add(-49*time.Hour)))
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
