package headless_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
	"github.com/bnema/switchboard/internal/infrastructure/headless"
	"github.com/bnema/switchboard/internal/ui/coordinator"
)

type memJournal struct {
	mu     sync.Mutex
	events []entity.LifecycleEvent
}

func (j *memJournal) Record(_ context.Context, ev entity.LifecycleEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, ev)
	return nil
}

func (j *memJournal) count(kind entity.LifecycleEventKind) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, ev := range j.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// contentServer serves every view; requests for /mail wait on gate when set.
func contentServer(t *testing.T, gate chan struct{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/mail", func(w http.ResponseWriter, r *http.Request) {
		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}
		_, _ = w.Write([]byte("<html>mail</html>"))
	})
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>calendar</html>"))
	})
	mux.HandleFunc("/account", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type harness struct {
	platform   *headless.Platform
	supervisor *coordinator.LifecycleSupervisor
	journal    *memJournal
	errc       chan error
	cancel     context.CancelFunc
}

func startHarness(t *testing.T, baseURL string, mutate func(*coordinator.SupervisorConfig)) *harness {
	t.Helper()
	views, err := entity.NewViewSet(entity.DefaultViews())
	require.NoError(t, err)

	cfg := coordinator.SupervisorConfig{
		BaseURL:                 baseURL,
		Views:                   views,
		Routes:                  route.DefaultTable(),
		DefaultView:             entity.ViewMail,
		ReadyTimeout:            5 * time.Second,
		ReadyOnInPageNavigation: true,
		ResizeAllSurfaces:       true,
		Window:                  port.WindowOptions{Width: 1200, Height: 800},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		platform: headless.NewPlatform(headless.WithOS("linux")),
		journal:  &memJournal{},
		errc:     make(chan error, 1),
	}
	h.supervisor, err = coordinator.NewLifecycleSupervisor(h.platform, cfg, h.journal)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.errc <- h.supervisor.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-h.errc
	})
	return h
}

func (h *harness) do(t *testing.T, fn func()) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.platform.Do(ctx, fn))
}

func (h *harness) window(t *testing.T) *headless.Window {
	t.Helper()
	var w *headless.Window
	require.Eventually(t, func() bool {
		ws := h.platform.Windows()
		if len(ws) == 0 {
			return false
		}
		w = ws[len(ws)-1]
		return true
	}, 5*time.Second, 5*time.Millisecond)
	return w
}

func (h *harness) waitVisible(t *testing.T, w *headless.Window) {
	t.Helper()
	require.Eventually(t, func() bool {
		visible := false
		_ = h.platform.Do(context.Background(), func() { visible = w.IsVisible() })
		return visible
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHeadless_StartupShowsMailAfterLoad(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, nil)
	w := h.window(t)
	h.waitVisible(t, w)

	h.do(t, func() {
		view, ok := h.supervisor.ActiveView()
		assert.True(t, ok)
		assert.Equal(t, entity.ViewMail, view)
		assert.Equal(t, "Proton Mail", w.Title())
		assert.Same(t, h.platform.Surface(entity.ViewMail), w.Content())
	})
	assert.Equal(t, 1, h.journal.count(entity.EventWindowShown))
	assert.Equal(t, 0, h.journal.count(entity.EventStartupTimeout))
}

func TestHeadless_LoadFailureIsRecordedNotFatal(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, nil)
	h.waitVisible(t, h.window(t))

	require.Eventually(t, func() bool {
		return h.journal.count(entity.EventLoadFailed) == 1
	}, 5*time.Second, 10*time.Millisecond)

	h.do(t, func() {
		rec, ok := h.supervisor.Registry().Record(entity.ViewAccount)
		require.True(t, ok)
		assert.Equal(t, entity.SurfaceFailed, rec.State)
		assert.Contains(t, rec.LastError, "502")

		require.NoError(t, h.supervisor.Activate(context.Background(), entity.ViewAccount))
	})
}

func TestHeadless_UnsupportedSchemeStaysFailed(t *testing.T) {
	h := startHarness(t, "file:///srv/content", func(c *coordinator.SupervisorConfig) {
		c.ReadyTimeout = 50 * time.Millisecond
	})
	w := h.window(t)
	h.waitVisible(t, w)

	// One more round trip so anything queued behind the reveal has run.
	h.do(t, func() {})

	h.do(t, func() {
		for _, view := range []entity.ViewID{entity.ViewMail, entity.ViewCalendar, entity.ViewAccount} {
			rec, ok := h.supervisor.Registry().Record(view)
			require.True(t, ok)
			assert.Equal(t, entity.SurfaceFailed, rec.State, "view %s", view)
			assert.Contains(t, rec.LastError, "unsupported scheme")
			assert.Empty(t, h.platform.Surface(view).URL())
		}
	})
	assert.Equal(t, 3, h.journal.count(entity.EventLoadFailed))
	assert.Equal(t, 1, h.journal.count(entity.EventStartupTimeout))
}

func TestHeadless_TimeoutRevealsThenLateReadyActivates(t *testing.T) {
	gate := make(chan struct{})
	srv := contentServer(t, gate)
	h := startHarness(t, srv.URL, func(c *coordinator.SupervisorConfig) {
		c.ReadyTimeout = 50 * time.Millisecond
	})
	w := h.window(t)
	h.waitVisible(t, w)

	h.do(t, func() {
		_, ok := h.supervisor.ActiveView()
		assert.False(t, ok)
		assert.Nil(t, w.Content())
	})
	assert.Equal(t, 1, h.journal.count(entity.EventStartupTimeout))

	close(gate)
	require.Eventually(t, func() bool {
		active := false
		_ = h.platform.Do(context.Background(), func() {
			view, ok := h.supervisor.ActiveView()
			active = ok && view == entity.ViewMail
		})
		return active
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, h.journal.count(entity.EventWindowShown))
}

func TestHeadless_CrossViewNavigation(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, nil)
	w := h.window(t)
	h.waitVisible(t, w)

	h.do(t, func() {
		ctx := context.Background()
		require.NoError(t, h.supervisor.Activate(ctx, entity.ViewCalendar))

		calendar := h.platform.Surface(entity.ViewCalendar)
		cancelled, err := calendar.Navigate(ctx, "/mail/inbox/123")
		require.NoError(t, err)
		assert.True(t, cancelled)
		assert.Equal(t, srv.URL+"/calendar", calendar.URL())

		view, _ := h.supervisor.ActiveView()
		assert.Equal(t, entity.ViewMail, view)
		assert.Equal(t, "Proton Mail", w.Title())

		mail := h.platform.Surface(entity.ViewMail)
		cancelled, err = mail.Navigate(ctx, srv.URL+"/settings")
		require.NoError(t, err)
		assert.False(t, cancelled)
		assert.Equal(t, srv.URL+"/settings", mail.URL())
	})
	assert.Equal(t, 1, h.journal.count(entity.EventNavigationIntercepted))
}

func TestHeadless_ResizeSyncsAllSurfaces(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, nil)
	w := h.window(t)
	h.waitVisible(t, w)

	h.do(t, func() { w.Resize(1600, 1000) })
	h.do(t, func() {
		for _, id := range []entity.ViewID{entity.ViewMail, entity.ViewCalendar, entity.ViewAccount} {
			assert.Equal(t, entity.Bounds{Width: 1600, Height: 1000}, h.platform.Surface(id).Bounds(), id)
		}
	})
}

func TestHeadless_CrashRecreate(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, func(c *coordinator.SupervisorConfig) {
		c.CrashPolicy = entity.CrashPolicyRecreate
	})
	w := h.window(t)
	h.waitVisible(t, w)

	var crashed *headless.Surface
	h.do(t, func() {
		crashed = h.platform.Surface(entity.ViewMail)
		crashed.Crash("oom")
	})
	h.do(t, func() {
		fresh := h.platform.Surface(entity.ViewMail)
		require.NotNil(t, fresh)
		assert.NotSame(t, crashed, fresh)
		assert.Same(t, fresh, w.Content())
	})
	assert.Equal(t, 1, h.journal.count(entity.EventSurfaceCrashed))
	assert.Equal(t, 1, h.journal.count(entity.EventSurfaceRecreated))
}

func TestHeadless_CloseQuitsOnLinux(t *testing.T) {
	srv := contentServer(t, nil)
	h := startHarness(t, srv.URL, nil)
	w := h.window(t)
	h.waitVisible(t, w)

	require.NoError(t, h.platform.Do(context.Background(), w.Close))

	select {
	case err := <-h.errc:
		require.NoError(t, err)
		h.errc <- nil
	case <-time.After(5 * time.Second):
		t.Fatal("platform did not quit after the last window closed")
	}
	assert.Equal(t, 1, h.journal.count(entity.EventWindowClosed))
}

func TestHeadless_DarwinStaysResidentAndReactivates(t *testing.T) {
	srv := contentServer(t, nil)
	views, err := entity.NewViewSet(entity.DefaultViews())
	require.NoError(t, err)
	platform := headless.NewPlatform(headless.WithOS("darwin"))
	sup, err := coordinator.NewLifecycleSupervisor(platform, coordinator.SupervisorConfig{
		BaseURL:      srv.URL,
		Views:        views,
		Routes:       route.DefaultTable(),
		DefaultView:  entity.ViewMail,
		ReadyTimeout: 5 * time.Second,
		Window:       port.WindowOptions{Width: 800, Height: 600},
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sup.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errc
	})

	require.Eventually(t, func() bool { return len(platform.Windows()) == 1 }, 5*time.Second, 5*time.Millisecond)
	first := platform.Windows()[0]
	require.NoError(t, platform.Do(context.Background(), first.Close))

	require.NoError(t, platform.Do(context.Background(), func() {
		assert.Nil(t, sup.Window())
	}))

	platform.Activate()
	require.Eventually(t, func() bool { return len(platform.Windows()) == 2 }, 5*time.Second, 5*time.Millisecond)
}
