package coordinator

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
)

const testBaseURL = "http://localhost:5173"

type fakeSurface struct {
	view        entity.ViewID
	url         string
	loads       []string
	bounds      entity.Bounds
	handlers    map[int]port.SurfaceHandler
	nextHandler int
	destroyed   bool
	inspections int

	loadErr      error
	boundsErr    error
	inspectorErr error
}

func newFakeSurface(view entity.ViewID) *fakeSurface {
	return &fakeSurface{view: view, handlers: make(map[int]port.SurfaceHandler)}
}

func (s *fakeSurface) View() entity.ViewID { return s.view }

func (s *fakeSurface) Load(_ context.Context, url string) error {
	if s.loadErr != nil {
		return s.loadErr
	}
	s.url = url
	s.loads = append(s.loads, url)
	return nil
}

func (s *fakeSurface) URL() string { return s.url }

func (s *fakeSurface) SetBounds(b entity.Bounds) error {
	if s.boundsErr != nil {
		return s.boundsErr
	}
	s.bounds = b
	return nil
}

func (s *fakeSurface) Bounds() entity.Bounds { return s.bounds }

func (s *fakeSurface) OpenInspector() error {
	if s.inspectorErr != nil {
		return s.inspectorErr
	}
	s.inspections++
	return nil
}

func (s *fakeSurface) Subscribe(h port.SurfaceHandler) func() {
	id := s.nextHandler
	s.nextHandler++
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

func (s *fakeSurface) Destroy() { s.destroyed = true }

func (s *fakeSurface) emit(ev port.SurfaceEvent) {
	ids := make([]int, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if h, ok := s.handlers[id]; ok {
			h(ev)
		}
	}
}

func (s *fakeSurface) finishLoad() {
	s.emit(port.SurfaceEvent{Type: port.EventLoadFinished, URL: s.url})
}

func (s *fakeSurface) navigateInPage(url string) {
	s.url = url
	s.emit(port.SurfaceEvent{Type: port.EventNavigatedInPage, URL: url})
}

// navigate emits a will-navigate event and reports whether it was cancelled.
func (s *fakeSurface) navigate(url string) bool {
	req := port.NewNavigationRequest(url, true)
	s.emit(port.SurfaceEvent{Type: port.EventWillNavigate, URL: url, Navigation: req})
	return req.Cancelled()
}

func (s *fakeSurface) crash(reason string) {
	s.emit(port.SurfaceEvent{Type: port.EventCrashed, URL: s.url, Crash: &port.CrashInfo{Reason: reason}})
}

type fakeWindow struct {
	bounds      entity.Bounds
	content     port.Surface
	attachLog   []entity.ViewID
	title       string
	shows       int
	destroyed   bool
	placeholder string
	onResize    []func(entity.Bounds)
	onClosed    []func()

	boundsErr  error
	contentErr error
	titleErr   error
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{bounds: entity.Bounds{Width: 1200, Height: 800}}
}

func (w *fakeWindow) ContentBounds() (entity.Bounds, error) {
	if w.boundsErr != nil {
		return entity.Bounds{}, w.boundsErr
	}
	return w.bounds, nil
}

func (w *fakeWindow) SetContent(s port.Surface) error {
	if w.contentErr != nil {
		return w.contentErr
	}
	w.content = s
	w.attachLog = append(w.attachLog, s.View())
	return nil
}

func (w *fakeWindow) Content() port.Surface { return w.content }

func (w *fakeWindow) SetTitle(t string) error {
	if w.titleErr != nil {
		return w.titleErr
	}
	w.title = t
	return nil
}

func (w *fakeWindow) Show() error {
	w.shows++
	return nil
}

func (w *fakeWindow) IsVisible() bool { return w.shows > 0 }

func (w *fakeWindow) IsDestroyed() bool { return w.destroyed }

func (w *fakeWindow) LoadPlaceholder(_ context.Context, url string) error {
	w.placeholder = url
	return nil
}

func (w *fakeWindow) OnResize(h func(entity.Bounds)) { w.onResize = append(w.onResize, h) }

func (w *fakeWindow) OnClosed(h func()) { w.onClosed = append(w.onClosed, h) }

func (w *fakeWindow) resize(b entity.Bounds) {
	w.bounds = b
	for _, h := range w.onResize {
		h(b)
	}
}

func (w *fakeWindow) close() {
	w.destroyed = true
	for _, h := range w.onClosed {
		h()
	}
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakePlatform runs posted work only when drain is called and advances a
// virtual clock for timers.
type fakePlatform struct {
	goos      string
	now       time.Duration
	queue     []func()
	timers    []*fakeTimer
	windows   []*fakeWindow
	surfaces  map[entity.ViewID][]*fakeSurface
	failViews map[entity.ViewID]bool
	quits     int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		goos:      "linux",
		surfaces:  make(map[entity.ViewID][]*fakeSurface),
		failViews: make(map[entity.ViewID]bool),
	}
}

func (p *fakePlatform) Post(fn func()) { p.queue = append(p.queue, fn) }

func (p *fakePlatform) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &fakeTimer{at: p.now + d, fn: fn}
	p.timers = append(p.timers, t)
	return t
}

func (p *fakePlatform) drain() {
	for len(p.queue) > 0 {
		fn := p.queue[0]
		p.queue = p.queue[1:]
		fn()
	}
}

func (p *fakePlatform) advance(d time.Duration) {
	p.now += d
	for _, t := range p.timers {
		if !t.stopped && !t.fired && t.at <= p.now {
			t.fired = true
			t.fn()
		}
	}
	p.drain()
}

func (p *fakePlatform) activeTimers() int {
	n := 0
	for _, t := range p.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (p *fakePlatform) NewSurface(_ context.Context, view entity.ViewID) (port.Surface, error) {
	if p.failViews[view] {
		return nil, errors.New("renderer unavailable")
	}
	s := newFakeSurface(view)
	p.surfaces[view] = append(p.surfaces[view], s)
	return s, nil
}

func (p *fakePlatform) surface(view entity.ViewID) *fakeSurface {
	list := p.surfaces[view]
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

func (p *fakePlatform) OS() string { return p.goos }

func (p *fakePlatform) NewWindow(context.Context, port.WindowOptions) (port.HostWindow, error) {
	w := newFakeWindow()
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakePlatform) window() *fakeWindow {
	if len(p.windows) == 0 {
		return nil
	}
	return p.windows[len(p.windows)-1]
}

func (p *fakePlatform) Run(_ context.Context, hooks port.AppHooks) error {
	hooks.OnReady()
	return nil
}

func (p *fakePlatform) Quit() { p.quits++ }

type fakeJournal struct {
	events []entity.LifecycleEvent
	err    error
}

func (j *fakeJournal) Record(_ context.Context, ev entity.LifecycleEvent) error {
	if j.err != nil {
		return j.err
	}
	j.events = append(j.events, ev)
	return nil
}

func (j *fakeJournal) kinds() []entity.LifecycleEventKind {
	out := make([]entity.LifecycleEventKind, 0, len(j.events))
	for _, ev := range j.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (j *fakeJournal) count(kind entity.LifecycleEventKind) int {
	n := 0
	for _, ev := range j.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func testViews() *entity.ViewSet {
	vs, err := entity.NewViewSet(entity.DefaultViews())
	if err != nil {
		panic(err)
	}
	return vs
}

func testSupervisorConfig() SupervisorConfig {
	return SupervisorConfig{
		BaseURL:                 testBaseURL,
		Views:                   testViews(),
		Routes:                  route.DefaultTable(),
		DefaultView:             entity.ViewMail,
		ReadyTimeout:            DefaultReadyTimeout,
		ReadyOnInPageNavigation: true,
		CrashPolicy:             entity.CrashPolicyKeep,
		Window:                  port.WindowOptions{Width: 1200, Height: 800},
		SessionID:               "test-session",
	}
}

// newTestRouter wires a registry, state and controller over fakes with all
// three surfaces created.
func newTestRouter(opts ActivationOptions) (*fakePlatform, *fakeWindow, *SurfaceRegistry, *RouterState, *ActivationController, *fakeJournal) {
	platform := newFakePlatform()
	window := newFakeWindow()
	journal := &fakeJournal{}
	recorder := newEventRecorder(journal, "test-session")
	views := testViews()

	registry := NewSurfaceRegistry(platform, views, testBaseURL, recorder)
	state := NewRouterState(registry)
	controller := NewActivationController(window, state, views, opts, recorder)
	for _, id := range views.IDs() {
		if _, err := registry.CreateSurface(context.Background(), id); err != nil {
			panic(err)
		}
	}
	return platform, window, registry, state, controller, journal
}
