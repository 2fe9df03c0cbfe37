package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
	"github.com/bnema/switchboard/internal/logging"
	"github.com/bnema/switchboard/internal/ui/mainloop"
)

// DefaultReadyTimeout bounds how long the window stays hidden waiting for
// the default view.
const DefaultReadyTimeout = 60 * time.Second

// DefaultPlaceholderURL is loaded into the window in test mode.
const DefaultPlaceholderURL = "about:blank"

const resizeKey = "content"

// GatePhase is the state of the startup gate.
type GatePhase int

const (
	GateLoading GatePhase = iota
	GateReady
	GateTimedOut
	GateShown
)

func (p GatePhase) String() string {
	switch p {
	case GateLoading:
		return "loading"
	case GateReady:
		return "ready"
	case GateTimedOut:
		return "timed-out"
	case GateShown:
		return "shown"
	default:
		return "unknown"
	}
}

// ReadinessSignal says why the default view counts as ready.
type ReadinessSignal int

const (
	// SignalLoadFinished is the first successful content load.
	SignalLoadFinished ReadinessSignal = iota
	// SignalInPageNavigation is a same-document navigation before first show.
	SignalInPageNavigation
)

func (s ReadinessSignal) String() string {
	if s == SignalInPageNavigation {
		return "in-page-navigation"
	}
	return "load-finished"
}

// SupervisorConfig configures the LifecycleSupervisor.
type SupervisorConfig struct {
	BaseURL                 string
	Views                   *entity.ViewSet
	Routes                  *route.Table
	DefaultView             entity.ViewID
	ReadyTimeout            time.Duration
	ReadyOnInPageNavigation bool
	CrashPolicy             entity.CrashPolicy
	TestMode                bool
	PlaceholderURL          string
	Inspector               bool
	ResizeAllSurfaces       bool
	Window                  port.WindowOptions
	SessionID               string
}

// Validate checks the configuration is coherent.
func (c SupervisorConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base url cannot be empty")
	}
	if c.Views == nil {
		return errors.New("view set cannot be nil")
	}
	if c.Routes == nil {
		return errors.New("route table cannot be nil")
	}
	if !c.Views.Has(c.DefaultView) {
		return fmt.Errorf("default view %q: %w", c.DefaultView, ErrUnknownView)
	}
	if err := route.Validate(c.Routes, c.Views); err != nil {
		return err
	}
	if c.ReadyTimeout <= 0 {
		return fmt.Errorf("ready timeout must be positive, got %s", c.ReadyTimeout)
	}
	switch c.CrashPolicy {
	case "", entity.CrashPolicyKeep, entity.CrashPolicyRecreate:
	default:
		return fmt.Errorf("unknown crash policy %q", c.CrashPolicy)
	}
	return nil
}

// startupGate holds the default view's readiness state for one window.
type startupGate struct {
	phase GatePhase
	timer port.Timer
	// degraded is set when the window was revealed by the timeout and the
	// default view has not been activated yet.
	degraded bool
	trace    *logging.StartupTrace
}

// stopTimer cancels the timeout. Safe to call repeatedly; the timer is
// stopped at most once.
func (g *startupGate) stopTimer() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// windowSession is everything tied to one host window.
type windowSession struct {
	window     port.HostWindow
	state      *RouterState
	registry   *SurfaceRegistry
	controller *ActivationController
	gate       *startupGate
	resize     *mainloop.Coalescer[string, entity.Bounds]
	detach     map[entity.ViewID][]func()
}

func (s *windowSession) teardown() {
	s.gate.stopTimer()
	if s.resize != nil {
		s.resize.Destroy()
	}
	for _, fns := range s.detach {
		for _, fn := range fns {
			fn()
		}
	}
	s.detach = nil
	s.registry.Close()
}

// LifecycleSupervisor creates the window and its surfaces, gates the first
// reveal on the default view's readiness, reacts to crashes, and forwards
// the process-level window lifecycle.
type LifecycleSupervisor struct {
	platform port.Platform
	cfg      SupervisorConfig
	recorder *eventRecorder
	session  *windowSession
}

// NewLifecycleSupervisor validates cfg and creates a supervisor. journal
// may be nil.
func NewLifecycleSupervisor(platform port.Platform, cfg SupervisorConfig, journal port.EventJournal) (*LifecycleSupervisor, error) {
	if platform == nil {
		return nil, errors.New("platform cannot be nil")
	}
	if cfg.CrashPolicy == "" {
		cfg.CrashPolicy = entity.CrashPolicyKeep
	}
	if cfg.PlaceholderURL == "" {
		cfg.PlaceholderURL = DefaultPlaceholderURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid supervisor config: %w", err)
	}
	return &LifecycleSupervisor{
		platform: platform,
		cfg:      cfg,
		recorder: newEventRecorder(journal, cfg.SessionID),
	}, nil
}

// Run hands control to the platform until it quits.
func (s *LifecycleSupervisor) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "supervisor")
	return s.platform.Run(ctx, s.Hooks(ctx))
}

// Hooks returns the process-level callbacks the platform must deliver.
func (s *LifecycleSupervisor) Hooks(ctx context.Context) port.AppHooks {
	return port.AppHooks{
		OnReady:           func() { s.handleAppReady(ctx) },
		OnActivate:        func() { s.handleAppActivate(ctx) },
		OnWindowAllClosed: func() { s.handleAllWindowsClosed(ctx) },
	}
}

func (s *LifecycleSupervisor) handleAppReady(ctx context.Context) {
	if err := s.CreateWindow(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to create window")
		s.platform.Quit()
	}
}

func (s *LifecycleSupervisor) handleAppActivate(ctx context.Context) {
	if s.session != nil {
		return
	}
	if err := s.CreateWindow(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to recreate window on activate")
	}
}

func (s *LifecycleSupervisor) handleAllWindowsClosed(ctx context.Context) {
	if StaysResident(s.platform.OS()) {
		logging.FromContext(ctx).Info().Str("os", s.platform.OS()).Msg("last window closed, staying resident")
		return
	}
	logging.FromContext(ctx).Info().Msg("last window closed, quitting")
	s.platform.Quit()
}

// StaysResident reports whether the process keeps running after its last
// window closes on goos.
func StaysResident(goos string) bool {
	return goos == "darwin"
}

// CreateWindow builds a window session: a hidden window, one surface per
// view with its interceptor attached, and the startup gate.
func (s *LifecycleSupervisor) CreateWindow(ctx context.Context) error {
	if s.session != nil {
		return ErrWindowExists
	}
	log := logging.FromContext(ctx)
	trace := logging.NewStartupTrace(log)

	window, err := s.platform.NewWindow(ctx, s.cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	trace.Mark("window_created")

	if s.cfg.TestMode {
		log.Info().Str("url", s.cfg.PlaceholderURL).Msg("test mode: loading window placeholder")
		if err := window.LoadPlaceholder(ctx, s.cfg.PlaceholderURL); err != nil {
			log.Warn().Err(err).Msg("failed to load window placeholder")
		}
	}

	registry := NewSurfaceRegistry(s.platform, s.cfg.Views, s.cfg.BaseURL, s.recorder)
	state := NewRouterState(registry)
	sess := &windowSession{
		window:   window,
		state:    state,
		registry: registry,
		controller: NewActivationController(window, state, s.cfg.Views, ActivationOptions{
			Inspector:         s.cfg.Inspector,
			ResizeAllSurfaces: s.cfg.ResizeAllSurfaces,
		}, s.recorder),
		gate:   &startupGate{phase: GateLoading, trace: trace},
		detach: make(map[entity.ViewID][]func()),
	}
	s.session = sess

	registry.OnSurfaceCreated(func(ctx context.Context, view entity.ViewID, surface port.Surface) {
		interceptor := NewNavigationInterceptor(view, s.cfg.Routes, s.cfg.BaseURL, sess.controller, s.recorder)
		for _, fn := range sess.detach[view] {
			fn()
		}
		sess.detach[view] = []func(){
			interceptor.Attach(ctx, surface),
			surface.Subscribe(func(ev port.SurfaceEvent) { s.observe(ctx, sess, view, ev) }),
		}
	})

	sess.gate.timer = s.platform.AfterFunc(s.cfg.ReadyTimeout, func() { s.handleReadyTimeout(ctx, sess) })

	for _, view := range s.cfg.Views.IDs() {
		viewCtx := logging.WithView(ctx, string(view))
		if _, err := registry.CreateSurface(viewCtx, view); err != nil {
			if errors.Is(err, ErrSurfaceExists) || errors.Is(err, ErrUnknownView) {
				s.closeSession(ctx, sess)
				return err
			}
			log.Error().Err(err).Str("view", string(view)).Msg("surface creation failed, continuing")
		}
	}
	trace.Mark("surfaces_created")

	if bounds, err := window.ContentBounds(); err == nil {
		for _, e := range registry.All() {
			if err := e.Surface.SetBounds(bounds); err != nil {
				log.Debug().Err(err).Str("view", string(e.View)).Msg("initial bounds not applied")
			}
		}
		log.Debug().Str("bounds", bounds.String()).Msg("initial bounds applied to all surfaces")
	} else {
		log.Debug().Err(err).Msg("window bounds not available during init")
	}

	sess.resize = mainloop.NewCoalescer(s.platform.Post, func(_ string, bounds entity.Bounds) {
		if s.session == sess {
			sess.controller.SyncGeometry(ctx, bounds)
		}
	})
	window.OnResize(func(bounds entity.Bounds) { sess.resize.Submit(resizeKey, bounds) })
	window.OnClosed(func() { s.handleWindowClosed(ctx, sess) })

	return nil
}

// observe routes the supervisor-relevant surface events.
func (s *LifecycleSupervisor) observe(ctx context.Context, sess *windowSession, view entity.ViewID, ev port.SurfaceEvent) {
	if s.session != sess {
		return
	}
	switch ev.Type {
	case port.EventLoadFinished:
		if view == s.cfg.DefaultView {
			s.signalReady(ctx, sess, SignalLoadFinished)
		}
	case port.EventNavigatedInPage:
		if view == s.cfg.DefaultView && s.cfg.ReadyOnInPageNavigation {
			s.signalReady(ctx, sess, SignalInPageNavigation)
		}
	case port.EventCrashed:
		s.handleCrash(ctx, sess, view)
	}
}

func (s *LifecycleSupervisor) signalReady(ctx context.Context, sess *windowSession, signal ReadinessSignal) {
	log := logging.FromContext(ctx)
	g := sess.gate

	switch g.phase {
	case GateLoading:
		g.phase = GateReady
		g.stopTimer()
		g.trace.Mark("default_ready")
		log.Info().
			Str("view", string(s.cfg.DefaultView)).
			Str("signal", signal.String()).
			Msg("default view ready")
		if err := sess.controller.Activate(ctx, s.cfg.DefaultView); err != nil {
			log.Error().Err(err).Msg("initial activation failed")
		}
		s.reveal(ctx, sess)
	case GateShown:
		if !g.degraded {
			return
		}
		g.degraded = false
		if _, ok := sess.state.ActiveView(); ok {
			return
		}
		log.Info().
			Str("view", string(s.cfg.DefaultView)).
			Str("signal", signal.String()).
			Msg("default view ready after timeout, activating")
		if err := sess.controller.Activate(ctx, s.cfg.DefaultView); err != nil {
			log.Error().Err(err).Msg("deferred initial activation failed")
		}
	}
}

func (s *LifecycleSupervisor) handleReadyTimeout(ctx context.Context, sess *windowSession) {
	if s.session != sess || sess.gate.phase != GateLoading {
		return
	}
	g := sess.gate
	g.timer = nil
	g.phase = GateTimedOut
	g.trace.Mark("ready_timeout")

	logging.FromContext(ctx).Warn().
		Str("event", string(entity.EventStartupTimeout)).
		Str("view", string(s.cfg.DefaultView)).
		Dur("timeout", s.cfg.ReadyTimeout).
		Msg("default view not ready in time, showing window anyway")
	s.recorder.record(ctx, entity.LifecycleEvent{
		Kind:   entity.EventStartupTimeout,
		View:   s.cfg.DefaultView,
		Detail: s.cfg.ReadyTimeout.String(),
	})

	s.reveal(ctx, sess)
	g.degraded = true
}

func (s *LifecycleSupervisor) reveal(ctx context.Context, sess *windowSession) {
	log := logging.FromContext(ctx)
	if sess.window.IsDestroyed() {
		log.Warn().Msg("window destroyed before reveal")
		return
	}
	if err := sess.window.Show(); err != nil {
		log.Error().Err(err).Msg("failed to show window")
	}
	sess.gate.phase = GateShown
	sess.gate.trace.Finish()

	log.Info().Str("event", string(entity.EventWindowShown)).Msg("window displayed")
	s.recorder.record(ctx, entity.LifecycleEvent{Kind: entity.EventWindowShown, View: s.cfg.DefaultView})
}

// handleCrash applies the crash policy. Recreation is posted so it runs
// after the crashed surface finished dispatching its event.
func (s *LifecycleSupervisor) handleCrash(ctx context.Context, sess *windowSession, view entity.ViewID) {
	if s.cfg.CrashPolicy != entity.CrashPolicyRecreate {
		return
	}
	s.platform.Post(func() {
		if s.session != sess {
			return
		}
		log := logging.FromContext(ctx)
		if _, err := sess.registry.Recreate(ctx, view); err != nil {
			log.Error().Err(err).Str("view", string(view)).Msg("failed to recreate crashed surface")
			return
		}
		if active, ok := sess.state.ActiveView(); ok && active == view {
			if err := sess.controller.Activate(ctx, view); err != nil {
				log.Error().Err(err).Str("view", string(view)).Msg("failed to reactivate recreated surface")
			}
		}
	})
}

func (s *LifecycleSupervisor) handleWindowClosed(ctx context.Context, sess *windowSession) {
	if s.session != sess {
		return
	}
	s.closeSession(ctx, sess)
	logging.FromContext(ctx).Info().Str("event", string(entity.EventWindowClosed)).Msg("window closed")
	s.recorder.record(ctx, entity.LifecycleEvent{Kind: entity.EventWindowClosed})
}

func (s *LifecycleSupervisor) closeSession(_ context.Context, sess *windowSession) {
	sess.teardown()
	if s.session == sess {
		s.session = nil
	}
}

// Activate switches the current window to view (user-driven switch).
func (s *LifecycleSupervisor) Activate(ctx context.Context, view entity.ViewID) error {
	if s.session == nil {
		return ErrNoWindow
	}
	return s.session.controller.Activate(ctx, view)
}

// SetInspectorEnabled toggles the inspector for later activations.
func (s *LifecycleSupervisor) SetInspectorEnabled(enabled bool) {
	s.cfg.Inspector = enabled
	if s.session != nil {
		s.session.controller.SetInspectorEnabled(enabled)
	}
}

// ActiveView returns the current window's active view.
func (s *LifecycleSupervisor) ActiveView() (entity.ViewID, bool) {
	if s.session == nil {
		return "", false
	}
	return s.session.state.ActiveView()
}

// Registry returns the current window's surface registry, or nil.
func (s *LifecycleSupervisor) Registry() *SurfaceRegistry {
	if s.session == nil {
		return nil
	}
	return s.session.registry
}

// Window returns the current host window, or nil.
func (s *LifecycleSupervisor) Window() port.HostWindow {
	if s.session == nil {
		return nil
	}
	return s.session.window
}

// GatePhase returns the startup gate phase of the current window.
func (s *LifecycleSupervisor) GatePhase() (GatePhase, bool) {
	if s.session == nil {
		return GateLoading, false
	}
	return s.session.gate.phase, true
}
