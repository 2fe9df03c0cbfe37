package coordinator

import (
	"context"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/domain/route"
	"github.com/bnema/switchboard/internal/logging"
)

// Activator switches the window to a view.
type Activator interface {
	Activate(ctx context.Context, view entity.ViewID) error
}

// NavigationDecision is the outcome of intercepting one navigation.
type NavigationDecision int

const (
	// DecisionAllow lets a navigation with no matching route proceed.
	DecisionAllow NavigationDecision = iota
	// DecisionAllowSameView lets navigation inside the surface's own view proceed.
	DecisionAllowSameView
	// DecisionRedirect cancelled the navigation and activated another view.
	DecisionRedirect
)

func (d NavigationDecision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionAllowSameView:
		return "allow-same-view"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// NavigationInterceptor watches one surface's outgoing navigations and turns
// cross-view ones into activations.
type NavigationInterceptor struct {
	view      entity.ViewID
	routes    *route.Table
	baseURL   string
	activator Activator
	recorder  *eventRecorder
}

// NewNavigationInterceptor creates the interceptor for the surface of view.
func NewNavigationInterceptor(
	view entity.ViewID,
	routes *route.Table,
	baseURL string,
	activator Activator,
	recorder *eventRecorder,
) *NavigationInterceptor {
	return &NavigationInterceptor{
		view:      view,
		routes:    routes,
		baseURL:   baseURL,
		activator: activator,
		recorder:  recorder,
	}
}

// Attach subscribes the interceptor to surface. The returned func detaches it.
func (i *NavigationInterceptor) Attach(ctx context.Context, surface port.Surface) func() {
	return surface.Subscribe(func(ev port.SurfaceEvent) {
		if ev.Type == port.EventWillNavigate && ev.Navigation != nil {
			i.Intercept(ctx, ev.Navigation)
		}
	})
}

// Intercept classifies req. A cross-view request is cancelled before the
// activator runs so the originating surface never commits the foreign page.
func (i *NavigationInterceptor) Intercept(ctx context.Context, req *port.NavigationRequest) NavigationDecision {
	log := logging.FromContext(ctx)

	pathname, target, ok := i.routes.ResolveURL(req.URL, i.baseURL)
	if !ok {
		log.Debug().
			Str("view", string(i.view)).
			Str("url", req.URL).
			Msg("navigation has no route, allowing")
		return DecisionAllow
	}
	if target == i.view {
		log.Debug().
			Str("view", string(i.view)).
			Str("path", pathname).
			Msg("same-view navigation, allowing")
		return DecisionAllowSameView
	}

	req.Cancel()

	log.Info().
		Str("event", string(entity.EventNavigationIntercepted)).
		Str("from", string(i.view)).
		Str("to", string(target)).
		Str("path", pathname).
		Msg("intercepted navigation")
	i.recorder.record(ctx, entity.LifecycleEvent{
		Kind:   entity.EventNavigationIntercepted,
		View:   i.view,
		Target: target,
		URL:    req.URL,
	})

	if err := i.activator.Activate(ctx, target); err != nil {
		log.Error().Err(err).Str("to", string(target)).Msg("activation after interception failed")
	}
	return DecisionRedirect
}
