//go:build webkit_cgo

package webkit

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

var errSurfaceDestroyed = errors.New("surface destroyed")

// nativeSurface wraps one WebKitWebView. Each view gets its own web process
// through WebKit's default process model.
type nativeSurface struct {
	platform    *Platform
	viewID      entity.ViewID
	view        *webkit.WebView
	stack       *gtk.Stack
	url         string
	bounds      entity.Bounds
	tracker     loadTracker
	destroyed   bool
	handlers    map[uint64]port.SurfaceHandler
	order       []uint64
	nextHandler uint64
}

func newNativeSurface(p *Platform, view entity.ViewID) *nativeSurface {
	s := &nativeSurface{
		platform: p,
		viewID:   view,
		view:     webkit.NewWebView(),
		handlers: make(map[uint64]port.SurfaceHandler),
	}
	s.view.SetHExpand(true)
	s.view.SetVExpand(true)
	if settings := s.view.Settings(); settings != nil && p.opts.DeveloperExtras {
		settings.SetEnableDeveloperExtras(true)
	}
	s.connect()
	return s
}

func (s *nativeSurface) connect() {
	s.view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, kind webkit.PolicyDecisionType) bool {
		if kind != webkit.PolicyDecisionTypeNavigationAction {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}
		action := nav.NavigationAction()
		if action == nil || action.Request() == nil {
			return false
		}
		req := port.NewNavigationRequest(action.Request().URI(), action.IsUserGesture())
		s.emit(port.SurfaceEvent{Type: port.EventWillNavigate, URL: req.URL, Navigation: req})
		if req.Cancelled() {
			webkit.BasePolicyDecision(decision).Ignore()
			return true
		}
		return false
	})

	s.view.ConnectLoadChanged(func(ev webkit.LoadEvent) {
		switch ev {
		case webkit.LoadStarted:
			s.tracker.started()
			s.emit(port.SurfaceEvent{Type: port.EventLoadStarted, URL: s.view.URI()})
		case webkit.LoadFinished:
			if s.tracker.finished() {
				s.emit(port.SurfaceEvent{Type: port.EventLoadFinished, URL: s.view.URI()})
			}
		}
	})

	s.view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		s.tracker.failed()
		desc := "load failed"
		if err != nil {
			desc = err.Error()
		}
		s.emit(port.SurfaceEvent{
			Type:    port.EventLoadFailed,
			URL:     failingURI,
			Failure: &port.LoadFailure{Description: desc},
		})
		return false
	})

	s.view.Connect("notify::uri", func() {
		uri := s.view.URI()
		if s.tracker.uriChanged(uri) {
			s.url = uri
			s.emit(port.SurfaceEvent{Type: port.EventNavigatedInPage, URL: uri})
		}
	})

	s.view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		s.tracker.failed()
		s.emit(port.SurfaceEvent{
			Type:  port.EventCrashed,
			URL:   s.url,
			Crash: &port.CrashInfo{Reason: terminationReasonString(int(reason))},
		})
	})
}

func (s *nativeSurface) View() entity.ViewID { return s.viewID }

func (s *nativeSurface) Load(ctx context.Context, url string) error {
	if s.destroyed {
		return errSurfaceDestroyed
	}
	if err := validLoadURL(url); err != nil {
		return fmt.Errorf("load %q: %w", url, err)
	}
	s.url = url
	logging.FromContext(ctx).Debug().Str("view", string(s.viewID)).Str("url", url).Msg("webview load")
	s.view.LoadURI(url)
	return nil
}

func (s *nativeSurface) URL() string { return s.url }

// SetBounds records b. GTK sizes the view through the stack, so every
// attached surface already fills the content area.
func (s *nativeSurface) SetBounds(b entity.Bounds) error {
	if s.destroyed {
		return errSurfaceDestroyed
	}
	s.bounds = b
	return nil
}

func (s *nativeSurface) Bounds() entity.Bounds { return s.bounds }

func (s *nativeSurface) OpenInspector() error {
	if s.destroyed {
		return errSurfaceDestroyed
	}
	if settings := s.view.Settings(); settings != nil {
		settings.SetEnableDeveloperExtras(true)
	}
	inspector := s.view.Inspector()
	if inspector == nil {
		return errors.New("inspector unavailable")
	}
	inspector.Show()
	return nil
}

func (s *nativeSurface) Subscribe(handler port.SurfaceHandler) func() {
	id := s.nextHandler
	s.nextHandler++
	s.handlers[id] = handler
	s.order = append(s.order, id)
	return func() {
		delete(s.handlers, id)
		s.order = removeHandlerID(s.order, id)
	}
}

func (s *nativeSurface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.handlers = map[uint64]port.SurfaceHandler{}
	s.order = nil
	if s.stack != nil {
		s.stack.Remove(s.view)
		s.stack = nil
	}
	s.view.TryClose()
}

func (s *nativeSurface) emit(ev port.SurfaceEvent) {
	for _, id := range append([]uint64(nil), s.order...) {
		if h, ok := s.handlers[id]; ok {
			h(ev)
		}
	}
}
