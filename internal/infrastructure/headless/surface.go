package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// ErrSurfaceDestroyed is returned by operations on a destroyed surface.
var ErrSurfaceDestroyed = errors.New("surface destroyed")

// maxDrainBytes bounds how much of a response body is read before closing.
const maxDrainBytes = 1 << 20

// Surface is a headless port.Surface. Methods must run on the loop unless
// noted.
type Surface struct {
	platform   *Platform
	view       entity.ViewID
	url        string
	bounds     entity.Bounds
	inspected  bool
	destroyed  bool
	generation uint64
	cancelLoad context.CancelFunc

	handlers    map[uint64]port.SurfaceHandler
	nextHandler uint64
}

var _ port.Surface = (*Surface)(nil)

func newSurface(p *Platform, view entity.ViewID) *Surface {
	return &Surface{
		platform: p,
		view:     view,
		handlers: make(map[uint64]port.SurfaceHandler),
	}
}

func (s *Surface) View() entity.ViewID { return s.view }

func (s *Surface) URL() string { return s.url }

func (s *Surface) Bounds() entity.Bounds { return s.bounds }

func (s *Surface) SetBounds(b entity.Bounds) error {
	if s.destroyed {
		return ErrSurfaceDestroyed
	}
	s.bounds = b
	return nil
}

func (s *Surface) OpenInspector() error {
	if s.destroyed {
		return ErrSurfaceDestroyed
	}
	s.inspected = true
	return nil
}

// InspectorOpen reports whether OpenInspector was called.
func (s *Surface) InspectorOpen() bool { return s.inspected }

func (s *Surface) Subscribe(handler port.SurfaceHandler) func() {
	id := s.nextHandler
	s.nextHandler++
	s.handlers[id] = handler
	return func() { delete(s.handlers, id) }
}

// Load fetches url in the background. A newer Load supersedes an older one
// still in flight.
func (s *Surface) Load(ctx context.Context, rawURL string) error {
	if s.destroyed {
		return ErrSurfaceDestroyed
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	fetched := false
	switch u.Scheme {
	case "http", "https":
		fetched = true
	case "about", "data":
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
	s.generation++
	gen := s.generation
	s.url = rawURL

	s.platform.Post(func() {
		if s.current(gen) {
			s.emit(port.SurfaceEvent{Type: port.EventLoadStarted, URL: rawURL})
		}
	})

	if !fetched {
		s.platform.Post(func() { s.finishLoad(gen, rawURL, nil) })
		return nil
	}

	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancelLoad = cancel
	log := logging.FromContext(ctx)

	go func() {
		defer cancel()
		failure := s.fetch(loadCtx, rawURL)
		if failure != nil {
			log.Debug().Str("url", rawURL).Int("code", failure.Code).Str("description", failure.Description).Msg("headless load failed")
		}
		s.platform.Post(func() { s.finishLoad(gen, rawURL, failure) })
	}()
	return nil
}

// fetch runs off the loop and must not touch surface state.
func (s *Surface) fetch(ctx context.Context, rawURL string) *port.LoadFailure {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &port.LoadFailure{Description: err.Error()}
	}
	resp, err := s.platform.client.Do(req)
	if err != nil {
		return &port.LoadFailure{Description: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode >= http.StatusBadRequest {
		return &port.LoadFailure{Code: resp.StatusCode, Description: http.StatusText(resp.StatusCode)}
	}
	return nil
}

func (s *Surface) finishLoad(gen uint64, rawURL string, failure *port.LoadFailure) {
	if !s.current(gen) {
		return
	}
	s.cancelLoad = nil
	if failure != nil {
		s.emit(port.SurfaceEvent{Type: port.EventLoadFailed, URL: rawURL, Failure: failure})
		return
	}
	s.emit(port.SurfaceEvent{Type: port.EventLoadFinished, URL: rawURL})
}

func (s *Surface) current(gen uint64) bool {
	return !s.destroyed && s.generation == gen
}

// Navigate simulates the page starting a navigation to rawURL, such as a
// link click. It reports whether a handler cancelled it; otherwise the
// surface loads rawURL.
func (s *Surface) Navigate(ctx context.Context, rawURL string) (cancelled bool, err error) {
	if s.destroyed {
		return false, ErrSurfaceDestroyed
	}
	target := rawURL
	if s.url != "" {
		if base, perr := url.Parse(s.url); perr == nil {
			if ref, rerr := url.Parse(rawURL); rerr == nil {
				target = base.ResolveReference(ref).String()
			}
		}
	}

	req := port.NewNavigationRequest(target, true)
	s.emit(port.SurfaceEvent{Type: port.EventWillNavigate, URL: target, Navigation: req})
	if req.Cancelled() {
		return true, nil
	}
	return false, s.Load(ctx, target)
}

// NavigateInPage simulates a same-document navigation (history.pushState).
func (s *Surface) NavigateInPage(rawURL string) {
	if s.destroyed {
		return
	}
	s.url = rawURL
	s.emit(port.SurfaceEvent{Type: port.EventNavigatedInPage, URL: rawURL})
}

// Crash simulates the renderer process terminating.
func (s *Surface) Crash(reason string) {
	if s.destroyed {
		return
	}
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
	s.generation++
	s.emit(port.SurfaceEvent{Type: port.EventCrashed, URL: s.url, Crash: &port.CrashInfo{Reason: reason}})
}

func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
	s.platform.mu.Lock()
	s.destroyed = true
	s.platform.mu.Unlock()
	s.handlers = map[uint64]port.SurfaceHandler{}
}

// emit delivers ev to the handlers subscribed when emission starts, in
// subscription order. Handlers removed during delivery are skipped.
func (s *Surface) emit(ev port.SurfaceEvent) {
	ids := make([]uint64, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if h, ok := s.handlers[id]; ok {
			h(ev)
		}
	}
}
