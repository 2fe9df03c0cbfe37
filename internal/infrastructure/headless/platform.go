// Package headless is an in-process host for the router: windows and
// surfaces without a display, driven by mainloop.Loop. Content loads are
// real HTTP requests so the startup gate can be exercised against a dev
// server or an httptest server.
package headless

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
	"github.com/bnema/switchboard/internal/ui/mainloop"
)

const defaultRequestTimeout = 30 * time.Second

// ErrStopped is returned by Do when the loop is no longer running.
var ErrStopped = errors.New("headless platform stopped")

// Option configures a Platform.
type Option func(*Platform)

// WithHTTPClient sets the client used for surface loads.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Platform) { p.client = c }
}

// WithOS overrides the reported platform name.
func WithOS(goos string) Option {
	return func(p *Platform) { p.goos = goos }
}

// Platform implements port.Platform without a display.
type Platform struct {
	*mainloop.Loop

	client *http.Client
	goos   string
	hooks  port.AppHooks

	// mu guards the registries below; they are read by tooling from other
	// goroutines through Do, and written on the loop.
	mu       sync.Mutex
	windows  []*Window
	surfaces []*Surface
}

var _ port.Platform = (*Platform)(nil)

// NewPlatform creates a platform with an idle loop.
func NewPlatform(opts ...Option) *Platform {
	p := &Platform{
		Loop:   mainloop.NewLoop(),
		client: &http.Client{Timeout: defaultRequestTimeout},
		goos:   runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OS returns the reported platform name.
func (p *Platform) OS() string { return p.goos }

// NewWindow creates a hidden window.
func (p *Platform) NewWindow(ctx context.Context, opts port.WindowOptions) (port.HostWindow, error) {
	w := newWindow(p, opts)
	p.mu.Lock()
	p.windows = append(p.windows, w)
	p.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("headless window created")
	return w, nil
}

// NewSurface creates a surface for view.
func (p *Platform) NewSurface(_ context.Context, view entity.ViewID) (port.Surface, error) {
	s := newSurface(p, view)
	p.mu.Lock()
	p.surfaces = append(p.surfaces, s)
	p.mu.Unlock()
	return s, nil
}

// Run delivers OnReady and then runs the loop until Quit or ctx is done.
func (p *Platform) Run(ctx context.Context, hooks port.AppHooks) error {
	p.hooks = hooks
	if hooks.OnReady != nil {
		p.Post(hooks.OnReady)
	}
	err := p.Loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Quit stops the loop.
func (p *Platform) Quit() {
	p.Stop()
}

// Activate simulates the user re-activating the application.
func (p *Platform) Activate() {
	p.Post(func() {
		if p.hooks.OnActivate != nil {
			p.hooks.OnActivate()
		}
	})
}

// Do runs fn on the loop and waits for it to finish.
func (p *Platform) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	p.Post(func() {
		defer close(ran)
		fn()
	})
	select {
	case <-ran:
		return nil
	case <-p.Done():
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Windows returns every window created so far, oldest first.
func (p *Platform) Windows() []*Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Window(nil), p.windows...)
}

// Surfaces returns the live surfaces for view, oldest first.
func (p *Platform) Surfaces(view entity.ViewID) []*Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Surface
	for _, s := range p.surfaces {
		if s.view == view && !s.destroyed {
			out = append(out, s)
		}
	}
	return out
}

// Surface returns the newest live surface for view, or nil.
func (p *Platform) Surface(view entity.ViewID) *Surface {
	list := p.Surfaces(view)
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

func (p *Platform) windowClosed() {
	p.mu.Lock()
	open := 0
	for _, w := range p.windows {
		if !w.destroyed {
			open++
		}
	}
	p.mu.Unlock()

	if open == 0 && p.hooks.OnWindowAllClosed != nil {
		p.hooks.OnWindowAllClosed()
	}
}
