//go:build webkit_cgo

package webkit

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/logging"
)

// Platform hosts the shell on GTK4 and WebKitGTK. Every callback it emits
// runs on the GTK main thread, which is the router's control thread.
type Platform struct {
	opts    Options
	app     *gtk.Application
	hooks   port.AppHooks
	started bool
	windows int
	current *nativeWindow
}

var _ port.Platform = (*Platform)(nil)

// NewPlatform creates the GTK application. Run must be called from the
// goroutine that owns the main OS thread.
func NewPlatform(opts Options) (port.Platform, error) {
	return &Platform{
		opts: opts,
		app:  gtk.NewApplication(opts.appID(), gio.ApplicationFlagsNone),
	}, nil
}

// Available reports whether the native backend is compiled in.
func Available() bool { return true }

func (p *Platform) OS() string { return runtime.GOOS }

func (p *Platform) Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

func (p *Platform) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &sourceTimer{}
	t.handle = glib.TimeoutAdd(uint(d.Milliseconds()), func() bool {
		if !t.fired {
			t.fired = true
			fn()
		}
		return false
	})
	return t
}

// Run blocks in the GTK main loop until Quit or ctx is done.
func (p *Platform) Run(ctx context.Context, hooks port.AppHooks) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.FromContext(ctx)
	p.hooks = hooks

	p.app.ConnectActivate(func() {
		if !p.started {
			p.started = true
			// The shell decides when to quit, not GTK's window count.
			p.app.Hold()
			if hooks.OnReady != nil {
				hooks.OnReady()
			}
			return
		}
		if hooks.OnActivate != nil {
			hooks.OnActivate()
		}
	})

	stop := context.AfterFunc(ctx, func() { p.Post(p.Quit) })
	defer stop()

	if code := p.app.Run([]string{os.Args[0]}); code != 0 {
		log.Warn().Int("exit_code", code).Msg("gtk application exited with non-zero status")
	}
	return nil
}

func (p *Platform) Quit() {
	if p.started {
		p.app.Release()
	}
	p.app.Quit()
}

func (p *Platform) NewWindow(ctx context.Context, opts port.WindowOptions) (port.HostWindow, error) {
	w := newNativeWindow(p, opts)
	p.windows++
	p.current = w
	logging.FromContext(ctx).Debug().Int("width", opts.Width).Int("height", opts.Height).Msg("native window created")
	return w, nil
}

// NewSurface creates a surface and realizes it in the open window, hidden.
func (p *Platform) NewSurface(_ context.Context, view entity.ViewID) (port.Surface, error) {
	s := newNativeSurface(p, view)
	if p.current != nil && !p.current.destroyed {
		p.current.adopt(s)
	}
	return s, nil
}

func (p *Platform) windowClosed(w *nativeWindow) {
	if p.current == w {
		p.current = nil
	}
	p.windows--
	if p.windows <= 0 && p.hooks.OnWindowAllClosed != nil {
		p.hooks.OnWindowAllClosed()
	}
}

// sourceTimer is only touched on the main thread.
type sourceTimer struct {
	handle glib.SourceHandle
	fired  bool
}

func (t *sourceTimer) Stop() bool {
	if t.fired {
		return false
	}
	t.fired = true
	glib.SourceRemove(t.handle)
	return true
}
