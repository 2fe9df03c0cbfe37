package headless

import (
	"context"
	"errors"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
)

// ErrWindowDestroyed is returned by operations on a closed window.
var ErrWindowDestroyed = errors.New("window destroyed")

// Window is a headless port.HostWindow. All methods must run on the loop.
type Window struct {
	platform    *Platform
	bounds      entity.Bounds
	title       string
	content     port.Surface
	visible     bool
	destroyed   bool
	placeholder string
	onResize    []func(entity.Bounds)
	onClosed    []func()
}

var _ port.HostWindow = (*Window)(nil)

func newWindow(p *Platform, opts port.WindowOptions) *Window {
	return &Window{
		platform: p,
		bounds:   entity.ContentBounds(opts.Width, opts.Height),
		title:    opts.Title,
	}
}

func (w *Window) ContentBounds() (entity.Bounds, error) {
	if w.destroyed {
		return entity.Bounds{}, ErrWindowDestroyed
	}
	return w.bounds, nil
}

func (w *Window) SetContent(s port.Surface) error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.content = s
	return nil
}

func (w *Window) Content() port.Surface { return w.content }

func (w *Window) SetTitle(title string) error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.title = title
	return nil
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

func (w *Window) Show() error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.visible = true
	return nil
}

func (w *Window) IsVisible() bool { return w.visible }

func (w *Window) IsDestroyed() bool { return w.destroyed }

func (w *Window) LoadPlaceholder(_ context.Context, url string) error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.placeholder = url
	return nil
}

// Placeholder returns the URL loaded into the window's own content slot.
func (w *Window) Placeholder() string { return w.placeholder }

func (w *Window) OnResize(handler func(entity.Bounds)) {
	w.onResize = append(w.onResize, handler)
}

func (w *Window) OnClosed(handler func()) {
	w.onClosed = append(w.onClosed, handler)
}

// Resize simulates the user resizing the window to width x height.
func (w *Window) Resize(width, height int) {
	if w.destroyed {
		return
	}
	w.bounds = entity.ContentBounds(width, height)
	for _, h := range w.onResize {
		h(w.bounds)
	}
}

// Close simulates the user closing the window. Close handlers run first,
// then the platform reports the last window closing.
func (w *Window) Close() {
	if w.destroyed {
		return
	}
	w.platform.mu.Lock()
	w.destroyed = true
	w.platform.mu.Unlock()
	w.visible = false

	for _, h := range w.onClosed {
		h()
	}
	w.onClosed = nil
	w.onResize = nil
	w.platform.windowClosed()
}
