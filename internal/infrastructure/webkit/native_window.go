//go:build webkit_cgo

package webkit

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/domain/entity"
)

var errWindowDestroyed = errors.New("window destroyed")

const (
	placeholderPage = "placeholder"
	blankPage       = "blank"
)

// nativeWindow stacks every surface created while it is open in a
// gtk.Stack. Attaching a surface makes it the visible child; the others stay
// in the stack, hidden, so their pages keep running. Until the first
// attachment the stack shows an empty page.
type nativeWindow struct {
	platform    *Platform
	win         *gtk.ApplicationWindow
	stack       *gtk.Stack
	content     port.Surface
	placeholder *nativeSurface
	destroyed   bool
	width       int
	height      int
	onResize    []func(entity.Bounds)
	onClosed    []func()
}

func newNativeWindow(p *Platform, opts port.WindowOptions) *nativeWindow {
	w := &nativeWindow{
		platform: p,
		win:      gtk.NewApplicationWindow(p.app),
		stack:    gtk.NewStack(),
		width:    opts.Width,
		height:   opts.Height,
	}
	w.win.SetDefaultSize(opts.Width, opts.Height)
	if opts.Title != "" {
		w.win.SetTitle(opts.Title)
	}
	w.stack.SetHExpand(true)
	w.stack.SetVExpand(true)
	w.stack.AddNamed(gtk.NewBox(gtk.OrientationVertical, 0), blankPage)
	w.win.SetChild(w.stack)

	notify := func() { w.sizeChanged() }
	w.win.Connect("notify::default-width", notify)
	w.win.Connect("notify::default-height", notify)
	w.win.ConnectCloseRequest(func() bool {
		w.close()
		return false
	})
	return w
}

func (w *nativeWindow) sizeChanged() {
	width, height := w.win.DefaultSize()
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	b := entity.ContentBounds(width, height)
	for _, h := range w.onResize {
		h(b)
	}
}

func (w *nativeWindow) close() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, h := range w.onClosed {
		h()
	}
	w.onClosed = nil
	w.onResize = nil
	w.platform.windowClosed(w)
}

func (w *nativeWindow) ContentBounds() (entity.Bounds, error) {
	if w.destroyed {
		return entity.Bounds{}, errWindowDestroyed
	}
	return entity.ContentBounds(w.width, w.height), nil
}

func (w *nativeWindow) SetContent(s port.Surface) error {
	if w.destroyed {
		return errWindowDestroyed
	}
	ns, ok := s.(*nativeSurface)
	if !ok {
		return errors.New("surface was not created by the webkit platform")
	}
	w.adopt(ns)
	w.stack.SetVisibleChild(ns.view)
	w.content = s
	return nil
}

// adopt adds ns to the stack without showing it. Surfaces are added
// unnamed: a recreated surface coexists briefly with the one it replaces.
func (w *nativeWindow) adopt(ns *nativeSurface) {
	if ns.stack != nil {
		return
	}
	w.stack.AddChild(ns.view)
	ns.stack = w.stack
}

func (w *nativeWindow) Content() port.Surface { return w.content }

func (w *nativeWindow) SetTitle(title string) error {
	if w.destroyed {
		return errWindowDestroyed
	}
	w.win.SetTitle(title)
	return nil
}

func (w *nativeWindow) Show() error {
	if w.destroyed {
		return errWindowDestroyed
	}
	w.win.Present()
	return nil
}

func (w *nativeWindow) IsVisible() bool { return !w.destroyed && w.win.IsVisible() }

func (w *nativeWindow) IsDestroyed() bool { return w.destroyed }

func (w *nativeWindow) LoadPlaceholder(ctx context.Context, url string) error {
	if w.destroyed {
		return errWindowDestroyed
	}
	if w.placeholder == nil {
		w.placeholder = newNativeSurface(w.platform, placeholderPage)
		w.stack.AddNamed(w.placeholder.view, placeholderPage)
		w.placeholder.stack = w.stack
	}
	if w.content == nil {
		w.stack.SetVisibleChild(w.placeholder.view)
	}
	return w.placeholder.Load(ctx, url)
}

func (w *nativeWindow) OnResize(handler func(entity.Bounds)) {
	w.onResize = append(w.onResize, handler)
}

func (w *nativeWindow) OnClosed(handler func()) {
	w.onClosed = append(w.onClosed, handler)
}
