package port

import (
	"context"

	"github.com/bnema/switchboard/internal/domain/entity"
)

// WindowOptions configures a new host window.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
}

// HostWindow is the top-level window that displays one surface at a time.
// All methods must be called on the control thread.
type HostWindow interface {
	// ContentBounds returns the current content area.
	ContentBounds() (entity.Bounds, error)

	// SetContent attaches s as the only visible content, detaching (not
	// destroying) whatever was attached before.
	SetContent(s Surface) error

	// Content returns the attached surface, or nil.
	Content() Surface

	// SetTitle updates the window title.
	SetTitle(title string) error

	// Show reveals the window.
	Show() error

	// IsVisible reports whether the window has been revealed.
	IsVisible() bool

	// IsDestroyed reports whether the window was closed.
	IsDestroyed() bool

	// LoadPlaceholder loads url into the window's own content slot so an
	// external driver has an attach point before surfaces are ready.
	LoadPlaceholder(ctx context.Context, url string) error

	// OnResize registers a handler for content-area size changes.
	OnResize(handler func(entity.Bounds))

	// OnClosed registers a handler invoked once when the window closes.
	OnClosed(handler func())
}

// AppHooks are the process-level lifecycle callbacks a platform delivers.
type AppHooks struct {
	// OnReady fires once when the platform can create windows.
	OnReady func()
	// OnActivate fires when the user reactivates the application (dock click).
	OnActivate func()
	// OnWindowAllClosed fires after the last window closed.
	OnWindowAllClosed func()
}

// Platform is the windowing host.
type Platform interface {
	MainLoop
	SurfaceFactory

	// OS returns the platform name in runtime.GOOS form.
	OS() string

	// NewWindow creates a hidden window.
	NewWindow(ctx context.Context, opts WindowOptions) (HostWindow, error)

	// Run blocks, delivering hooks on the control thread until Quit is
	// called or ctx is done.
	Run(ctx context.Context, hooks AppHooks) error

	// Quit stops Run.
	Quit()
}
