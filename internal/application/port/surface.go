// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the windowing and rendering host, allowing the router to
// remain independent of specific implementations (WebKitGTK, headless, etc.).
package port

import (
	"context"

	"github.com/bnema/switchboard/internal/domain/entity"
)

// SurfaceEventType identifies the kind of event a surface emits.
type SurfaceEventType int

const (
	// EventWillNavigate is emitted before a navigation commits. Handlers may
	// cancel it through the attached NavigationRequest.
	EventWillNavigate SurfaceEventType = iota
	// EventLoadStarted indicates a content load has begun.
	EventLoadStarted
	// EventLoadFinished indicates the content finished loading.
	EventLoadFinished
	// EventLoadFailed indicates the load ended with a network or HTTP error.
	EventLoadFailed
	// EventNavigatedInPage indicates a same-document navigation (client-side routing).
	EventNavigatedInPage
	// EventCrashed indicates the renderer backing the surface terminated.
	EventCrashed
)

// String returns a human-readable representation of the event type.
func (t SurfaceEventType) String() string {
	switch t {
	case EventWillNavigate:
		return "will-navigate"
	case EventLoadStarted:
		return "load-started"
	case EventLoadFinished:
		return "load-finished"
	case EventLoadFailed:
		return "load-failed"
	case EventNavigatedInPage:
		return "navigated-in-page"
	case EventCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// NavigationRequest is the payload of EventWillNavigate. The host consults
// Cancelled after every handler has returned and before committing.
type NavigationRequest struct {
	URL           string
	IsUserGesture bool

	cancelled bool
}

// NewNavigationRequest creates a request for url.
func NewNavigationRequest(url string, userGesture bool) *NavigationRequest {
	return &NavigationRequest{URL: url, IsUserGesture: userGesture}
}

// Cancel suppresses the navigation.
func (r *NavigationRequest) Cancel() {
	r.cancelled = true
}

// Cancelled reports whether a handler suppressed the navigation.
func (r *NavigationRequest) Cancelled() bool {
	return r.cancelled
}

// LoadFailure is the payload of EventLoadFailed.
type LoadFailure struct {
	// Code is the HTTP status or engine error code, 0 when unknown.
	Code        int
	Description string
}

// CrashInfo is the payload of EventCrashed.
type CrashInfo struct {
	Reason string
}

// SurfaceEvent is a typed event delivered on the control thread.
// Exactly one payload pointer is set, matching Type; the others are nil.
type SurfaceEvent struct {
	Type       SurfaceEventType
	URL        string
	Navigation *NavigationRequest
	Failure    *LoadFailure
	Crash      *CrashInfo
}

// SurfaceHandler receives surface events. It runs on the control thread and
// must not block.
type SurfaceHandler func(SurfaceEvent)

// Surface is an isolated rendering context bound to one logical view.
type Surface interface {
	// View returns the logical view this surface renders.
	View() entity.ViewID

	// Load starts loading url asynchronously. The returned error covers only
	// immediate rejection; the outcome arrives as EventLoadFinished or
	// EventLoadFailed.
	Load(ctx context.Context, url string) error

	// URL returns the address last requested.
	URL() string

	// SetBounds positions the surface in window content coordinates.
	SetBounds(bounds entity.Bounds) error

	// Bounds returns the last applied bounds.
	Bounds() entity.Bounds

	// OpenInspector attaches the developer inspector to the surface.
	OpenInspector() error

	// Subscribe registers handler for every event the surface emits.
	// Handlers run in registration order. The returned func unsubscribes.
	Subscribe(handler SurfaceHandler) (unsubscribe func())

	// Destroy releases the surface. Only used when replacing a crashed surface.
	Destroy()
}

// SurfaceFactory creates surfaces for logical views.
type SurfaceFactory interface {
	NewSurface(ctx context.Context, view entity.ViewID) (Surface, error)
}
