package entity

import "time"

// LifecycleEventKind names a lifecycle transition. The values double as the
// `event` field of the structured log line emitted for the transition.
type LifecycleEventKind string

const (
	EventSurfaceCreated        LifecycleEventKind = "surface_created"
	EventSurfaceRecreated      LifecycleEventKind = "surface_recreated"
	EventLoadFinished          LifecycleEventKind = "load_finished"
	EventLoadFailed            LifecycleEventKind = "load_failed"
	EventSurfaceCrashed        LifecycleEventKind = "surface_crashed"
	EventNavigationIntercepted LifecycleEventKind = "navigation_intercepted"
	EventActivation            LifecycleEventKind = "activation"
	EventStartupTimeout        LifecycleEventKind = "startup_timeout"
	EventWindowShown           LifecycleEventKind = "window_shown"
	EventWindowClosed          LifecycleEventKind = "window_closed"
)

// LifecycleEvent is one journaled transition.
type LifecycleEvent struct {
	ID        int64
	SessionID string
	Kind      LifecycleEventKind
	View      ViewID
	Target    ViewID
	URL       string
	Detail    string
	At        time.Time
}

// RunSummary aggregates the journaled events of one run.
type RunSummary struct {
	SessionID string
	First     time.Time
	Last      time.Time
	Events    int
	Failures  int
	Crashes   int
	Redirects int
	TimedOut  bool
}
