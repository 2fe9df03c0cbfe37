package webkit

import (
	"errors"
	"net/url"
)

// DefaultAppID is the GApplication identifier of the shell.
const DefaultAppID = "dev.bnema.switchboard"

// ErrNativeUnavailable is returned when the binary was built without the
// WebKitGTK backend.
var ErrNativeUnavailable = errors.New("webkitgtk backend not compiled in (build with -tags webkit_cgo)")

// Options configures the native platform.
type Options struct {
	AppID string
	// DeveloperExtras enables the inspector on every surface.
	DeveloperExtras bool
}

func (o Options) appID() string {
	if o.AppID == "" {
		return DefaultAppID
	}
	return o.AppID
}

// WebKit's WebKitWebProcessTerminationReason values.
const (
	reasonCrashed = iota
	reasonExceededMemory
	reasonTerminatedByAPI
)

func terminationReasonString(reason int) string {
	switch reason {
	case reasonCrashed:
		return "crashed"
	case reasonExceededMemory:
		return "exceeded_memory"
	case reasonTerminatedByAPI:
		return "terminated_by_api"
	default:
		return "unknown"
	}
}

// loadTracker turns WebKit's load-changed and notify::uri notifications
// into the surface event vocabulary. A URI change outside a load is a
// same-document navigation.
type loadTracker struct {
	loading bool
	uri     string
}

func (t *loadTracker) started() {
	t.loading = true
}

// finished reports whether the finish belongs to a load that did not fail.
func (t *loadTracker) finished() bool {
	was := t.loading
	t.loading = false
	return was
}

func (t *loadTracker) failed() {
	t.loading = false
}

// uriChanged reports whether the change is an in-page navigation.
func (t *loadTracker) uriChanged(uri string) bool {
	prev := t.uri
	t.uri = uri
	if t.loading || uri == "" || prev == "" {
		return false
	}
	return prev != uri
}

// validLoadURL rejects addresses WebKit would silently ignore.
func validLoadURL(raw string) error {
	if raw == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return errors.New("url must be absolute")
	}
	return nil
}

// removeHandlerID drops id from order, keeping the remaining ids in
// subscription order.
func removeHandlerID(order []uint64, id uint64) []uint64 {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
