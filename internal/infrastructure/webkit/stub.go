//go:build !webkit_cgo

package webkit

import (
	"context"

	"github.com/bnema/switchboard/internal/application/port"
)

// NewPlatform reports ErrNativeUnavailable in builds without the
// webkit_cgo tag.
func NewPlatform(Options) (port.Platform, error) {
	return nil, ErrNativeUnavailable
}

// Available reports whether the native backend is compiled in.
func Available() bool { return false }

// InstallGLibLogHandler is a no-op without the native backend.
func InstallGLibLogHandler(context.Context) {}
