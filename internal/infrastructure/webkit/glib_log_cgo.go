//go:build webkit_cgo

package webkit

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/switchboard/internal/logging"
)

var glibLogOnce sync.Once

// InstallGLibLogHandler routes GTK, GLib and WebKit messages into the
// context logger. Call it before the application starts.
func InstallGLibLogHandler(ctx context.Context) {
	glibLogOnce.Do(func() {
		logger := *logging.FromContext(logging.WithComponent(ctx, "glib"))
		levels := glib.LogLevelMask
		for _, domain := range glibDomains {
			glib.LogSetHandler(domain, levels, func(domain string, level glib.LogLevelFlags, message string) {
				logGLib(logger, domain, int(level), message)
			})
		}
	})
}
