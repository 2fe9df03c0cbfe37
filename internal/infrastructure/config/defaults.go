package config

import (
	"time"

	"github.com/bnema/switchboard/internal/domain/entity"
)

// Default configuration constants
const (
	defaultBaseURL        = "http://localhost:5173"
	defaultPlaceholderURL = "about:blank"

	defaultWindowWidth  = 1200 // px
	defaultWindowHeight = 800  // px

	defaultView         = string(entity.ViewMail)
	defaultReadyTimeout = 60 * time.Second

	defaultCrashPolicy = "keep"

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	defaultJournalQueueSize = 256
)

// DefaultViews returns the built-in mail, calendar and account views.
func DefaultViews() []ViewConfig {
	builtin := entity.DefaultViews()
	views := make([]ViewConfig, 0, len(builtin))
	for _, v := range builtin {
		views = append(views, ViewConfig{ID: string(v.ID), Title: v.Title, PathPrefix: v.PathPrefix})
	}
	return views
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			BaseURL:        defaultBaseURL,
			PlaceholderURL: defaultPlaceholderURL,
		},
		Window: WindowConfig{
			Width:             defaultWindowWidth,
			Height:            defaultWindowHeight,
			ResizeAllSurfaces: true,
		},
		Views: DefaultViews(),
		Startup: StartupConfig{
			DefaultView:             defaultView,
			ReadyTimeout:            defaultReadyTimeout,
			ReadyOnInPageNavigation: true,
		},
		Surfaces: SurfacesConfig{
			CrashPolicy: defaultCrashPolicy,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Journal: JournalConfig{
			Enabled:   true,
			QueueSize: defaultJournalQueueSize,
		},
	}
}
