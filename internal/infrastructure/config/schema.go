package config

import "time"

// Config represents the complete configuration for switchboard. Views is
// ordered: the order decides route precedence and surface creation order.
type Config struct {
	Content  ContentConfig  `mapstructure:"content" yaml:"content" toml:"content" json:"content"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Views    []ViewConfig   `mapstructure:"views" yaml:"views" toml:"views" json:"views"`
	Startup  StartupConfig  `mapstructure:"startup" yaml:"startup" toml:"startup" json:"startup"`
	Surfaces SurfacesConfig `mapstructure:"surfaces" yaml:"surfaces" toml:"surfaces" json:"surfaces"`
	Debug    DebugConfig    `mapstructure:"debug" yaml:"debug" toml:"debug" json:"debug"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Journal  JournalConfig  `mapstructure:"journal" yaml:"journal" toml:"journal" json:"journal"`
}

// ContentConfig holds the content origin settings.
type ContentConfig struct {
	// BaseURL is the origin every view path is appended to.
	// Env: SWITCHBOARD_BASE_URL or WEB_SERVER_URL
	BaseURL string `mapstructure:"base_url" yaml:"base_url" toml:"base_url" json:"base_url"`
	// TestMode loads PlaceholderURL into the window so an external test
	// driver can attach before the views are ready.
	// Env: SWITCHBOARD_TEST_MODE or PLAYWRIGHT_TEST
	TestMode       bool   `mapstructure:"test_mode" yaml:"test_mode" toml:"test_mode" json:"test_mode"`
	PlaceholderURL string `mapstructure:"placeholder_url" yaml:"placeholder_url" toml:"placeholder_url" json:"placeholder_url"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width  int `mapstructure:"width" yaml:"width" toml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height"`
	// ResizeAllSurfaces keeps hidden surfaces sized with the window.
	ResizeAllSurfaces bool `mapstructure:"resize_all_surfaces" yaml:"resize_all_surfaces" toml:"resize_all_surfaces" json:"resize_all_surfaces"`
}

// ViewConfig declares one logical view.
type ViewConfig struct {
	ID         string `mapstructure:"id" yaml:"id" toml:"id" json:"id"`
	Title      string `mapstructure:"title" yaml:"title" toml:"title" json:"title"`
	PathPrefix string `mapstructure:"path_prefix" yaml:"path_prefix" toml:"path_prefix" json:"path_prefix"`
}

// StartupConfig controls the startup readiness gate.
type StartupConfig struct {
	DefaultView string `mapstructure:"default_view" yaml:"default_view" toml:"default_view" json:"default_view"`
	// ReadyTimeout is how long the window stays hidden waiting for the
	// default view (e.g. "60s").
	ReadyTimeout time.Duration `mapstructure:"ready_timeout" yaml:"ready_timeout" toml:"ready_timeout" json:"ready_timeout"`
	// ReadyOnInPageNavigation treats a same-document navigation of the
	// default view as readiness.
	ReadyOnInPageNavigation bool `mapstructure:"ready_on_in_page_navigation" yaml:"ready_on_in_page_navigation" toml:"ready_on_in_page_navigation" json:"ready_on_in_page_navigation"`
}

// SurfacesConfig controls surface failure handling.
type SurfacesConfig struct {
	// CrashPolicy is "keep" or "recreate".
	CrashPolicy string `mapstructure:"crash_policy" yaml:"crash_policy" toml:"crash_policy" json:"crash_policy"`
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	// Inspector opens the web inspector on every activated surface.
	Inspector bool `mapstructure:"inspector" yaml:"inspector" toml:"inspector" json:"inspector"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// File output configuration
	FileEnabled bool   `mapstructure:"file_enabled" yaml:"file_enabled" toml:"file_enabled" json:"file_enabled"`
	LogDir      string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB   int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
}

// JournalConfig holds the lifecycle journal settings.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	// Path of the SQLite database. Empty means the XDG data dir.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// QueueSize bounds pending writes; events beyond it are dropped.
	QueueSize int `mapstructure:"queue_size" yaml:"queue_size" toml:"queue_size" json:"queue_size"`
}
