package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks c the same way Load does, for configs altered after
// loading (command-line overrides).
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateContent(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateViews(config)...)
	validationErrors = append(validationErrors, validateStartup(config)...)
	validationErrors = append(validationErrors, validateSurfaces(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateContent(config *Config) []string {
	var validationErrors []string
	u, err := url.Parse(config.Content.BaseURL)
	switch {
	case config.Content.BaseURL == "":
		validationErrors = append(validationErrors, "content.base_url cannot be empty")
	case err != nil:
		validationErrors = append(validationErrors, fmt.Sprintf("content.base_url is not a valid URL: %v", err))
	case !u.IsAbs() || (u.Host == "" && u.Scheme != "file"):
		validationErrors = append(validationErrors, fmt.Sprintf(
			"content.base_url must be an absolute URL with a host (got: %s)", config.Content.BaseURL,
		))
	}
	if config.Content.TestMode && config.Content.PlaceholderURL == "" {
		validationErrors = append(validationErrors, "content.placeholder_url cannot be empty when content.test_mode is set")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width <= 0 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateViews(config *Config) []string {
	if len(config.Views) == 0 {
		return []string{"views must declare at least one view"}
	}

	var validationErrors []string
	seen := make(map[string]bool, len(config.Views))
	for i, v := range config.Views {
		if v.ID == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("views[%d].id cannot be empty", i))
			continue
		}
		if seen[v.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("views[%d].id %q is declared twice", i, v.ID))
		}
		seen[v.ID] = true
		if !strings.HasPrefix(v.PathPrefix, "/") {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"views[%d].path_prefix must start with '/' (got: %q)", i, v.PathPrefix,
			))
		}
	}
	if len(validationErrors) > 0 {
		return validationErrors
	}

	if _, err := config.RouteTable(); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	return validationErrors
}

func validateStartup(config *Config) []string {
	var validationErrors []string
	found := false
	for _, v := range config.Views {
		if v.ID == config.Startup.DefaultView {
			found = true
			break
		}
	}
	if !found {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"startup.default_view %q is not a configured view", config.Startup.DefaultView,
		))
	}
	if config.Startup.ReadyTimeout < time.Second {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"startup.ready_timeout must be at least 1s (got: %s)", config.Startup.ReadyTimeout,
		))
	}
	return validationErrors
}

func validateSurfaces(config *Config) []string {
	switch config.Surfaces.CrashPolicy {
	case "keep", "recreate":
		return nil
	default:
		return []string{fmt.Sprintf(
			"surfaces.crash_policy must be one of: keep, recreate (got: %s)", config.Surfaces.CrashPolicy,
		)}
	}
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.FileEnabled && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1 when file logging is enabled")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateJournal(config *Config) []string {
	if config.Journal.Enabled && config.Journal.QueueSize < 1 {
		return []string{"journal.queue_size must be at least 1 when the journal is enabled"}
	}
	return nil
}
