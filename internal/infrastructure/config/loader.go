package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Most keys map automatically, e.g. SWITCHBOARD_STARTUP_DEFAULT_VIEW.
	v.SetEnvPrefix("SWITCHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short and legacy names. The first name set wins.
	bindings := map[string][]string{
		"content.base_url":  {"SWITCHBOARD_BASE_URL", "WEB_SERVER_URL"},
		"content.test_mode": {"SWITCHBOARD_TEST_MODE", "PLAYWRIGHT_TEST"},
		"logging.level":     {"SWITCHBOARD_LOG_LEVEL"},
		"logging.format":    {"SWITCHBOARD_LOG_FORMAT"},
		"debug.inspector":   {"SWITCHBOARD_INSPECTOR"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", strings.Join(envs, ", "), err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// UseFile makes the manager read path instead of searching the config dirs.
// A missing explicit file is an error rather than a first-run trigger.
func (m *Manager) UseFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
	m.explicit = true
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

// decode unmarshals, normalises and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !m.explicit && errors.As(err, &configFileNotFoundError) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, "config.toml")
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func resolvePaths(config *Config) error {
	if config.Journal.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get journal database path: %w", err)
		}
		config.Journal.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Content.BaseURL = strings.TrimSpace(config.Content.BaseURL)
	config.Startup.DefaultView = strings.TrimSpace(config.Startup.DefaultView)
	config.Surfaces.CrashPolicy = strings.ToLower(strings.TrimSpace(config.Surfaces.CrashPolicy))
	if config.Surfaces.CrashPolicy == "" {
		config.Surfaces.CrashPolicy = defaultCrashPolicy
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)

	for i := range config.Views {
		v := &config.Views[i]
		v.ID = strings.TrimSpace(v.ID)
		if v.Title == "" {
			v.Title = v.ID
		}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Views = append([]ViewConfig(nil), m.config.Views...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema on first run.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaFileName)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Paths are resolved in Load so the written file stays portable.
	m.setContentDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setViewsDefaults(defaults)
	m.setStartupDefaults(defaults)
	m.viper.SetDefault("surfaces.crash_policy", defaults.Surfaces.CrashPolicy)
	m.viper.SetDefault("debug.inspector", defaults.Debug.Inspector)
	m.setLoggingDefaults(defaults)
	m.setJournalDefaults(defaults)
}

func (m *Manager) setContentDefaults(defaults *Config) {
	m.viper.SetDefault("content.base_url", defaults.Content.BaseURL)
	m.viper.SetDefault("content.test_mode", defaults.Content.TestMode)
	m.viper.SetDefault("content.placeholder_url", defaults.Content.PlaceholderURL)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.resize_all_surfaces", defaults.Window.ResizeAllSurfaces)
}

func (m *Manager) setViewsDefaults(defaults *Config) {
	views := make([]map[string]any, 0, len(defaults.Views))
	for _, v := range defaults.Views {
		views = append(views, map[string]any{
			"id":          v.ID,
			"title":       v.Title,
			"path_prefix": v.PathPrefix,
		})
	}
	m.viper.SetDefault("views", views)
}

func (m *Manager) setStartupDefaults(defaults *Config) {
	m.viper.SetDefault("startup.default_view", defaults.Startup.DefaultView)
	m.viper.SetDefault("startup.ready_timeout", defaults.Startup.ReadyTimeout.String())
	m.viper.SetDefault("startup.ready_on_in_page_navigation", defaults.Startup.ReadyOnInPageNavigation)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file_enabled", defaults.Logging.FileEnabled)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setJournalDefaults(defaults *Config) {
	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.queue_size", defaults.Journal.QueueSize)
}
