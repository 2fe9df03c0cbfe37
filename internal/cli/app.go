// Package cli holds the dependencies shared by the CLI commands.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/switchboard/internal/cli/styles"
	"github.com/bnema/switchboard/internal/domain/build"
	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/switchboard/internal/logging"
)

// ErrJournalDisabled is returned by Journal when journal.enabled is false.
var ErrJournalDisabled = errors.New("lifecycle journal is disabled (journal.enabled = false)")

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx    context.Context
	dbOnce sync.Once
	db     *sql.DB
	dbErr  error
}

// NewApp loads the configuration (configPath overrides the XDG lookup) and
// builds a quiet logger. The journal database is opened on first use.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		mgr.UseFile(configPath)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// CLI commands stay quiet unless asked; run replaces this logger.
	level := "warn"
	if env := os.Getenv("SWITCHBOARD_LOG_LEVEL"); env != "" {
		level = env
	}
	logger := logging.NewFromConfigValues(level, cfg.Logging.Format)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Context returns the base context carrying the CLI logger.
func (a *App) Context() context.Context { return a.ctx }

// Journal opens the lifecycle journal read side.
func (a *App) Journal() (*sqlite.JournalRepository, error) {
	if !a.Config.Journal.Enabled {
		return nil, ErrJournalDisabled
	}
	a.dbOnce.Do(func() {
		a.db, a.dbErr = sqlite.NewConnection(a.ctx, a.Config.Journal.Path)
	})
	if a.dbErr != nil {
		return nil, fmt.Errorf("open journal: %w", a.dbErr)
	}
	return sqlite.NewJournalRepository(a.db), nil
}

// Close releases the journal database if it was opened.
func (a *App) Close() error {
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}
