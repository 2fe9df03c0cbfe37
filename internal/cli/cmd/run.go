package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/switchboard/internal/bootstrap"
	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/infrastructure/webkit"
	"github.com/bnema/switchboard/internal/logging"
)

var runFlags struct {
	headless bool
	baseURL  string
	testMode bool
	watch    bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the switchboard window",
	Long: `Open the window and load every view from the content server.

The window stays hidden until the default view has loaded, or until
startup.ready_timeout elapses.

Examples:
  switchboard run
  switchboard run --base-url http://localhost:8080
  switchboard run --headless --test-mode`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.BoolVar(&runFlags.headless, "headless", false, "run without a display (pages are fetched over HTTP, not rendered)")
	f.StringVar(&runFlags.baseURL, "base-url", "", "content server address (overrides content.base_url)")
	f.BoolVar(&runFlags.testMode, "test-mode", false, "load the placeholder page into the window before the views")
	f.BoolVar(&runFlags.watch, "watch", true, "apply config file changes (log level, inspector) while running")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	cfg, err := applyRunFlags(cmd, a.Config)
	if err != nil {
		return err
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(cmd.Context(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shell, err := bootstrap.New(ctx, bootstrap.Options{Config: cfg, Headless: runFlags.headless})
	if errors.Is(err, webkit.ErrNativeUnavailable) {
		return fmt.Errorf("%w; use --headless or a webkit_cgo build", err)
	}
	if err != nil {
		return err
	}

	if runFlags.watch {
		a.Manager.OnConfigChange(shell.ApplyConfig)
		if err := a.Manager.Watch(); err != nil {
			logging.FromContext(shell.Context()).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	return shell.Run(ctx)
}

// applyRunFlags returns a copy of cfg with command-line overrides applied.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out := *cfg
	out.Views = append([]config.ViewConfig(nil), cfg.Views...)

	if cmd.Flags().Changed("base-url") {
		out.Content.BaseURL = runFlags.baseURL
	}
	if cmd.Flags().Changed("test-mode") {
		out.Content.TestMode = runFlags.testMode
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
