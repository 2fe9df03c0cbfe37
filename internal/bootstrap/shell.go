package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/switchboard/internal/application/port"
	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/infrastructure/headless"
	"github.com/bnema/switchboard/internal/infrastructure/journal"
	"github.com/bnema/switchboard/internal/infrastructure/webkit"
	"github.com/bnema/switchboard/internal/logging"
	"github.com/bnema/switchboard/internal/ui/coordinator"
)

// Options selects the host for a Shell.
type Options struct {
	Config *config.Config
	// Headless runs the shell without a display.
	Headless bool
	// HTTPClient is used by the headless host. Nil means http.DefaultClient.
	HTTPClient *http.Client
	// Platform overrides host selection entirely.
	Platform port.Platform
}

// Shell is a fully wired, not yet running, application.
type Shell struct {
	cfg        *config.Config
	ctx        context.Context
	sessionID  string
	platform   port.Platform
	supervisor *coordinator.LifecycleSupervisor
	journal    *journal.AsyncJournal
	init       *initResult
	timer      *StartupTimer

	mu        sync.Mutex
	closeOnce sync.Once
}

// New wires a shell. The returned shell owns the journal database and log
// file until Close.
func New(ctx context.Context, opts Options) (*Shell, error) {
	if opts.Config == nil {
		return nil, errors.New("config cannot be nil")
	}
	cfg := opts.Config
	timer := NewStartupTimer()
	sessionID := logging.GenerateSessionID()

	res, err := runParallelInit(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("parallel init: %w", err)
	}
	timer.MarkDuration("parallel_init", res.duration)

	logger := sessionLogger(cfg, res.logFile)
	ctx = logging.WithSession(logging.WithContext(ctx, logger), sessionID)
	timer.Mark("logger")

	s := &Shell{
		cfg:       cfg,
		ctx:       ctx,
		sessionID: sessionID,
		init:      res,
		timer:     timer,
	}

	var sink port.EventJournal
	if res.repo != nil {
		s.journal = journal.NewAsyncJournal(ctx, res.repo, cfg.Journal.QueueSize)
		sink = s.journal
	}

	s.platform, err = selectPlatform(ctx, opts)
	if err != nil {
		s.Close()
		return nil, err
	}
	timer.Mark("host")

	supCfg, err := SupervisorConfig(cfg, sessionID)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.supervisor, err = coordinator.NewLifecycleSupervisor(s.platform, supCfg, sink)
	if err != nil {
		s.Close()
		return nil, err
	}
	timer.Mark("supervisor")

	logging.FromContext(ctx).Info().
		Str("base_url", cfg.Content.BaseURL).
		Str("default_view", cfg.Startup.DefaultView).
		Bool("headless", opts.Headless).
		Bool("test_mode", cfg.Content.TestMode).
		Bool("journal", s.journal != nil).
		Msg("shell ready")
	return s, nil
}

func selectPlatform(ctx context.Context, opts Options) (port.Platform, error) {
	switch {
	case opts.Platform != nil:
		return opts.Platform, nil
	case opts.Headless:
		var hopts []headless.Option
		if opts.HTTPClient != nil {
			hopts = append(hopts, headless.WithHTTPClient(opts.HTTPClient))
		}
		return headless.NewPlatform(hopts...), nil
	default:
		webkit.InstallGLibLogHandler(ctx)
		p, err := webkit.NewPlatform(webkit.Options{DeveloperExtras: opts.Config.Debug.Inspector})
		if err != nil {
			return nil, fmt.Errorf("native host: %w", err)
		}
		return p, nil
	}
}

// sessionLogger builds the logger used for the rest of the run. It is
// created at trace level and gated by the global level so a config reload
// can raise verbosity.
func sessionLogger(cfg *config.Config, file io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = zerolog.TraceLevel
	if cfg.Logging.Format == "json" {
		lc.Format = "json"
	}
	if file != nil {
		lc.File = file
	}
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	return logging.New(lc)
}

// Context returns the context carrying the session logger.
func (s *Shell) Context() context.Context { return s.ctx }

// SessionID identifies this run in logs and the journal.
func (s *Shell) SessionID() string { return s.sessionID }

// Platform returns the host platform.
func (s *Shell) Platform() port.Platform { return s.platform }

// Supervisor returns the lifecycle supervisor.
func (s *Shell) Supervisor() *coordinator.LifecycleSupervisor { return s.supervisor }

// Run blocks until the host quits or ctx is done, then releases resources.
func (s *Shell) Run(ctx context.Context) error {
	defer s.Close()
	ctx = logging.WithContext(ctx, *logging.FromContext(s.ctx))
	s.timer.Log(ctx, zerolog.DebugLevel)
	return s.supervisor.Run(ctx)
}

// ApplyConfig applies the settings that can change while running: the log
// level and the inspector flag. Anything else takes effect on restart.
func (s *Shell) ApplyConfig(next *config.Config) {
	if next == nil {
		return
	}
	log := logging.FromContext(s.ctx)

	s.mu.Lock()
	prev := s.cfg
	s.cfg = next
	s.mu.Unlock()

	if next.Logging.Level != prev.Logging.Level {
		zerolog.SetGlobalLevel(logging.ParseLevel(next.Logging.Level))
		log.Info().Str("from", prev.Logging.Level).Str("to", next.Logging.Level).Msg("log level changed")
	}
	if next.Debug.Inspector != prev.Debug.Inspector {
		enabled := next.Debug.Inspector
		s.platform.Post(func() { s.supervisor.SetInspectorEnabled(enabled) })
		log.Info().Bool("inspector", enabled).Msg("inspector setting changed")
	}
	if RequiresRestart(prev, next) {
		log.Warn().Msg("configuration changed; content, window and view settings apply on next start")
	}
}

// RequiresRestart reports whether next differs from prev in settings that
// are only read at startup.
func RequiresRestart(prev, next *config.Config) bool {
	if prev.Content != next.Content || prev.Window != next.Window ||
		prev.Startup != next.Startup || prev.Surfaces != next.Surfaces {
		return true
	}
	if len(prev.Views) != len(next.Views) {
		return true
	}
	for i := range prev.Views {
		if prev.Views[i] != next.Views[i] {
			return true
		}
	}
	return false
}

// Close flushes the journal and releases the database and log file.
func (s *Shell) Close() {
	s.closeOnce.Do(func() {
		if s.journal != nil {
			s.journal.Close()
			if dropped := s.journal.Dropped(); dropped > 0 {
				logging.FromContext(s.ctx).Warn().Int64("dropped", dropped).Msg("lifecycle journal dropped events")
			}
		}
		s.init.close()
	})
}
