package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchboard/internal/domain/entity"
	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/infrastructure/headless"
	"github.com/bnema/switchboard/internal/infrastructure/persistence/sqlite"
)

func TestSupervisorConfig_FromDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Surfaces.CrashPolicy = "recreate"

	sc, err := SupervisorConfig(cfg, "20260101_000000_abcd")
	require.NoError(t, err)

	assert.Equal(t, cfg.Content.BaseURL, sc.BaseURL)
	assert.Equal(t, entity.ViewMail, sc.DefaultView)
	assert.Equal(t, 60*time.Second, sc.ReadyTimeout)
	assert.Equal(t, entity.CrashPolicyRecreate, sc.CrashPolicy)
	assert.Equal(t, 1200, sc.Window.Width)
	assert.Equal(t, 800, sc.Window.Height)
	assert.Equal(t, "20260101_000000_abcd", sc.SessionID)
	assert.Equal(t, []entity.ViewID{entity.ViewMail, entity.ViewCalendar, entity.ViewAccount}, sc.Views.IDs())

	view, ok := sc.Routes.Resolve("/calendar/week")
	require.True(t, ok)
	assert.Equal(t, entity.ViewCalendar, view)
}

func TestSupervisorConfig_RejectsUnknownDefaultView(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Startup.DefaultView = "contacts"

	_, err := SupervisorConfig(cfg, "")
	require.Error(t, err)
}

func TestStartupTimer_Phases(t *testing.T) {
	timer := NewStartupTimer()
	timer.Mark("config")
	timer.MarkDuration("parallel_init", 25*time.Millisecond)

	phases := timer.Phases()
	require.Len(t, phases, 2)
	assert.Equal(t, "config", phases[0].Name)
	assert.Equal(t, Phase{Name: "parallel_init", Duration: 25 * time.Millisecond}, phases[1])
	assert.GreaterOrEqual(t, timer.Phases()[0].Duration, time.Duration(0))
}

func TestRequiresRestart(t *testing.T) {
	base := config.DefaultConfig()

	same := config.DefaultConfig()
	same.Logging.Level = "debug"
	same.Debug.Inspector = true
	assert.False(t, RequiresRestart(base, same))

	moved := config.DefaultConfig()
	moved.Content.BaseURL = "http://localhost:9999"
	assert.True(t, RequiresRestart(base, moved))

	retitled := config.DefaultConfig()
	retitled.Views[0].Title = "Mail"
	assert.True(t, RequiresRestart(base, retitled))
}

func TestRunParallelInit_DisabledSinks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Journal.Enabled = false
	cfg.Logging.FileEnabled = false

	res, err := runParallelInit(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, res.db)
	assert.Nil(t, res.repo)
	assert.Nil(t, res.logFile)
}

func TestRunParallelInit_OpensJournalAndLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Journal.Path = filepath.Join(dir, "data", "journal.sqlite")
	cfg.Logging.FileEnabled = true
	cfg.Logging.LogDir = filepath.Join(dir, "logs")

	res, err := runParallelInit(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(res.close)

	assert.NotNil(t, res.db)
	assert.NotNil(t, res.repo)
	require.NotNil(t, res.logFile)
	assert.Equal(t, filepath.Join(dir, "logs", logFileName), res.logFile.Path())
}

func TestShell_HeadlessRunJournalsLifecycle(t *testing.T) {
	restoreGlobalLevel(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	t.Cleanup(srv.Close)

	dbPath := filepath.Join(t.TempDir(), "journal.sqlite")
	cfg := config.DefaultConfig()
	cfg.Content.BaseURL = srv.URL
	cfg.Journal.Path = dbPath
	cfg.Logging.Level = "disabled"

	shell, err := New(context.Background(), Options{Config: cfg, Headless: true})
	require.NoError(t, err)
	require.NotEmpty(t, shell.SessionID())

	platform, ok := shell.Platform().(*headless.Platform)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- shell.Run(ctx) }()

	require.Eventually(t, func() bool {
		ws := platform.Windows()
		if len(ws) == 0 {
			return false
		}
		visible := false
		_ = platform.Do(context.Background(), func() { visible = ws[0].IsVisible() })
		return visible
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-errc:
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop")
	}

	db, err := sqlite.NewConnection(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	events, err := sqlite.NewJournalRepository(db).Recent(context.Background(), 100)
	require.NoError(t, err)

	kinds := make(map[entity.LifecycleEventKind]int)
	for _, ev := range events {
		kinds[ev.Kind]++
		assert.Equal(t, shell.SessionID(), ev.SessionID)
	}
	assert.Equal(t, 3, kinds[entity.EventSurfaceCreated])
	assert.Equal(t, 1, kinds[entity.EventWindowShown])
}

func TestShell_ApplyConfigChangesLogLevel(t *testing.T) {
	restoreGlobalLevel(t)

	cfg := config.DefaultConfig()
	cfg.Journal.Enabled = false
	shell, err := New(context.Background(), Options{Config: cfg, Headless: true})
	require.NoError(t, err)
	t.Cleanup(shell.Close)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	next := config.DefaultConfig()
	next.Journal.Enabled = false
	next.Logging.Level = "debug"
	shell.ApplyConfig(next)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}
