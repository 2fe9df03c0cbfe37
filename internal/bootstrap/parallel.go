package bootstrap

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/switchboard/internal/infrastructure/config"
	"github.com/bnema/switchboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/switchboard/internal/logging"
)

const (
	// journalRetention is how many events survive the startup prune.
	journalRetention = 5000
	logFileName      = "switchboard.log"
)

// initResult holds what the parallel phase opened. Every field is optional:
// a journal or log file that fails to open is logged and skipped.
type initResult struct {
	db       *sql.DB
	repo     *sqlite.JournalRepository
	logFile  *logging.LogRotator
	duration time.Duration
}

func (r *initResult) close() {
	if r.db != nil {
		_ = sqlite.Close(r.db)
	}
	if r.logFile != nil {
		_ = r.logFile.Close()
	}
}

// runParallelInit opens the journal database and the session log file
// concurrently.
func runParallelInit(ctx context.Context, cfg *config.Config) (*initResult, error) {
	log := logging.FromContext(ctx)
	res := &initResult{}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Journal.Enabled {
		g.Go(func() error {
			db, err := sqlite.NewConnection(gctx, cfg.Journal.Path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn().Err(err).Str("path", cfg.Journal.Path).Msg("lifecycle journal disabled: database unavailable")
				return nil
			}
			repo := sqlite.NewJournalRepository(db)
			if pruned, err := repo.Prune(gctx, journalRetention); err != nil {
				log.Warn().Err(err).Msg("failed to prune lifecycle journal")
			} else if pruned > 0 {
				log.Debug().Int64("pruned", pruned).Msg("lifecycle journal pruned")
			}
			res.db = db
			res.repo = repo
			return nil
		})
	}

	if cfg.Logging.FileEnabled {
		g.Go(func() error {
			rot, err := logging.NewLogRotator(cfg.Logging.LogDir, logFileName, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
			if err != nil {
				log.Warn().Err(err).Str("dir", cfg.Logging.LogDir).Msg("session log file disabled")
				return nil
			}
			res.logFile = rot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		res.close()
		return nil, err
	}
	res.duration = time.Since(start)
	return res, nil
}
