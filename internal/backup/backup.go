// Package backup periodically copies the raw documents into a backup directory.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/document"
)

// TimeFormat is the UTC timestamp in snapshot file names. It sorts lexically.
const TimeFormat = "20060102T150405.000Z"

var snapshotsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "barbersite_backup_snapshots_total",
		Help: "Document snapshots written by the backup scheduler.",
	},
	[]string{"document", "result"},
)

// Parser accepts standard 5-field cron expressions.
var Parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow) //nolint:gochecknoglobals

// Scheduler snapshots a set of document stores on a cron schedule.
type Scheduler struct {
	cfg    config.Backup
	stores []*document.Store
	cron   *cron.Cron
	now    func() time.Time

	mu      sync.Mutex
	running bool
}

// New returns a scheduler for stores. It does not start until Start is called.
func New(cfg config.Backup, stores ...*document.Store) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		stores: stores,
		cron:   cron.New(cron.WithParser(Parser)),
		now:    time.Now,
	}
}

// Start schedules the backup job. It is a no-op when backups are disabled.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if !s.cfg.Enabled {
		log.Debug().Msg("backup scheduler disabled")

		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.run); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSchedule, s.cfg.Schedule, err)
	}

	s.cron.Start()
	s.running = true

	log.Info().
		Str("schedule", s.cfg.Schedule).
		Str("dir", s.cfg.Dir).
		Int("keep", s.cfg.Keep).
		Msg("backup scheduler started")

	return nil
}

// Stop waits for a running job and stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false

	log.Info().Msg("backup scheduler stopped")
}

func (s *Scheduler) run() {
	if err := s.RunNow(); err != nil {
		log.Error().Err(err).Msg("backup run failed")
	}
}

// RunNow snapshots every store and prunes old snapshots.
// It keeps going after a failed document and returns the first error.
func (s *Scheduler) RunNow() error {
	if err := os.MkdirAll(s.cfg.Dir, 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}

	var firstErr error

	for _, store := range s.stores {
		err := s.snapshot(store)
		if err == nil {
			err = s.prune(store.Name())
		}

		result := "success"
		if err != nil {
			result = "error"

			log.Error().Err(err).Str("document", store.Name()).Msg("document backup failed")

			if firstErr == nil {
				firstErr = err
			}
		}

		snapshotsTotal.WithLabelValues(store.Name(), result).Inc()
	}

	return firstErr
}

func (s *Scheduler) snapshot(store *document.Store) error {
	data, err := store.Raw()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}

	name := store.Name() + "-" + s.now().UTC().Format(TimeFormat) + ".json"

	if err = os.WriteFile(filepath.Join(s.cfg.Dir, name), data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}

	log.Debug().Str("document", store.Name()).Str("file", name).Msg("document snapshot written")

	return nil
}

// Snapshots returns the snapshot files of a document, oldest first.
func (s *Scheduler) Snapshots(name string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.cfg.Dir, name+"-*.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}

	slices.Sort(files)

	return files, nil
}

// prune removes all but the newest Keep snapshots. Keep below one keeps everything.
func (s *Scheduler) prune(name string) error {
	if s.cfg.Keep < 1 {
		return nil
	}

	files, err := s.Snapshots(name)
	if err != nil {
		return err
	}

	if len(files) <= s.cfg.Keep {
		return nil
	}

	for _, file := range files[:len(files)-s.cfg.Keep] {
		if err = os.Remove(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: %w", ErrSnapshot, err)
		}
	}

	return nil
}
