// Package backup makes scheduled json snapshots of the employee collection and keeps the latest of them
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/empdir/app/store"
)

//go:generate moq -out mocks/loader.go -pkg mocks -skip-ensure -fmt goimports . Loader

const filePrefix = "employees-"

// Loader returns the current employee collection
type Loader interface {
	Load(ctx context.Context) ([]store.Employee, error)
}

// Cron interface defines basic robfig/cron methods used by scheduler
type Cron interface {
	Start()
	Stop() context.Context
	Schedule(schedule cron.Schedule, cmd cron.Job) cron.EntryID
}

// Scheduler writes snapshots on cron schedule
type Scheduler struct {
	Cron
	Loader   Loader
	Location string // directory for snapshots
	Spec     string // standard 5-field cron spec
	Keep     int    // number of snapshots to keep, all if 0
	now      func() time.Time
}

// Do schedules snapshots and blocks until context canceled
func (s *Scheduler) Do(ctx context.Context) error {
	sched, err := cron.ParseStandard(s.Spec)
	if err != nil {
		return fmt.Errorf("can't parse backup schedule %q: %w", s.Spec, err)
	}
	if err := os.MkdirAll(s.Location, 0o750); err != nil {
		return fmt.Errorf("failed to create backup location %s: %w", s.Location, err)
	}

	s.Schedule(sched, cron.FuncJob(func() {
		fname, err := s.Snapshot(ctx)
		if err != nil {
			log.Printf("[WARN] backup failed, %v", err)
			return
		}
		log.Printf("[INFO] backup saved to %s", fname)
	}))
	log.Printf("[INFO] backup scheduled %q to %s, keep %d", s.Spec, s.Location, s.Keep)

	s.Start()
	<-ctx.Done()
	log.Print("[DEBUG] terminate backup scheduler")
	<-s.Stop().Done()
	return nil
}

// Snapshot writes the current collection to a new timestamped file and removes old ones beyond Keep
func (s *Scheduler) Snapshot(ctx context.Context) (string, error) {
	employees, err := s.Loader.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load employees: %w", err)
	}
	data, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal employees: %w", err)
	}

	ts := time.Now
	if s.now != nil {
		ts = s.now
	}
	fname := filepath.Join(s.Location, filePrefix+ts().UTC().Format("20060102T150405.000")+".json")
	if err := os.WriteFile(fname, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", fname, err)
	}

	if err := s.prune(); err != nil {
		log.Printf("[WARN] can't remove old backups, %v", err)
	}
	return fname, nil
}

// List returns snapshot files, oldest first
func (s *Scheduler) List() ([]string, error) {
	entries, err := os.ReadDir(s.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup location: %w", err)
	}
	var res []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		res = append(res, filepath.Join(s.Location, e.Name()))
	}
	slices.Sort(res) // timestamp in name sorts in time order
	return res, nil
}

func (s *Scheduler) prune() error {
	if s.Keep <= 0 {
		return nil
	}
	files, err := s.List()
	if err != nil {
		return err
	}
	if len(files) <= s.Keep {
		return nil
	}
	var errs []error
	for _, f := range files[:len(files)-s.Keep] {
		if err := os.Remove(f); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("[DEBUG] removed old backup %s", f)
	}
	return errors.Join(errs...)
}
