package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Janitor removes artifacts older than MaxAge on a fixed interval, keeping
// disk usage bounded on long-running servers.
type Janitor struct {
	store    *FSStore
	maxAge   time.Duration
	interval time.Duration
}

func NewJanitor(store *FSStore, maxAge, interval time.Duration) *Janitor {
	return &Janitor{store: store, maxAge: maxAge, interval: interval}
}

// Run sweeps until ctx is cancelled. Call in its own goroutine.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := j.Sweep()
			if err != nil {
				slog.Error("artifact sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("artifact sweep", "removed", removed)
			}
		}
	}
}

// Sweep deletes every artifact older than MaxAge and returns how many were
// removed.
func (j *Janitor) Sweep() (int, error) {
	entries, err := os.ReadDir(j.store.Dir())
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.store.Dir(), entry.Name())); err != nil {
			slog.Error("remove old artifact", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
