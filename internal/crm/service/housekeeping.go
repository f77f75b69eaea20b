package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/vos-crm/crm/internal/crm/store"
)

const (
	// InviteRetention is how long expired invites are kept before deletion.
	InviteRetention = 30 * 24 * time.Hour

	// OrphanGrace keeps in-flight uploads (file written, row not yet
	// committed) out of the orphan sweep.
	OrphanGrace = time.Hour
)

// FileSweeper lists and removes stored upload files.
type FileSweeper interface {
	ListOlderThan(cutoff time.Time) ([]string, error)
	Remove(path string) error
}

// CleanupResult counts what one housekeeping pass removed.
type CleanupResult struct {
	Invites int64
	Files   int
}

// HousekeepingService periodically purges long-expired invites and upload
// files that no document row points at any more.
type HousekeepingService struct {
	Store    store.Store
	Files    FileSweeper // optional
	Logger   *slog.Logger
	Interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(st store.Store, files FileSweeper, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{Store: st, Files: files, Logger: logger, Interval: interval}
}

// Start runs a pass now and then every Interval until Stop.
func (s *HousekeepingService) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		t := time.NewTicker(s.Interval)
		defer t.Stop()

		for {
			s.Cleanup(ctx)
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop cancels the running pass and waits for the worker to exit.
func (s *HousekeepingService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.Logger.Info("housekeeping stopped")
}

// Cleanup performs one pass. Failures are logged and the pass moves on.
func (s *HousekeepingService) Cleanup(ctx context.Context) CleanupResult {
	var res CleanupResult
	now := time.Now().UTC()

	n, err := s.Store.Invites().DeleteExpiredInvites(ctx, now.Add(-InviteRetention))
	if err != nil {
		s.Logger.Error("delete expired invites", "error", err)
	} else {
		res.Invites = n
	}

	if s.Files != nil {
		res.Files = s.sweepOrphans(ctx, now.Add(-OrphanGrace))
	}

	if res.Invites > 0 || res.Files > 0 {
		s.Logger.Info("housekeeping pass", "deleted_invites", res.Invites, "deleted_files", res.Files)
	}
	return res
}

func (s *HousekeepingService) sweepOrphans(ctx context.Context, cutoff time.Time) int {
	candidates, err := s.Files.ListOlderThan(cutoff)
	if err != nil || len(candidates) == 0 {
		if err != nil {
			s.Logger.Error("list upload files", "error", err)
		}
		return 0
	}

	docs, err := s.Store.Documents().ListDocuments(ctx, "")
	if err != nil {
		s.Logger.Error("list documents", "error", err)
		return 0
	}
	known := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		known[d.Path] = struct{}{}
	}

	removed := 0
	for _, p := range candidates {
		if _, ok := known[p]; ok {
			continue
		}
		if err := s.Files.Remove(p); err != nil {
			s.Logger.Warn("remove orphaned upload", "path", p, "error", err)
			continue
		}
		removed++
	}
	return removed
}
