// Package scheduler runs the relay's periodic background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

// Scheduler manages periodic quota sync.
type Scheduler struct {
	cron  *cron.Cron
	quota *QuotaSyncer
	log   *slog.Logger

	quotaEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that syncs the eBay quota every
// quotaInterval.
func NewScheduler(
	quota *QuotaSyncer,
	quotaInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:  c,
		quota: quota,
		log:   log,
	}

	id, err := c.AddFunc(
		"@every "+quotaInterval.String(),
		s.runQuotaSync,
	)
	if err != nil {
		return nil, err
	}
	s.quotaEntryID = id

	return s, nil
}

// Start runs one quota sync in the background and begins running
// scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	go s.runQuotaSync()
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next run time of each job.
func (s *Scheduler) SyncNextRunTimestamps() {
	if next := s.cron.Entry(s.quotaEntryID).Next; !next.IsZero() {
		metrics.SchedulerNextQuotaSyncTimestamp.Set(float64(next.Unix()))
	}
}

func (s *Scheduler) runQuotaSync() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.quota.Sync(ctx); err != nil {
		s.log.Warn("scheduled quota sync failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}
