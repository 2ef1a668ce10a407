// Package cleanup runs the daily retention and maintenance sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/queue"
	"github.com/memograph/memograph/pkg/services"
)

// Service runs once a day at the configured hour:
//   - Hard-deletes rejected drafts and orphaned draft targets past retention
//   - Prunes completed/failed embedding job history
//   - Records a data quality audit report
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	client      *ent.Client
	retention   *services.RetentionService
	dataQuality *services.DataQualityService
	retCfg      *config.RetentionConfig
	queueCfg    *config.QueueConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	client *ent.Client,
	retention *services.RetentionService,
	dataQuality *services.DataQualityService,
	retCfg *config.RetentionConfig,
	queueCfg *config.QueueConfig,
) *Service {
	return &Service{
		client:      client,
		retention:   retention,
		dataQuality: dataQuality,
		retCfg:      retCfg,
		queueCfg:    queueCfg,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"approval_retention_days", s.retCfg.ApprovalRetentionDays,
		"gc_hour", s.retCfg.GCHour)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	for {
		wait := time.Until(s.nextRun(time.Now()))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.RunOnce(ctx)
		}
	}
}

// nextRun returns the next occurrence of the configured GC hour after now.
func (s *Service) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.retCfg.GCHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunOnce executes one full maintenance pass. Each step logs its own
// failure; one failing step does not block the others.
func (s *Service) RunOnce(ctx context.Context) {
	start := time.Now()

	deleted, err := s.retention.RunGC(ctx)
	if err != nil {
		slog.Error("Retention GC failed", "error", err, "deleted_before_failure", deleted)
	}

	pruned, err := queue.PruneJobs(ctx, s.client, s.queueCfg.KeepCompleted, s.queueCfg.KeepFailed)
	if err != nil {
		slog.Error("Embedding job pruning failed", "error", err)
	}

	if _, err := s.dataQuality.RunAudit(ctx, "scheduled"); err != nil {
		slog.Error("Scheduled data quality audit failed", "error", err)
	}

	slog.Info("Cleanup pass finished",
		"drafts_deleted", deleted,
		"jobs_pruned", pruned,
		"duration", time.Since(start))
}
