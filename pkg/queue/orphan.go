package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs. All pods run
// this independently; requeueing is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// requeueOrphans returns processing jobs with stale heartbeats to the
// pending queue. At-least-once: the embedding write is idempotent, so
// re-running a job that actually finished is harmless.
func (p *WorkerPool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().UTC().Add(-p.config.OrphanThreshold)

	n, err := p.client.EmbeddingJob.Update().
		Where(
			embeddingjob.StatusEQ(embeddingjob.StatusProcessing),
			embeddingjob.LastInteractionAtNotNil(),
			embeddingjob.LastInteractionAtLT(threshold),
		).
		SetStatus(embeddingjob.StatusPending).
		SetNextAttemptAt(time.Now().UTC()).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned jobs: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += n
	p.orphans.mu.Unlock()

	if n > 0 {
		slog.Warn("Requeued orphaned embedding jobs", "count", n)
	}
	return nil
}

// RequeueStartupOrphans returns jobs claimed by this pod before a crash to
// the pending queue. Called once during startup, before workers begin.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.EmbeddingJob.Update().
		Where(
			embeddingjob.StatusEQ(embeddingjob.StatusProcessing),
			embeddingjob.PodIDEQ(podID),
		).
		SetStatus(embeddingjob.StatusPending).
		SetNextAttemptAt(time.Now().UTC()).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued startup orphans from previous run",
			"pod_id", podID, "count", n)
	}
	return nil
}

// PruneJobs trims the job history, keeping the most recent keepCompleted
// completed and keepFailed failed rows. Called by the retention sweeper.
func PruneJobs(ctx context.Context, client *ent.Client, keepCompleted, keepFailed int) (int, error) {
	pruned := 0
	for _, p := range []struct {
		status embeddingjob.Status
		keep   int
	}{
		{embeddingjob.StatusCompleted, keepCompleted},
		{embeddingjob.StatusFailed, keepFailed},
	} {
		keepIDs, err := client.EmbeddingJob.Query().
			Where(embeddingjob.StatusEQ(p.status)).
			Order(ent.Desc(embeddingjob.FieldCreatedAt)).
			Limit(p.keep).
			IDs(ctx)
		if err != nil {
			return pruned, fmt.Errorf("failed to query %s jobs: %w", p.status, err)
		}
		n, err := client.EmbeddingJob.Delete().
			Where(
				embeddingjob.StatusEQ(p.status),
				embeddingjob.IDNotIn(keepIDs...),
			).
			Exec(ctx)
		if err != nil {
			return pruned, fmt.Errorf("failed to prune %s jobs: %w", p.status, err)
		}
		pruned += n
	}
	return pruned, nil
}
