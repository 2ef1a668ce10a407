// Package queue provides the durable embedding job queue: enqueueing,
// claiming, retry with backoff, orphan recovery and pruning.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/memograph/memograph/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// JobExecutor computes and writes the embedding for one claimed job.
//
// The executor owns the target lookup and the vector write; the worker only
// handles claiming, heartbeat, retry bookkeeping and terminal status. The
// write must be idempotent: at-least-once delivery means a job can run
// twice, and overwriting the embedding column is safe.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.EmbeddingJob) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	FailedJobs       int            `json:"failed_jobs"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
