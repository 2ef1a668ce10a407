package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// heartbeatInterval is how often a working worker refreshes the claimed
// job's last_interaction_at for orphan detection.
const heartbeatInterval = 30 * time.Second

// Worker is a single queue worker that polls for and processes embedding
// jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish the current
// job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Embedding worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next due job and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "worker_id", w.id,
		"target_kind", job.TargetKind, "target_id", job.TargetID)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, job.ID)

	execErr := w.executor.Execute(jobCtx, job)
	cancelHeartbeat()

	// The job context may already be cancelled; terminal bookkeeping uses a
	// fresh one.
	if err := w.finishJob(context.Background(), job, execErr); err != nil {
		log.Error("Failed to record job outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	if execErr != nil {
		log.Warn("Embedding job failed", "attempt", job.Attempts+1, "error", execErr)
	}
	return nil
}

// claimNextJob atomically claims the oldest due job using FOR UPDATE SKIP
// LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.EmbeddingJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.EmbeddingJob.Query().
		Where(
			embeddingjob.StatusEQ(embeddingjob.StatusPending),
			embeddingjob.NextAttemptAtLTE(time.Now().UTC()),
		).
		Order(ent.Asc(embeddingjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	job, err = job.Update().
		SetStatus(embeddingjob.StatusProcessing).
		SetPodID(w.podID).
		SetLastInteractionAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// finishJob records success, schedules a backoff retry, or marks the job
// terminally failed.
func (w *Worker) finishJob(ctx context.Context, job *ent.EmbeddingJob, execErr error) error {
	if execErr == nil {
		return w.client.EmbeddingJob.UpdateOneID(job.ID).
			SetStatus(embeddingjob.StatusCompleted).
			SetCompletedAt(time.Now().UTC()).
			Exec(ctx)
	}

	attempts := job.Attempts + 1
	if attempts >= w.config.MaxAttempts {
		return w.client.EmbeddingJob.UpdateOneID(job.ID).
			SetStatus(embeddingjob.StatusFailed).
			SetAttempts(attempts).
			SetLastError(execErr.Error()).
			SetCompletedAt(time.Now().UTC()).
			Exec(ctx)
	}

	backoff := w.config.InitialBackoff << (attempts - 1)
	return w.client.EmbeddingJob.UpdateOneID(job.ID).
		SetStatus(embeddingjob.StatusPending).
		SetAttempts(attempts).
		SetLastError(execErr.Error()).
		SetNextAttemptAt(time.Now().UTC().Add(backoff)).
		Exec(ctx)
}

// runHeartbeat periodically updates last_interaction_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.EmbeddingJob.UpdateOneID(jobID).
				SetLastInteractionAt(time.Now().UTC()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
