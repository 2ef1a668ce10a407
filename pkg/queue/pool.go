package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/config"
)

// WorkerPool manages a pool of embedding workers plus the orphan scan.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting embedding worker pool",
		"pod_id", p.podID,
		"worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.EmbeddingJob.Query().
		Where(embeddingjob.StatusEQ(embeddingjob.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	failedJobs, errF := p.client.EmbeddingJob.Query().
		Where(embeddingjob.StatusEQ(embeddingjob.StatusFailed)).
		Count(ctx)
	if errF != nil {
		slog.Error("Failed to query failed jobs for health check",
			"pod_id", p.podID, "error", errF)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errF == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errF != nil {
		dbError = fmt.Sprintf("failed jobs query failed: %v", errF)
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		FailedJobs:       failedJobs,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
