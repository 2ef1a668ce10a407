package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	testdb "github.com/memograph/memograph/test/database"
)

// countingExecutor records executed job IDs across goroutines.
type countingExecutor struct {
	mu       sync.Mutex
	executed map[string]int
}

func newCountingExecutor() *countingExecutor {
	return &countingExecutor{executed: make(map[string]int)}
}

func (e *countingExecutor) Execute(_ context.Context, job *ent.EmbeddingJob) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed[job.ID]++
	return nil
}

func (e *countingExecutor) total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.executed {
		n += c
	}
	return n
}

// Two replicas share one schema; SKIP LOCKED must hand each job to exactly
// one of them.
func TestCrossReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	const jobCount = 12
	for i := 0; i < jobCount; i++ {
		require.NoError(t, Enqueue(ctx, clientA.EmbeddingJob,
			embeddingjob.TargetKindMessage, fmt.Sprintf("msg-%d", i)))
	}

	execA := newCountingExecutor()
	execB := newCountingExecutor()
	poolA := NewWorkerPool("pod-a", clientA.Client, testQueueConfig(), execA)
	poolB := NewWorkerPool("pod-b", clientB.Client, testQueueConfig(), execB)

	require.NoError(t, poolA.Start(ctx))
	require.NoError(t, poolB.Start(ctx))

	require.Eventually(t, func() bool {
		n, err := clientA.EmbeddingJob.Query().
			Where(embeddingjob.StatusEQ(embeddingjob.StatusCompleted)).
			Count(ctx)
		return err == nil && n == jobCount
	}, 15*time.Second, 100*time.Millisecond)

	poolA.Stop()
	poolB.Stop()

	// Every job ran exactly once, split across the two pods.
	assert.Equal(t, jobCount, execA.total()+execB.total())
	for id, count := range execA.executed {
		assert.Equal(t, 1, count, "job %s ran twice on pod-a", id)
		assert.NotContains(t, execB.executed, id)
	}
	for id, count := range execB.executed {
		assert.Equal(t, 1, count, "job %s ran twice on pod-b", id)
	}
}

func TestOrphanRecoveryAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	// A job claimed by a crashed pod with a long-stale heartbeat.
	err := clientA.EmbeddingJob.Create().
		SetID("stranded").
		SetTargetKind(embeddingjob.TargetKindMessage).
		SetTargetID("msg-stranded").
		SetStatus(embeddingjob.StatusProcessing).
		SetNextAttemptAt(time.Now().UTC()).
		SetPodID("pod-crashed").
		SetLastInteractionAt(time.Now().UTC().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := testQueueConfig()
	pool := NewWorkerPool("pod-b", clientB.Client, cfg, newCountingExecutor())
	require.NoError(t, pool.requeueOrphans(ctx))

	job, err := clientB.EmbeddingJob.Get(ctx, "stranded")
	require.NoError(t, err)
	assert.Equal(t, embeddingjob.StatusPending, job.Status)
	assert.Nil(t, job.PodID)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)

	// A fresh heartbeat is left alone.
	err = clientA.EmbeddingJob.Create().
		SetID("healthy").
		SetTargetKind(embeddingjob.TargetKindMessage).
		SetTargetID("msg-healthy").
		SetStatus(embeddingjob.StatusProcessing).
		SetNextAttemptAt(time.Now().UTC()).
		SetPodID("pod-a").
		SetLastInteractionAt(time.Now().UTC()).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.requeueOrphans(ctx))
	job, err = clientB.EmbeddingJob.Get(ctx, "healthy")
	require.NoError(t, err)
	assert.Equal(t, embeddingjob.StatusProcessing, job.Status)
}
