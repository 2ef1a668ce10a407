package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/config"
	testdb "github.com/memograph/memograph/test/database"
)

type recordingExecutor struct {
	executed []string
	err      error
}

func (e *recordingExecutor) Execute(_ context.Context, job *ent.EmbeddingJob) error {
	e.executed = append(e.executed, job.ID)
	return e.err
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:        1,
		PollInterval:       50 * time.Millisecond,
		PollIntervalJitter: 10 * time.Millisecond,
		MaxAttempts:        3,
		InitialBackoff:     time.Minute,
		JobTimeout:         5 * time.Second,
		OrphanScanInterval: time.Minute,
		OrphanThreshold:    2 * time.Minute,
		KeepCompleted:      1000,
		KeepFailed:         1000,
	}
}

func TestWorkerClaimAndFinish(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("claims the oldest due job", func(t *testing.T) {
		w := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{})

		require.NoError(t, Enqueue(ctx, client.EmbeddingJob, embeddingjob.TargetKindMessage, "msg-1"))

		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, embeddingjob.StatusProcessing, job.Status)
		assert.Equal(t, "msg-1", job.TargetID)
		require.NotNil(t, job.PodID)
		assert.Equal(t, "pod-1", *job.PodID)
		assert.NotNil(t, job.LastInteractionAt)

		// Claimed jobs are invisible to the next claim.
		_, err = w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("ignores jobs scheduled in the future", func(t *testing.T) {
		w := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{})

		err := client.EmbeddingJob.Create().
			SetID("future-job").
			SetTargetKind(embeddingjob.TargetKindMessage).
			SetTargetID("msg-future").
			SetStatus(embeddingjob.StatusPending).
			SetNextAttemptAt(time.Now().UTC().Add(time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("success completes the job", func(t *testing.T) {
		w := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{})

		require.NoError(t, Enqueue(ctx, client.EmbeddingJob, embeddingjob.TargetKindFact, "fact-1"))
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, job, nil))
		got, err := client.EmbeddingJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, embeddingjob.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("failure schedules a backoff retry", func(t *testing.T) {
		w := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{})

		require.NoError(t, Enqueue(ctx, client.EmbeddingJob, embeddingjob.TargetKindFact, "fact-2"))
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, job, errors.New("provider down")))
		got, err := client.EmbeddingJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, embeddingjob.StatusPending, got.Status)
		assert.Equal(t, 1, got.Attempts)
		require.NotNil(t, got.LastError)
		assert.Equal(t, "provider down", *got.LastError)
		assert.True(t, got.NextAttemptAt.After(time.Now().UTC().Add(30*time.Second)))
	})

	t.Run("exhausted attempts fail terminally", func(t *testing.T) {
		cfg := testQueueConfig()
		w := NewWorker("w-1", "pod-1", client.Client, cfg, &recordingExecutor{})

		require.NoError(t, Enqueue(ctx, client.EmbeddingJob, embeddingjob.TargetKindFact, "fact-3"))
		job, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		job, err = job.Update().SetAttempts(cfg.MaxAttempts - 1).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, job, errors.New("still broken")))
		got, err := client.EmbeddingJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, embeddingjob.StatusFailed, got.Status)
		assert.Equal(t, cfg.MaxAttempts, got.Attempts)
		assert.NotNil(t, got.CompletedAt)
	})
}

func TestRequeueStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	mkProcessing := func(t *testing.T, id, podID string) {
		t.Helper()
		err := client.EmbeddingJob.Create().
			SetID(id).
			SetTargetKind(embeddingjob.TargetKindMessage).
			SetTargetID("target-" + id).
			SetStatus(embeddingjob.StatusProcessing).
			SetNextAttemptAt(time.Now().UTC()).
			SetPodID(podID).
			Exec(ctx)
		require.NoError(t, err)
	}

	mkProcessing(t, "mine", "pod-1")
	mkProcessing(t, "theirs", "pod-2")

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "pod-1"))

	mine, err := client.EmbeddingJob.Get(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, embeddingjob.StatusPending, mine.Status)
	assert.Nil(t, mine.PodID)

	// Another pod's in-flight job is untouched.
	theirs, err := client.EmbeddingJob.Get(ctx, "theirs")
	require.NoError(t, err)
	assert.Equal(t, embeddingjob.StatusProcessing, theirs.Status)
}

func TestPruneJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	mkJob := func(t *testing.T, id string, status embeddingjob.Status) {
		t.Helper()
		err := client.EmbeddingJob.Create().
			SetID(id).
			SetTargetKind(embeddingjob.TargetKindMessage).
			SetTargetID("target-" + id).
			SetStatus(status).
			SetNextAttemptAt(time.Now().UTC()).
			Exec(ctx)
		require.NoError(t, err)
		// created_at ordering decides what survives the prune.
		time.Sleep(5 * time.Millisecond)
	}

	for _, id := range []string{"c1", "c2", "c3"} {
		mkJob(t, id, embeddingjob.StatusCompleted)
	}
	mkJob(t, "f1", embeddingjob.StatusFailed)
	mkJob(t, "f2", embeddingjob.StatusFailed)
	mkJob(t, "p1", embeddingjob.StatusPending)

	pruned, err := PruneJobs(ctx, client.Client, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	remaining, err := client.EmbeddingJob.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c2", "c3", "f2", "p1"}, remaining)
}
