package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
)

// Enqueue adds a pending embedding job for a target row. Pass the job
// client of an open transaction to enqueue atomically with the target
// write, or client.EmbeddingJob for standalone use.
func Enqueue(ctx context.Context, jobs *ent.EmbeddingJobClient, kind embeddingjob.TargetKind, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("target id is required")
	}
	if err := jobs.Create().
		SetID(uuid.New().String()).
		SetTargetKind(kind).
		SetTargetID(targetID).
		SetStatus(embeddingjob.StatusPending).
		SetNextAttemptAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue %s embedding job: %w", kind, err)
	}
	return nil
}
