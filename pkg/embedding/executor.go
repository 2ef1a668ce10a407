package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
)

// Executor loads a job's target text, embeds it, and writes the vector
// back. Writes overwrite the embedding column, so re-delivery is safe.
type Executor struct {
	client   *ent.Client
	embedder Embedder
}

// NewExecutor creates a queue executor backed by the given embedder.
func NewExecutor(client *ent.Client, embedder Embedder) *Executor {
	return &Executor{client: client, embedder: embedder}
}

// Execute embeds one target row. A target deleted since enqueueing is a
// successful no-op.
func (e *Executor) Execute(ctx context.Context, job *ent.EmbeddingJob) error {
	text, write, err := e.loadTarget(ctx, job)
	if err != nil {
		return err
	}
	if write == nil {
		slog.Info("Embedding target gone, skipping",
			"target_kind", job.TargetKind, "target_id", job.TargetID)
		return nil
	}
	if strings.TrimSpace(text) == "" {
		slog.Info("Embedding target has no text, skipping",
			"target_kind", job.TargetKind, "target_id", job.TargetID)
		return nil
	}

	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return err
	}
	return write(ctx, pgvector.NewVector(vec))
}

type vectorWrite func(ctx context.Context, vec pgvector.Vector) error

// loadTarget returns the text to embed and the write-back closure for a
// job. A nil write means the target no longer exists.
func (e *Executor) loadTarget(ctx context.Context, job *ent.EmbeddingJob) (string, vectorWrite, error) {
	switch job.TargetKind {
	case embeddingjob.TargetKindMessage:
		m, err := e.client.Message.Get(ctx, job.TargetID)
		if ent.IsNotFound(err) {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to load message: %w", err)
		}
		return m.Content, func(ctx context.Context, vec pgvector.Vector) error {
			return e.client.Message.UpdateOneID(m.ID).SetEmbedding(vec).Exec(ctx)
		}, nil

	case embeddingjob.TargetKindFact:
		f, err := e.client.EntityFact.Get(ctx, job.TargetID)
		if ent.IsNotFound(err) {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to load fact: %w", err)
		}
		text := f.FactType + ": " + *f.Value
		return text, func(ctx context.Context, vec pgvector.Vector) error {
			return e.client.EntityFact.UpdateOneID(f.ID).SetEmbedding(vec).Exec(ctx)
		}, nil

	case embeddingjob.TargetKindActivity:
		a, err := e.client.Activity.Get(ctx, job.TargetID)
		if ent.IsNotFound(err) {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to load activity: %w", err)
		}
		text := a.Name
		if a.Context != "" {
			text += "\n" + a.Context
		}
		return text, func(ctx context.Context, vec pgvector.Vector) error {
			return e.client.Activity.UpdateOneID(a.ID).SetEmbedding(vec).Exec(ctx)
		}, nil

	case embeddingjob.TargetKindCommitment:
		c, err := e.client.Commitment.Get(ctx, job.TargetID)
		if ent.IsNotFound(err) {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to load commitment: %w", err)
		}
		text := c.Title
		if c.Description != "" {
			text += "\n" + c.Description
		}
		return text, func(ctx context.Context, vec pgvector.Vector) error {
			return e.client.Commitment.UpdateOneID(c.ID).SetEmbedding(vec).Exec(ctx)
		}, nil

	case embeddingjob.TargetKindSegment, embeddingjob.TargetKindSummary:
		s, err := e.client.TopicalSegment.Get(ctx, job.TargetID)
		if ent.IsNotFound(err) {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to load segment: %w", err)
		}
		text := s.Topic
		if s.Summary != "" {
			text += "\n" + s.Summary
		}
		if len(s.Keywords) > 0 {
			text += "\n" + strings.Join(s.Keywords, ", ")
		}
		return text, func(ctx context.Context, vec pgvector.Vector) error {
			return e.client.TopicalSegment.UpdateOneID(s.ID).SetEmbedding(vec).Exec(ctx)
		}, nil

	default:
		return "", nil, fmt.Errorf("unknown embedding target kind %q", job.TargetKind)
	}
}
