// Package pipeline hosts the post-ingest processing chain: topical
// segmentation, LLM extraction with semantic deduplication, and the
// periodic runner that drives both.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agnivade/levenshtein"
	"github.com/pgvector/pgvector-go"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/embedding"
	"github.com/memograph/memograph/pkg/normalize"
)

// strongNameRatio is the Levenshtein similarity on normalized names that
// counts as a duplicate even when embedding similarity is marginal.
const strongNameRatio = 0.90

// knnLimit bounds the nearest-neighbor probe per candidate.
const knnLimit = 5

// DedupAction is the deduper's verdict for one candidate.
type DedupAction string

// Dedup verdicts.
const (
	ActionCreate DedupAction = "create"
	ActionSkip   DedupAction = "skip"
	ActionReview DedupAction = "review"
)

// DedupDecision carries the verdict plus the matched row, when any.
type DedupDecision struct {
	Action     DedupAction
	ExistingID string
	Similarity float64
}

// Deduper decides, per extraction candidate, whether an equivalent row
// already exists. High similarity merges into the existing row, the gray
// zone creates with a review flag, everything else creates normally.
type Deduper struct {
	client   *ent.Client
	embedder embedding.Embedder
	cfg      *config.PipelineConfig
}

// NewDeduper creates a new Deduper.
func NewDeduper(client *ent.Client, embedder embedding.Embedder, cfg *config.PipelineConfig) *Deduper {
	return &Deduper{client: client, embedder: embedder, cfg: cfg}
}

// neighbor is one KNN probe hit.
type neighbor struct {
	id         string
	name       string
	similarity float64
}

// CheckFact dedups a fact candidate against the same entity's facts.
func (d *Deduper) CheckFact(ctx context.Context, entityID, factType, value string) (*DedupDecision, error) {
	text := factType + ": " + value
	neighbors, err := d.nearest(ctx, text, `
		SELECT id, value, 1 - (embedding <=> $1) AS similarity
		FROM entity_facts
		WHERE entity_id = $2 AND embedding IS NOT NULL AND deleted_at IS NULL
		ORDER BY embedding <=> $1
		LIMIT `+fmt.Sprint(knnLimit), entityID)
	if err != nil {
		return nil, err
	}
	return d.decide(neighbors, value), nil
}

// CheckActivity dedups an activity candidate against existing activities.
func (d *Deduper) CheckActivity(ctx context.Context, name, context_ string) (*DedupDecision, error) {
	text := name
	if context_ != "" {
		text += "\n" + context_
	}
	neighbors, err := d.nearest(ctx, text, `
		SELECT id, name, 1 - (embedding <=> $1) AS similarity
		FROM activities
		WHERE embedding IS NOT NULL AND deleted_at IS NULL
		ORDER BY embedding <=> $1
		LIMIT `+fmt.Sprint(knnLimit))
	if err != nil {
		return nil, err
	}
	return d.decide(neighbors, name), nil
}

// CheckCommitment dedups a commitment candidate against existing ones.
func (d *Deduper) CheckCommitment(ctx context.Context, title, description string) (*DedupDecision, error) {
	text := title
	if description != "" {
		text += "\n" + description
	}
	neighbors, err := d.nearest(ctx, text, `
		SELECT id, title, 1 - (embedding <=> $1) AS similarity
		FROM commitments
		WHERE embedding IS NOT NULL AND deleted_at IS NULL
		ORDER BY embedding <=> $1
		LIMIT `+fmt.Sprint(knnLimit))
	if err != nil {
		return nil, err
	}
	return d.decide(neighbors, title), nil
}

// nearest embeds the candidate text and probes the KNN query. The first
// bind parameter is always the vector.
func (d *Deduper) nearest(ctx context.Context, text, query string, extraArgs ...interface{}) ([]neighbor, error) {
	vec, err := d.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate: %w", err)
	}

	args := append([]interface{}{pgvector.NewVector(vec)}, extraArgs...)
	rows, err := d.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("knn probe failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var neighbors []neighbor
	for rows.Next() {
		var n neighbor
		if err := rows.Scan(&n.id, &n.name, &n.similarity); err != nil {
			return nil, fmt.Errorf("failed to scan knn row: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}

// decide applies the two-tier thresholds plus the normalized-name edit
// distance check.
func (d *Deduper) decide(neighbors []neighbor, candidateName string) *DedupDecision {
	if len(neighbors) == 0 {
		return &DedupDecision{Action: ActionCreate}
	}

	best := neighbors[0]
	normalized := normalize.Name(candidateName)
	for _, n := range neighbors {
		existing := normalize.Name(n.name)
		distance := levenshtein.ComputeDistance(normalized, existing)
		if normalize.LevenshteinRatio(normalized, existing, distance) >= strongNameRatio {
			slog.Debug("Strong name match in dedup",
				"candidate", candidateName, "existing_id", n.id)
			return &DedupDecision{Action: ActionSkip, ExistingID: n.id, Similarity: n.similarity}
		}
	}

	switch {
	case best.similarity >= d.cfg.SimilarityThreshold:
		return &DedupDecision{Action: ActionSkip, ExistingID: best.id, Similarity: best.similarity}
	case best.similarity >= d.cfg.ReviewThreshold:
		return &DedupDecision{Action: ActionReview, ExistingID: best.id, Similarity: best.similarity}
	default:
		return &DedupDecision{Action: ActionCreate}
	}
}
