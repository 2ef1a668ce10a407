package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/services"
)

// runnerBatch bounds how many interactions/segments one tick picks up.
const runnerBatch = 20

// extractConcurrency bounds parallel LLM extraction calls per tick.
const extractConcurrency = 4

// Runner drives the pipeline on a timer: close idle interactions, segment
// settled ones, then extract unprocessed segments. Idempotent and safe to
// run from multiple replicas.
type Runner struct {
	client       *ent.Client
	ingest       *services.IngestService
	segmenter    *Segmenter
	orchestrator *Orchestrator
	cfg          *config.PipelineConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a new pipeline runner.
func NewRunner(client *ent.Client, ingest *services.IngestService, segmenter *Segmenter, orchestrator *Orchestrator, cfg *config.PipelineConfig) *Runner {
	return &Runner{
		client:       client,
		ingest:       ingest,
		segmenter:    segmenter,
		orchestrator: orchestrator,
		cfg:          cfg,
	}
}

// Start launches the background pipeline loop.
func (r *Runner) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Pipeline runner started",
		"interval", r.cfg.Interval,
		"settle_delay", r.cfg.SettleDelay)
}

// Stop signals the loop to exit and waits for it to finish.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Pipeline runner stopped")
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// RunOnce executes one pipeline pass. Exposed for the on-demand API
// trigger.
func (r *Runner) RunOnce(ctx context.Context) {
	r.tick(ctx)
}

func (r *Runner) tick(ctx context.Context) {
	if _, err := r.ingest.CloseIdle(ctx); err != nil {
		slog.Error("Pipeline: closing idle interactions failed", "error", err)
	}
	r.segmentSettled(ctx)
	r.extractPending(ctx)
}

func (r *Runner) segmentSettled(ctx context.Context) {
	interactions, err := r.segmenter.CompletedUnsegmented(ctx, r.cfg.SettleDelay, runnerBatch)
	if err != nil {
		slog.Error("Pipeline: querying settled interactions failed", "error", err)
		return
	}
	for _, inter := range interactions {
		if ctx.Err() != nil {
			return
		}
		if _, err := r.segmenter.SegmentInteraction(ctx, inter.ID); err != nil {
			slog.Error("Pipeline: segmentation failed",
				"interaction_id", inter.ID, "error", err)
		}
	}
}

func (r *Runner) extractPending(ctx context.Context) {
	now := time.Now().UTC()
	segments, err := r.client.TopicalSegment.Query().
		Where(
			topicalsegment.StatusEQ(topicalsegment.StatusActive),
			topicalsegment.Or(
				topicalsegment.ExtractionStatusEQ(topicalsegment.ExtractionStatusUnprocessed),
				topicalsegment.And(
					topicalsegment.ExtractionStatusEQ(topicalsegment.ExtractionStatusFailed),
					topicalsegment.ExtractionAttemptsLT(r.cfg.MaxExtractionAttempts),
					topicalsegment.NextExtractionAtLTE(now),
				),
			),
		).
		Order(ent.Asc(topicalsegment.FieldStartedAt)).
		Limit(runnerBatch).
		All(ctx)
	if err != nil {
		slog.Error("Pipeline: querying extractable segments failed", "error", err)
		return
	}

	// Segments extract independently; failures are recorded per segment.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)
	for _, seg := range segments {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := r.orchestrator.ExtractSegment(gctx, seg.ID, false); err != nil {
				slog.Error("Pipeline: extraction failed",
					"segment_id", seg.ID, "error", err)
				return nil
			}
			// Extraction attached item IDs, so shared-activity links may
			// exist now.
			if err := r.segmenter.RelinkExtracted(gctx, seg.ID); err != nil {
				slog.Warn("Pipeline: post-extraction relinking failed",
					"segment_id", seg.ID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
