package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/embedding"
	"github.com/memograph/memograph/pkg/llm"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/normalize"
	"github.com/memograph/memograph/pkg/queue"
)

// shiftWindow is the rolling window size for embedding-based topic-shift
// detection.
const shiftWindow = 5

// shiftThreshold is the cosine distance between adjacent windows that
// counts as a candidate break.
const shiftThreshold = 0.35

// breakTolerance is how far (in messages) an LLM break may sit from an
// embedding-shift candidate and still be accepted.
const breakTolerance = 2

// linkWindow and linkProximity bound cross-chat segment linking.
const (
	linkWindow    = 30 * 24 * time.Hour
	linkProximity = 24 * time.Hour
)

const segmentationSystemPrompt = `You split a conversation transcript into topical segments.
Given numbered messages, return JSON:
{"breaks": [{"start_index": <int>, "topic": "...", "keywords": ["..."], "summary": "...", "confidence": <0..1>}]}
The first break must have start_index 0. Keywords are 3 to 8 short phrases. Respond with JSON only.`

// Segmenter splits a closed interaction into topical segments by
// intersecting an embedding-shift scan with an LLM break list.
type Segmenter struct {
	client   *ent.Client
	llm      llm.Client
	embedder embedding.Embedder
	cfg      *config.PipelineConfig
}

// NewSegmenter creates a new Segmenter.
func NewSegmenter(client *ent.Client, llmClient llm.Client, embedder embedding.Embedder, cfg *config.PipelineConfig) *Segmenter {
	return &Segmenter{client: client, llm: llmClient, embedder: embedder, cfg: cfg}
}

// SegmentInteraction segments one interaction. Existing segments are
// superseded when the interaction is flagged for re-segmentation.
func (s *Segmenter) SegmentInteraction(ctx context.Context, interactionID string) ([]*ent.TopicalSegment, error) {
	inter, err := s.client.Interaction.Get(ctx, interactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interaction: %w", err)
	}

	msgs, err := s.client.Interaction.QueryMessages(inter).
		Order(ent.Asc(message.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	plan, err := s.proposeBreaks(ctx, msgs)
	if err != nil {
		return nil, err
	}

	shifts, err := s.embeddingShifts(ctx, msgs)
	if err != nil {
		return nil, err
	}

	breaks := intersectBreaks(plan.Breaks, shifts, len(msgs), s.cfg.MinSegmentMessages, s.cfg.MaxSegmentMessages)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if inter.NeedsResegmentation {
		if _, err := tx.TopicalSegment.Update().
			Where(
				topicalsegment.InteractionIDEQ(inter.ID),
				topicalsegment.StatusEQ(topicalsegment.StatusActive),
			).
			SetStatus(topicalsegment.StatusSuperseded).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to supersede old segments: %w", err)
		}
	}

	segments := make([]*ent.TopicalSegment, 0, len(breaks))
	for i, b := range breaks {
		end := len(msgs)
		if i+1 < len(breaks) {
			end = breaks[i+1].StartIndex
		}
		window := msgs[b.StartIndex:end]

		participantIDs, primary := participantSummary(window)
		coverage := keywordCoverage(b.Keywords, window)
		confidence := math.Min(b.Confidence, coverage)

		seg, err := tx.TopicalSegment.Create().
			SetID(uuid.New().String()).
			SetChatID(inter.ChatID).
			SetInteractionID(inter.ID).
			SetTopic(b.Topic).
			SetKeywords(b.Keywords).
			SetSummary(b.Summary).
			SetParticipantIds(participantIDs).
			SetPrimaryParticipantID(primary).
			SetMessageCount(len(window)).
			SetStartedAt(window[0].Timestamp).
			SetEndedAt(window[len(window)-1].Timestamp).
			SetStatus(topicalsegment.StatusActive).
			SetExtractionStatus(topicalsegment.ExtractionStatusUnprocessed).
			SetConfidence(confidence).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create segment: %w", err)
		}

		msgIDs := make([]string, len(window))
		for j, m := range window {
			msgIDs[j] = m.ID
		}
		if err := tx.TopicalSegment.UpdateOne(seg).
			AddMessageIDs(msgIDs...).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to link segment messages: %w", err)
		}

		if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindSegment, seg.ID); err != nil {
			return nil, fmt.Errorf("failed to enqueue segment embedding: %w", err)
		}
		segments = append(segments, seg)
	}

	if inter.NeedsResegmentation {
		if err := tx.Interaction.UpdateOne(inter).
			SetNeedsResegmentation(false).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear resegmentation flag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit segmentation: %w", err)
	}

	for _, seg := range segments {
		if err := s.linkRelated(ctx, seg); err != nil {
			slog.Warn("Cross-chat linking failed", "segment_id", seg.ID, "error", err)
		}
	}

	slog.Info("Interaction segmented",
		"interaction_id", inter.ID,
		"messages", len(msgs),
		"segments", len(segments))
	return segments, nil
}

// proposeBreaks asks the model for a break list over the numbered
// transcript.
func (s *Segmenter) proposeBreaks(ctx context.Context, msgs []*ent.Message) (*models.SegmentPlan, error) {
	var b strings.Builder
	for i, m := range msgs {
		fmt.Fprintf(&b, "[%d] %s: %s\n", i, senderLabel(m), m.Content)
	}

	raw, err := s.llm.Complete(ctx, segmentationSystemPrompt, b.String())
	if err != nil {
		return nil, fmt.Errorf("segmentation completion failed: %w", err)
	}

	var plan models.SegmentPlan
	if err := llm.ParseStrict(raw, &plan); err != nil {
		return nil, err
	}
	sort.Slice(plan.Breaks, func(i, j int) bool {
		return plan.Breaks[i].StartIndex < plan.Breaks[j].StartIndex
	})
	return &plan, nil
}

// embeddingShifts returns message indices where the rolling-window cosine
// distance between adjacent windows exceeds the shift threshold.
func (s *Segmenter) embeddingShifts(ctx context.Context, msgs []*ent.Message) (map[int]bool, error) {
	shifts := make(map[int]bool)
	if len(msgs) <= shiftWindow {
		return shifts, nil
	}

	var prev []float32
	for start := 0; start+shiftWindow <= len(msgs); start += shiftWindow {
		var b strings.Builder
		for _, m := range msgs[start : start+shiftWindow] {
			b.WriteString(m.Content)
			b.WriteByte('\n')
		}
		vec, err := s.embedder.Embed(ctx, b.String())
		if err != nil {
			return nil, fmt.Errorf("failed to embed window: %w", err)
		}
		if prev != nil && cosineDistance(prev, vec) > shiftThreshold {
			shifts[start] = true
		}
		prev = vec
	}
	return shifts, nil
}

// intersectBreaks keeps LLM breaks near an embedding-shift candidate and
// enforces the segment size bounds. Index 0 always starts a segment.
func intersectBreaks(proposed []models.SegmentBreak, shifts map[int]bool, total, minSize, maxSize int) []models.SegmentBreak {
	accepted := []models.SegmentBreak{}
	for _, b := range proposed {
		if b.StartIndex < 0 || b.StartIndex >= total {
			continue
		}
		if b.StartIndex == 0 || nearShift(b.StartIndex, shifts) {
			accepted = append(accepted, b)
		}
	}
	if len(accepted) == 0 || accepted[0].StartIndex != 0 {
		first := models.SegmentBreak{Topic: "Conversation", Confidence: 0.5}
		if len(proposed) > 0 {
			first = proposed[0]
			first.StartIndex = 0
		}
		accepted = append([]models.SegmentBreak{first}, accepted...)
	}

	// Merge segments below the minimum into their predecessor.
	sized := []models.SegmentBreak{accepted[0]}
	for i := 1; i < len(accepted); i++ {
		prevStart := sized[len(sized)-1].StartIndex
		if accepted[i].StartIndex-prevStart < minSize {
			continue
		}
		end := total
		if i+1 < len(accepted) {
			end = accepted[i+1].StartIndex
		}
		if end-accepted[i].StartIndex < minSize {
			continue
		}
		sized = append(sized, accepted[i])
	}

	// Split segments above the maximum.
	final := []models.SegmentBreak{}
	for i, b := range sized {
		end := total
		if i+1 < len(sized) {
			end = sized[i+1].StartIndex
		}
		final = append(final, b)
		for cut := b.StartIndex + maxSize; cut < end; cut += maxSize {
			continued := b
			continued.StartIndex = cut
			continued.Topic = b.Topic + " (continued)"
			final = append(final, continued)
		}
	}
	return final
}

func nearShift(index int, shifts map[int]bool) bool {
	for offset := -breakTolerance; offset <= breakTolerance; offset++ {
		if shifts[index+offset] {
			return true
		}
	}
	return false
}

// linkRelated populates related_segment_ids symmetrically for segments in
// the last 30 days that share an extracted item, share keywords, or share
// participants in time proximity. Existing links are kept.
func (s *Segmenter) linkRelated(ctx context.Context, seg *ent.TopicalSegment) error {
	since := seg.StartedAt.Add(-linkWindow)
	candidates, err := s.client.TopicalSegment.Query().
		Where(
			topicalsegment.IDNEQ(seg.ID),
			topicalsegment.StatusEQ(topicalsegment.StatusActive),
			topicalsegment.StartedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query link candidates: %w", err)
	}

	related := append([]string(nil), seg.RelatedSegmentIds...)
	added := 0
	for _, c := range candidates {
		if containsID(related, c.ID) {
			continue
		}
		if s.segmentsRelated(seg, c) {
			related = append(related, c.ID)
			added++
		}
	}
	if added == 0 {
		return nil
	}

	if err := s.client.TopicalSegment.UpdateOneID(seg.ID).
		SetRelatedSegmentIds(related).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to store related segments: %w", err)
	}
	for _, id := range related {
		other, err := s.client.TopicalSegment.Get(ctx, id)
		if err != nil {
			continue
		}
		if containsID(other.RelatedSegmentIds, seg.ID) {
			continue
		}
		if err := s.client.TopicalSegment.UpdateOne(other).
			SetRelatedSegmentIds(append(other.RelatedSegmentIds, seg.ID)).
			Exec(ctx); err != nil {
			slog.Warn("Failed to backlink segment", "segment_id", id, "error", err)
		}
	}
	return nil
}

// RelinkExtracted refreshes a segment's cross-chat links after extraction.
// Item IDs only land on the segment once extraction finishes, so the
// shared-activity criterion cannot fire at segmentation time.
func (s *Segmenter) RelinkExtracted(ctx context.Context, segmentID string) error {
	seg, err := s.client.TopicalSegment.Get(ctx, segmentID)
	if err != nil {
		return fmt.Errorf("failed to load segment for relinking: %w", err)
	}
	return s.linkRelated(ctx, seg)
}

func (s *Segmenter) segmentsRelated(a, b *ent.TopicalSegment) bool {
	if idsOverlap(a.ExtractedItemIds, b.ExtractedItemIds) {
		return true
	}
	if normalize.KeywordJaccard(a.Keywords, b.Keywords) >= 0.5 {
		return true
	}
	if idsOverlap(a.ParticipantIds, b.ParticipantIds) {
		gap := a.StartedAt.Sub(b.StartedAt)
		if gap < 0 {
			gap = -gap
		}
		if gap < linkProximity {
			return true
		}
	}
	return false
}

func idsOverlap(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// participantSummary derives the distinct participant entity IDs of a
// window plus the most frequent sender.
func participantSummary(msgs []*ent.Message) ([]string, string) {
	counts := make(map[string]int)
	var order []string
	for _, m := range msgs {
		if m.SenderEntityID == nil {
			continue
		}
		if _, seen := counts[*m.SenderEntityID]; !seen {
			order = append(order, *m.SenderEntityID)
		}
		counts[*m.SenderEntityID]++
	}

	primary := ""
	best := 0
	for _, id := range order {
		if counts[id] > best {
			best = counts[id]
			primary = id
		}
	}
	return order, primary
}

// keywordCoverage is the fraction of keywords that actually occur in the
// window text.
func keywordCoverage(keywords []string, msgs []*ent.Message) float64 {
	if len(keywords) == 0 {
		return 0
	}
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(strings.ToLower(m.Content))
		b.WriteByte('\n')
	}
	text := b.String()

	hits := 0
	for _, k := range keywords {
		if strings.Contains(text, strings.ToLower(strings.TrimSpace(k))) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

func senderLabel(m *ent.Message) string {
	if m.IsOutgoing {
		return "me"
	}
	if m.SenderEntityID != nil {
		return *m.SenderEntityID
	}
	return m.SenderIdentifierValue
}

// cosineDistance is 1 minus the cosine similarity of two vectors.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// CompletedUnsegmented lists interactions ready for segmentation: closed
// past the settle delay with no active segments, or flagged for
// re-segmentation.
func (s *Segmenter) CompletedUnsegmented(ctx context.Context, settleDelay time.Duration, limit int) ([]*ent.Interaction, error) {
	cutoff := time.Now().UTC().Add(-settleDelay)
	interactions, err := s.client.Interaction.Query().
		Where(
			interaction.StatusEQ(interaction.StatusCompleted),
			interaction.EndedAtLTE(cutoff),
			interaction.Or(
				interaction.NeedsResegmentation(true),
				interaction.Not(interaction.HasSegmentsWith(
					topicalsegment.StatusEQ(topicalsegment.StatusActive),
				)),
			),
		).
		Order(ent.Asc(interaction.FieldEndedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query unsegmented interactions: %w", err)
	}
	return interactions, nil
}
