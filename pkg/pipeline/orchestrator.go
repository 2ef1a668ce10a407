package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/llm"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/normalize"
	"github.com/memograph/memograph/pkg/queue"
	"github.com/memograph/memograph/pkg/services"
)

// extractionBackoffBase is the first retry delay for a failed segment;
// each attempt doubles it.
const extractionBackoffBase = time.Minute

const extractionSystemPrompt = `You extract structured knowledge from one topical segment of a conversation.
Return JSON with exactly these top-level keys:
{"facts": [{"subject_name": "...", "fact_type": "...", "category": "", "value": "...", "value_date": "", "confidence": 0.0, "source_quote": ""}],
 "activities": [{"name": "...", "activity_type": "project|task", "context": "", "parent_name": "", "client_name": "", "due_date": "", "confidence": 0.0, "source_quote": ""}],
 "commitments": [{"type": "promise|request|agreement|deadline|reminder|recurring", "title": "...", "description": "", "from_name": "", "to_name": "", "due_date": "", "recurrence": "", "confidence": 0.0, "source_quote": ""}]}
Dates are YYYY-MM-DD. Extract only what the transcript supports. Respond with JSON only.`

// Orchestrator turns topical segments into draft facts, activities and
// commitments awaiting approval. Every draft from one run shares a batch
// ID; each candidate is isolated by a savepoint.
type Orchestrator struct {
	client      *ent.Client
	llm         llm.Client
	deduper     *Deduper
	disambig    *services.DisambiguationService
	activities  *services.ActivityService
	approvals   *services.ApprovalService
	entities    *services.EntityService
	commitments *services.CommitmentService
	cfg         *config.PipelineConfig
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	client *ent.Client,
	llmClient llm.Client,
	deduper *Deduper,
	disambig *services.DisambiguationService,
	activities *services.ActivityService,
	approvals *services.ApprovalService,
	entities *services.EntityService,
	commitments *services.CommitmentService,
	cfg *config.PipelineConfig,
) *Orchestrator {
	return &Orchestrator{
		client:      client,
		llm:         llmClient,
		deduper:     deduper,
		disambig:    disambig,
		activities:  activities,
		approvals:   approvals,
		entities:    entities,
		commitments: commitments,
		cfg:         cfg,
	}
}

// ExtractSegment runs extraction for one segment. Processed segments and
// segments with a live pending batch are refused unless forced.
func (o *Orchestrator) ExtractSegment(ctx context.Context, segmentID string, force bool) error {
	seg, err := o.client.TopicalSegment.Get(ctx, segmentID)
	if err != nil {
		return fmt.Errorf("failed to load segment: %w", err)
	}

	if !force {
		if seg.ExtractionStatus == topicalsegment.ExtractionStatusProcessed {
			return fmt.Errorf("%w: segment already processed", services.ErrConflict)
		}
		if seg.BatchID != nil && *seg.BatchID != "" {
			pending, err := o.approvals.HasPendingBatch(ctx, *seg.BatchID)
			if err != nil {
				return err
			}
			if pending {
				return fmt.Errorf("%w: segment batch still pending review", services.ErrConflict)
			}
		}
	}

	if err := o.client.TopicalSegment.UpdateOne(seg).
		SetExtractionStatus(topicalsegment.ExtractionStatusPending).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark segment pending: %w", err)
	}

	result, err := o.runModel(ctx, seg)
	if err != nil {
		return o.markFailed(ctx, seg, err)
	}

	batchID := uuid.New().String()
	itemIDs, err := o.createDrafts(ctx, seg, result, batchID)
	if err != nil {
		return o.markFailed(ctx, seg, err)
	}

	if err := o.client.TopicalSegment.UpdateOneID(seg.ID).
		SetExtractionStatus(topicalsegment.ExtractionStatusProcessed).
		SetBatchID(batchID).
		SetExtractedItemIds(itemIDs).
		ClearExtractionError().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark segment processed: %w", err)
	}

	slog.Info("Segment extracted",
		"segment_id", seg.ID,
		"batch_id", batchID,
		"facts", len(result.Facts),
		"activities", len(result.Activities),
		"commitments", len(result.Commitments))
	return nil
}

// runModel builds the prompt and parses the strict JSON response.
func (o *Orchestrator) runModel(ctx context.Context, seg *ent.TopicalSegment) (*models.ExtractionResult, error) {
	prompt, err := o.buildPrompt(ctx, seg)
	if err != nil {
		return nil, err
	}

	raw, err := o.llm.Complete(ctx, extractionSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var result models.ExtractionResult
	if err := llm.ParseStrict(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// buildPrompt assembles segment text, the participant directory, and the
// owner's known activity names.
func (o *Orchestrator) buildPrompt(ctx context.Context, seg *ent.TopicalSegment) (string, error) {
	msgs, err := o.client.TopicalSegment.QueryMessages(seg).
		Order(ent.Asc(message.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load segment messages: %w", err)
	}

	var b strings.Builder
	b.WriteString("Topic: " + seg.Topic + "\n\n")

	if len(seg.ParticipantIds) > 0 {
		participants, err := o.client.Entity.Query().
			Where(entity.IDIn(seg.ParticipantIds...)).
			All(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load participants: %w", err)
		}
		b.WriteString("Participants:\n")
		for _, p := range participants {
			fmt.Fprintf(&b, "- %s (%s)\n", p.Name, p.Type)
		}
		b.WriteByte('\n')
	}

	if owner, err := o.entities.Owner(ctx); err == nil {
		names, err := o.ownerActivityNames(ctx, owner.ID)
		if err != nil {
			return "", err
		}
		if len(names) > 0 {
			b.WriteString("Known activities:\n")
			for _, n := range names {
				b.WriteString("- " + n + "\n")
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString("Transcript:\n")
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s [%s]: %s\n",
			senderLabel(m), m.Timestamp.Format("2006-01-02 15:04"), m.Content)
	}
	return b.String(), nil
}

func (o *Orchestrator) ownerActivityNames(ctx context.Context, ownerID string) ([]string, error) {
	names, err := o.client.Activity.Query().
		Where(
			activity.OwnerEntityIDEQ(ownerID),
			activity.StatusEQ(activity.StatusActive),
			activity.DeletedAtIsNil(),
		).
		Order(ent.Desc(activity.FieldUpdatedAt)).
		Limit(50).
		Select(activity.FieldName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner activities: %w", err)
	}
	return names, nil
}

// createDrafts writes all candidates in one transaction, one savepoint per
// candidate so a bad row cannot abort its siblings.
func (o *Orchestrator) createDrafts(ctx context.Context, seg *ent.TopicalSegment, result *models.ExtractionResult, batchID string) ([]string, error) {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var itemIDs []string
	index := 0
	perCandidate := func(create func(context.Context, *ent.Tx) (string, error)) error {
		savepoint := fmt.Sprintf("cand_%d", index)
		index++
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
			return fmt.Errorf("failed to create savepoint: %w", err)
		}
		id, err := create(ctx, tx)
		if err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return fmt.Errorf("failed to roll back savepoint: %w", rbErr)
			}
			slog.Warn("Extraction candidate dropped", "segment_id", seg.ID, "error", err)
			return nil
		}
		if id != "" {
			itemIDs = append(itemIDs, id)
		}
		return nil
	}

	for _, f := range result.Facts {
		fact := f
		if err := perCandidate(func(ctx context.Context, tx *ent.Tx) (string, error) {
			return o.createFactDraft(ctx, tx, seg, fact, batchID)
		}); err != nil {
			return nil, err
		}
	}
	for _, a := range result.Activities {
		act := a
		if err := perCandidate(func(ctx context.Context, tx *ent.Tx) (string, error) {
			return o.createActivityDraft(ctx, tx, seg, act, batchID)
		}); err != nil {
			return nil, err
		}
	}
	for _, c := range result.Commitments {
		com := c
		if err := perCandidate(func(ctx context.Context, tx *ent.Tx) (string, error) {
			return o.createCommitmentDraft(ctx, tx, seg, com, batchID)
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit drafts: %w", err)
	}
	return itemIDs, nil
}

// createFactDraft resolves the subject and creates a draft fact plus its
// approval. An unresolved subject drops only this candidate.
func (o *Orchestrator) createFactDraft(ctx context.Context, tx *ent.Tx, seg *ent.TopicalSegment, f models.ExtractedFact, batchID string) (string, error) {
	subjectID, ok := o.resolveName(ctx, f.SubjectName, seg)
	if !ok {
		slog.Info("Unresolved fact subject",
			"segment_id", seg.ID, "subject", f.SubjectName)
		return "", nil
	}

	decision, err := o.deduper.CheckFact(ctx, subjectID, f.FactType, f.Value)
	if err != nil {
		return "", err
	}
	if decision.Action == ActionSkip {
		return "", o.confirmExistingFact(ctx, tx, decision.ExistingID, seg)
	}

	builder := tx.EntityFact.Create().
		SetID(uuid.New().String()).
		SetEntityID(subjectID).
		SetFactType(f.FactType).
		SetValue(f.Value).
		SetSource(entityfact.SourceExtracted).
		SetStatus(entityfact.StatusDraft).
		SetConfidence(f.Confidence).
		SetSourceInteractionID(derefString(seg.InteractionID))
	if f.Category != "" {
		builder.SetCategory(f.Category)
	}
	if f.ValueDate != "" {
		d, err := time.Parse("2006-01-02", f.ValueDate)
		if err != nil {
			return "", fmt.Errorf("invalid value_date %q", f.ValueDate)
		}
		builder.SetValueDate(d)
	}
	if decision.Action == ActionReview {
		builder.SetNeedsReview(true).
			SetReviewReason("possible duplicate").
			SetMetadata(map[string]interface{}{
				"possible_duplicate": map[string]interface{}{
					"existing_id": decision.ExistingID,
					"similarity":  decision.Similarity,
				},
			})
	}

	fact, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create fact draft: %w", err)
	}
	if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindFact, fact.ID); err != nil {
		return "", err
	}

	if _, err := o.approvals.Create(ctx, tx, services.CreateApprovalRequest{
		ItemType:            pendingapproval.ItemTypeFact.String(),
		TargetID:            fact.ID,
		BatchID:             batchID,
		Confidence:          f.Confidence,
		SourceQuote:         f.SourceQuote,
		SourceInteractionID: derefString(seg.InteractionID),
		SourceEntityID:      subjectID,
		Context:             seg.Topic,
	}); err != nil {
		return "", err
	}
	return fact.ID, nil
}

// createActivityDraft creates a draft project/task plus its approval.
func (o *Orchestrator) createActivityDraft(ctx context.Context, tx *ent.Tx, seg *ent.TopicalSegment, a models.ExtractedActivity, batchID string) (string, error) {
	decision, err := o.deduper.CheckActivity(ctx, a.Name, a.Context)
	if err != nil {
		return "", err
	}
	if decision.Action == ActionSkip {
		return "", o.confirmExistingActivity(ctx, tx, decision.ExistingID, seg)
	}

	itemType := pendingapproval.ItemTypeTask
	if a.ActivityType == activity.ActivityTypeProject.String() {
		itemType = pendingapproval.ItemTypeProject
	}

	metadata := map[string]interface{}{"draft_batch_id": batchID}
	if decision.Action == ActionReview {
		metadata["possible_duplicate"] = map[string]interface{}{
			"existing_id": decision.ExistingID,
			"similarity":  decision.Similarity,
		}
	}

	req := models.CreateActivityRequest{
		Name:         a.Name,
		ActivityType: a.ActivityType,
		Status:       activity.StatusDraft.String(),
		Context:      a.Context,
		Metadata:     metadata,
	}
	if owner, err := o.entities.Owner(ctx); err == nil {
		req.OwnerEntityID = owner.ID
	}
	if a.ParentName != "" {
		parent, err := tx.Activity.Query().
			Where(
				activity.NameEqualFold(a.ParentName),
				activity.DeletedAtIsNil(),
				activity.StatusNEQ(activity.StatusDraft),
			).
			First(ctx)
		if err == nil {
			req.ParentID = parent.ID
		} else if !ent.IsNotFound(err) {
			return "", fmt.Errorf("failed to look up parent: %w", err)
		}
	}
	if a.ClientName != "" {
		if clientID, ok := o.resolveName(ctx, a.ClientName, seg); ok {
			req.ClientEntityID = clientID
		} else {
			metadata["client_name"] = a.ClientName
			slog.Info("Unresolved activity client",
				"segment_id", seg.ID, "client", a.ClientName)
		}
	}
	if a.DueDate != "" {
		due, err := time.Parse("2006-01-02", a.DueDate)
		if err != nil {
			return "", fmt.Errorf("invalid due_date %q", a.DueDate)
		}
		req.DueAt = &due
	}

	created, err := o.activities.CreateTx(ctx, tx, req)
	if err != nil {
		return "", err
	}
	update := tx.Activity.UpdateOneID(created.ID)
	if seg.InteractionID != nil {
		update.SetSourceInteractionID(*seg.InteractionID)
	}
	if decision.Action == ActionReview {
		update.SetNeedsReview(true)
	}
	if err := update.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to annotate activity draft: %w", err)
	}

	if _, err := o.approvals.Create(ctx, tx, services.CreateApprovalRequest{
		ItemType:            itemType.String(),
		TargetID:            created.ID,
		BatchID:             batchID,
		Confidence:          a.Confidence,
		SourceQuote:         a.SourceQuote,
		SourceInteractionID: derefString(seg.InteractionID),
		Context:             seg.Topic,
	}); err != nil {
		return "", err
	}
	return created.ID, nil
}

// createCommitmentDraft creates a draft commitment plus its approval.
// Unresolved names stay as display names in metadata; the owner is the
// default promisor.
func (o *Orchestrator) createCommitmentDraft(ctx context.Context, tx *ent.Tx, seg *ent.TopicalSegment, c models.ExtractedCommitment, batchID string) (string, error) {
	decision, err := o.deduper.CheckCommitment(ctx, c.Title, c.Description)
	if err != nil {
		return "", err
	}
	if decision.Action == ActionSkip {
		return "", o.confirmExistingCommitment(ctx, tx, decision.ExistingID, seg)
	}

	metadata := map[string]interface{}{"draft_batch_id": batchID}
	var fromID, toID string
	if c.FromName == "" || strings.EqualFold(c.FromName, "me") {
		if owner, err := o.entities.Owner(ctx); err == nil {
			fromID = owner.ID
		}
	} else if id, ok := o.resolveName(ctx, c.FromName, seg); ok {
		fromID = id
	} else {
		metadata["from_display_name"] = c.FromName
		slog.Info("Unresolved commitment party",
			"segment_id", seg.ID, "name", c.FromName)
	}
	if c.ToName != "" {
		if id, ok := o.resolveName(ctx, c.ToName, seg); ok {
			toID = id
		} else {
			metadata["to_display_name"] = c.ToName
			slog.Info("Unresolved commitment party",
				"segment_id", seg.ID, "name", c.ToName)
		}
	}

	builder := tx.Commitment.Create().
		SetID(uuid.New().String()).
		SetType(commitment.Type(c.Type)).
		SetTitle(c.Title).
		SetStatus(commitment.StatusDraft).
		SetConfidence(c.Confidence).
		SetSourceInteractionID(derefString(seg.InteractionID)).
		SetMetadata(metadata)
	if c.Description != "" {
		builder.SetDescription(c.Description)
	}
	if fromID != "" {
		builder.SetFromEntityID(fromID)
	}
	if toID != "" {
		builder.SetToEntityID(toID)
	}
	if c.Recurrence != "" {
		if _, err := services.ParseRecurrenceRule(c.Recurrence); err != nil {
			return "", err
		}
		builder.SetRecurrenceRule(c.Recurrence)
	}
	if c.DueDate != "" {
		due, err := parseFlexibleDate(c.DueDate)
		if err != nil {
			return "", err
		}
		builder.SetDueDate(due)
	}
	if decision.Action == ActionReview {
		builder.SetNeedsReview(true)
		metadata["possible_duplicate"] = map[string]interface{}{
			"existing_id": decision.ExistingID,
			"similarity":  decision.Similarity,
		}
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create commitment draft: %w", err)
	}
	if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindCommitment, created.ID); err != nil {
		return "", err
	}

	if _, err := o.approvals.Create(ctx, tx, services.CreateApprovalRequest{
		ItemType:            pendingapproval.ItemTypeCommitment.String(),
		TargetID:            created.ID,
		BatchID:             batchID,
		Confidence:          c.Confidence,
		SourceQuote:         c.SourceQuote,
		SourceInteractionID: derefString(seg.InteractionID),
		SourceEntityID:      fromID,
		Context:             seg.Topic,
	}); err != nil {
		return "", err
	}
	return created.ID, nil
}

// resolveName runs the disambiguation scorer with the segment's context.
func (o *Orchestrator) resolveName(ctx context.Context, name string, seg *ent.TopicalSegment) (string, bool) {
	if name == "" {
		return "", false
	}
	best, ok, err := o.disambig.Best(ctx, normalize.Name(name), models.DisambiguationContext{
		ChatID: seg.ChatID,
	})
	if err != nil || !ok || best == nil {
		return "", false
	}
	return best.EntityID, true
}

// confirmExistingFact merges a duplicate candidate into the existing fact:
// confirmation bump plus provenance.
func (o *Orchestrator) confirmExistingFact(ctx context.Context, tx *ent.Tx, factID string, seg *ent.TopicalSegment) error {
	f, err := tx.EntityFact.Get(ctx, factID)
	if err != nil {
		return fmt.Errorf("failed to load existing fact: %w", err)
	}
	return tx.EntityFact.UpdateOne(f).
		SetConfirmationCount(f.ConfirmationCount + 1).
		SetMetadata(appendProvenance(f.Metadata, seg)).
		Exec(ctx)
}

func (o *Orchestrator) confirmExistingActivity(ctx context.Context, tx *ent.Tx, activityID string, seg *ent.TopicalSegment) error {
	a, err := tx.Activity.Get(ctx, activityID)
	if err != nil {
		return fmt.Errorf("failed to load existing activity: %w", err)
	}
	return tx.Activity.UpdateOne(a).
		SetConfirmationCount(a.ConfirmationCount + 1).
		SetMetadata(appendProvenance(a.Metadata, seg)).
		Exec(ctx)
}

func (o *Orchestrator) confirmExistingCommitment(ctx context.Context, tx *ent.Tx, commitmentID string, seg *ent.TopicalSegment) error {
	c, err := tx.Commitment.Get(ctx, commitmentID)
	if err != nil {
		return fmt.Errorf("failed to load existing commitment: %w", err)
	}
	return tx.Commitment.UpdateOne(c).
		SetConfirmationCount(c.ConfirmationCount + 1).
		SetMetadata(appendProvenance(c.Metadata, seg)).
		Exec(ctx)
}

// appendProvenance records the confirming segment on the existing row.
func appendProvenance(metadata map[string]interface{}, seg *ent.TopicalSegment) map[string]interface{} {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	sources, _ := metadata["confirmed_by_segments"].([]interface{})
	for _, s := range sources {
		if s == seg.ID {
			return metadata
		}
	}
	metadata["confirmed_by_segments"] = append(sources, seg.ID)
	return metadata
}

// markFailed records an extraction failure with exponential backoff, up to
// the attempt cap.
func (o *Orchestrator) markFailed(ctx context.Context, seg *ent.TopicalSegment, cause error) error {
	attempts := seg.ExtractionAttempts + 1
	update := o.client.TopicalSegment.UpdateOneID(seg.ID).
		SetExtractionStatus(topicalsegment.ExtractionStatusFailed).
		SetExtractionError(cause.Error()).
		SetExtractionAttempts(attempts)
	if attempts < o.cfg.MaxExtractionAttempts {
		backoff := extractionBackoffBase << (attempts - 1)
		update.SetNextExtractionAt(time.Now().UTC().Add(backoff))
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record extraction failure: %w", err)
	}

	slog.Warn("Segment extraction failed",
		"segment_id", seg.ID,
		"attempt", attempts,
		"error", cause)
	return cause
}

// parseFlexibleDate accepts RFC3339 or a bare date.
func parseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
