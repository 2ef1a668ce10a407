package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/queue"
)

// CommitmentService manages promises, requests and recurring reminders.
type CommitmentService struct {
	client *ent.Client
}

// NewCommitmentService creates a new CommitmentService.
func NewCommitmentService(client *ent.Client) *CommitmentService {
	return &CommitmentService{client: client}
}

// Create records a commitment and schedules its first reminder.
func (s *CommitmentService) Create(ctx context.Context, req models.CreateCommitmentRequest) (*ent.Commitment, error) {
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.RecurrenceRule != "" {
		if _, err := ParseRecurrenceRule(req.RecurrenceRule); err != nil {
			return nil, NewValidationError("recurrence_rule", err.Error())
		}
	}

	status := commitment.StatusPending
	if req.Status != "" {
		status = commitment.Status(req.Status)
	}
	confidence := req.Confidence
	if confidence == 0 {
		confidence = 1.0
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Commitment.Create().
		SetID(uuid.New().String()).
		SetType(commitment.Type(req.Type)).
		SetTitle(req.Title).
		SetStatus(status).
		SetConfidence(confidence)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.FromEntityID != "" {
		builder.SetFromEntityID(req.FromEntityID)
	}
	if req.ToEntityID != "" {
		builder.SetToEntityID(req.ToEntityID)
	}
	if req.ActivityID != "" {
		builder.SetActivityID(req.ActivityID)
	}
	if req.SourceMessageID != "" {
		builder.SetSourceMessageID(req.SourceMessageID)
	}
	if req.DueDate != nil {
		builder.SetDueDate(*req.DueDate)
	}
	if req.RecurrenceRule != "" {
		builder.SetRecurrenceRule(req.RecurrenceRule)
	}
	if next := firstReminder(req.DueDate, req.RecurrenceRule, status, time.Now().UTC()); next != nil {
		builder.SetNextReminderAt(*next)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}

	if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindCommitment, created.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue commitment embedding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit commitment: %w", err)
	}
	return created, nil
}

// Get returns a commitment.
func (s *CommitmentService) Get(ctx context.Context, id string) (*ent.Commitment, error) {
	c, err := s.client.Commitment.Query().
		Where(commitment.IDEQ(id), commitment.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get commitment: %w", err)
	}
	return c, nil
}

// List lists commitments, soonest due first, undated last.
func (s *CommitmentService) List(ctx context.Context, filters models.CommitmentFilters) ([]*ent.Commitment, error) {
	query := s.client.Commitment.Query()
	if filters.Type != "" {
		query = query.Where(commitment.TypeEQ(commitment.Type(filters.Type)))
	}
	if filters.Status != "" {
		query = query.Where(commitment.StatusEQ(commitment.Status(filters.Status)))
	}
	if filters.FromEntityID != "" {
		query = query.Where(commitment.FromEntityIDEQ(filters.FromEntityID))
	}
	if filters.ToEntityID != "" {
		query = query.Where(commitment.ToEntityIDEQ(filters.ToEntityID))
	}
	if filters.ActivityID != "" {
		query = query.Where(commitment.ActivityIDEQ(filters.ActivityID))
	}
	if filters.DueBefore != nil {
		query = query.Where(commitment.DueDateLTE(*filters.DueBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(commitment.DeletedAtIsNil())
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	commitments, err := query.
		Order(
			ent.Asc(commitment.FieldDueDate),
			ent.Desc(commitment.FieldCreatedAt),
		).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	return commitments, nil
}

// Update edits a commitment. Due-date or status changes reschedule the
// reminder ladder.
func (s *CommitmentService) Update(ctx context.Context, id string, req models.UpdateCommitmentRequest) (*ent.Commitment, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Commitment.UpdateOne(c)
	status := c.Status
	due := c.DueDate
	rule := c.RecurrenceRule
	reschedule := false

	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewValidationError("title", "cannot be empty")
		}
		update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Status != nil {
		status = commitment.Status(*req.Status)
		update.SetStatus(status)
		reschedule = true
	}
	if req.ActivityID != nil {
		if *req.ActivityID == "" {
			update.ClearActivityID()
		} else {
			update.SetActivityID(*req.ActivityID)
		}
	}
	if req.DueDate != nil {
		due = req.DueDate
		update.SetDueDate(*req.DueDate)
		reschedule = true
	}
	if req.RecurrenceRule != nil {
		if *req.RecurrenceRule != "" {
			if _, err := ParseRecurrenceRule(*req.RecurrenceRule); err != nil {
				return nil, NewValidationError("recurrence_rule", err.Error())
			}
		}
		rule = *req.RecurrenceRule
		update.SetRecurrenceRule(rule)
		reschedule = true
	}

	if reschedule {
		if next := firstReminder(due, rule, status, time.Now().UTC()); next != nil {
			update.SetNextReminderAt(*next)
		} else {
			update.ClearNextReminderAt()
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update commitment: %w", err)
	}
	return updated, nil
}

// SoftDelete marks a commitment deleted, which also stops its reminders.
func (s *CommitmentService) SoftDelete(ctx context.Context, id string) error {
	n, err := s.client.Commitment.Update().
		Where(commitment.IDEQ(id), commitment.DeletedAtIsNil()).
		SetDeletedAt(time.Now().UTC()).
		ClearNextReminderAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete commitment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ScheduleReminders computes and stores the first reminder for a commitment
// that just became active. Called by the approval workflow.
func (s *CommitmentService) ScheduleReminders(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	next := firstReminder(c.DueDate, c.RecurrenceRule, c.Status, time.Now().UTC())
	update := s.client.Commitment.UpdateOne(c)
	if next != nil {
		update.SetNextReminderAt(*next)
	} else {
		update.ClearNextReminderAt()
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}
	return nil
}

// remindable reports whether a status still receives reminders.
func remindable(status commitment.Status) bool {
	return status == commitment.StatusPending || status == commitment.StatusInProgress
}

// firstReminder picks the initial next_reminder_at for a commitment.
func firstReminder(due *time.Time, recurrenceRule string, status commitment.Status, now time.Time) *time.Time {
	if !remindable(status) {
		return nil
	}
	if recurrenceRule != "" {
		interval, err := ParseRecurrenceRule(recurrenceRule)
		if err != nil {
			return nil
		}
		base := now
		if due != nil && due.After(now) {
			base = *due
			return &base
		}
		next := base.Add(interval)
		return &next
	}
	if due == nil {
		return nil
	}
	return NextLadderReminder(*due, now)
}

// NextLadderReminder walks the fixed ladder for dated one-shot commitments:
// due-24h, due-1h, then hourly.
func NextLadderReminder(due, after time.Time) *time.Time {
	dayBefore := due.Add(-24 * time.Hour)
	hourBefore := due.Add(-time.Hour)

	switch {
	case after.Before(dayBefore):
		return &dayBefore
	case after.Before(hourBefore):
		return &hourBefore
	default:
		// Hourly from the due-1h rung until the status leaves the
		// remindable set.
		elapsed := after.Sub(hourBefore)
		steps := int64(elapsed/time.Hour) + 1
		next := hourBefore.Add(time.Duration(steps) * time.Hour)
		return &next
	}
}

// ParseRecurrenceRule parses the supported rule grammar into an interval:
// "hourly", "daily", "weekly", "monthly", or "every N minutes|hours|days|weeks".
func ParseRecurrenceRule(rule string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "hourly":
		return time.Hour, nil
	case "daily":
		return 24 * time.Hour, nil
	case "weekly":
		return 7 * 24 * time.Hour, nil
	case "monthly":
		return 30 * 24 * time.Hour, nil
	}

	parts := strings.Fields(strings.ToLower(rule))
	if len(parts) != 3 || parts[0] != "every" {
		return 0, fmt.Errorf("unsupported recurrence rule %q", rule)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid recurrence count %q", parts[1])
	}
	var unit time.Duration
	switch strings.TrimSuffix(parts[2], "s") {
	case "minute":
		unit = time.Minute
	case "hour":
		unit = time.Hour
	case "day":
		unit = 24 * time.Hour
	case "week":
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unsupported recurrence unit %q", parts[2])
	}
	return time.Duration(n) * unit, nil
}
