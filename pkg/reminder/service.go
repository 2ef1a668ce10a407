// Package reminder schedules commitment reminders and the overdue sweep.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/pkg/services"
)

// scanInterval is the reminder and overdue scan cadence.
const scanInterval = time.Minute

// overdueGrace is how far past the due date a commitment may run before
// the overdue flip.
const overdueGrace = time.Hour

// Notifier delivers one reminder. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, c *ent.Commitment) error
}

// LogNotifier writes reminders to the structured log. The default until a
// delivery channel is configured.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(_ context.Context, c *ent.Commitment) error {
	slog.Info("Commitment reminder",
		"commitment_id", c.ID,
		"title", c.Title,
		"due_date", c.DueDate,
		"reminder_count", c.ReminderCount+1)
	return nil
}

// Service runs the minute scans: fire due reminders and flip overdue
// commitments. Idempotent across replicas.
type Service struct {
	client   *ent.Client
	notifier Notifier

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new reminder service.
func NewService(client *ent.Client, notifier Notifier) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Service{client: client, notifier: notifier}
}

// Start launches the background scan loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Reminder service started", "interval", scanInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Reminder service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.FireDueReminders(ctx); err != nil {
				slog.Error("Reminder scan failed", "error", err)
			}
			if _, err := s.FlipOverdue(ctx); err != nil {
				slog.Error("Overdue scan failed", "error", err)
			}
		}
	}
}

// FireDueReminders notifies every commitment whose reminder is due, bumps
// its count, and advances next_reminder_at along the ladder or the
// recurrence rule.
func (s *Service) FireDueReminders(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	due, err := s.client.Commitment.Query().
		Where(
			commitment.NextReminderAtLTE(now),
			commitment.NextReminderAtNotNil(),
			commitment.DeletedAtIsNil(),
			commitment.StatusIn(commitment.StatusPending, commitment.StatusInProgress),
		).
		Order(ent.Asc(commitment.FieldNextReminderAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query due reminders: %w", err)
	}

	fired := 0
	for _, c := range due {
		if err := s.notifier.Notify(ctx, c); err != nil {
			slog.Warn("Reminder delivery failed",
				"commitment_id", c.ID, "error", err)
			continue
		}

		update := s.client.Commitment.UpdateOne(c).
			SetReminderCount(c.ReminderCount + 1)
		if next := s.advance(c, now); next != nil {
			update.SetNextReminderAt(*next)
		} else {
			update.ClearNextReminderAt()
		}
		if err := update.Exec(ctx); err != nil {
			return fired, fmt.Errorf("failed to advance reminder for %s: %w", c.ID, err)
		}
		fired++
	}

	if fired > 0 {
		slog.Info("Reminders fired", "count", fired)
	}
	return fired, nil
}

// advance computes the next reminder time after a fired one.
func (s *Service) advance(c *ent.Commitment, now time.Time) *time.Time {
	if c.RecurrenceRule != "" {
		interval, err := services.ParseRecurrenceRule(c.RecurrenceRule)
		if err != nil {
			slog.Warn("Invalid recurrence rule",
				"commitment_id", c.ID, "rule", c.RecurrenceRule)
			return nil
		}
		base := now
		if c.NextReminderAt != nil {
			base = *c.NextReminderAt
		}
		next := base.Add(interval)
		for !next.After(now) {
			next = next.Add(interval)
		}
		return &next
	}
	if c.DueDate == nil {
		return nil
	}
	return services.NextLadderReminder(*c.DueDate, now)
}

// FlipOverdue atomically moves pending/in_progress commitments past the
// grace window to overdue.
func (s *Service) FlipOverdue(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-overdueGrace)
	n, err := s.client.Commitment.Update().
		Where(
			commitment.StatusIn(commitment.StatusPending, commitment.StatusInProgress),
			commitment.DueDateLT(cutoff),
			commitment.DeletedAtIsNil(),
		).
		SetStatus(commitment.StatusOverdue).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to flip overdue commitments: %w", err)
	}
	if n > 0 {
		slog.Info("Commitments flipped to overdue", "count", n)
	}
	return n, nil
}
