package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/commitment"
	testdb "github.com/memograph/memograph/test/database"
)

type captureNotifier struct {
	notified []string
	fail     bool
}

func (n *captureNotifier) Notify(_ context.Context, c *ent.Commitment) error {
	if n.fail {
		return errors.New("delivery down")
	}
	n.notified = append(n.notified, c.ID)
	return nil
}

func newCommitment(t *testing.T, client *ent.Client, status commitment.Status, due, nextReminder *time.Time, rule string) *ent.Commitment {
	t.Helper()
	builder := client.Commitment.Create().
		SetID(uuid.New().String()).
		SetTitle("call the dentist").
		SetStatus(status)
	if due != nil {
		builder.SetDueDate(*due)
	}
	if nextReminder != nil {
		builder.SetNextReminderAt(*nextReminder)
	}
	if rule != "" {
		builder.SetRecurrenceRule(rule)
	}
	c, err := builder.Save(context.Background())
	require.NoError(t, err)
	return c
}

func TestFireDueReminders(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("fires and advances along the ladder", func(t *testing.T) {
		notifier := &captureNotifier{}
		service := NewService(client.Client, notifier)

		due := time.Now().UTC().Add(48 * time.Hour)
		past := time.Now().UTC().Add(-time.Minute)
		c := newCommitment(t, client.Client, commitment.StatusPending, &due, &past, "")

		fired, err := service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)
		assert.Equal(t, []string{c.ID}, notifier.notified)

		got, err := client.Commitment.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ReminderCount)
		require.NotNil(t, got.NextReminderAt)
		assert.WithinDuration(t, due.Add(-24*time.Hour), *got.NextReminderAt, time.Second)

		// Advanced into the future, so a second scan is quiet.
		fired, err = service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, fired)
	})

	t.Run("recurrence advances past now", func(t *testing.T) {
		notifier := &captureNotifier{}
		service := NewService(client.Client, notifier)

		// The reminder is hours late; the next slot must still land ahead.
		past := time.Now().UTC().Add(-5 * time.Hour)
		c := newCommitment(t, client.Client, commitment.StatusInProgress, nil, &past, "every 2 hours")

		fired, err := service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)

		got, err := client.Commitment.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got.NextReminderAt)
		assert.True(t, got.NextReminderAt.After(time.Now().UTC()))
	})

	t.Run("one-shot without a due date stops reminding", func(t *testing.T) {
		notifier := &captureNotifier{}
		service := NewService(client.Client, notifier)

		past := time.Now().UTC().Add(-time.Minute)
		c := newCommitment(t, client.Client, commitment.StatusPending, nil, &past, "")

		fired, err := service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)

		got, err := client.Commitment.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got.NextReminderAt)
	})

	t.Run("failed delivery leaves the reminder scheduled", func(t *testing.T) {
		notifier := &captureNotifier{fail: true}
		service := NewService(client.Client, notifier)

		past := time.Now().UTC().Add(-time.Minute)
		c := newCommitment(t, client.Client, commitment.StatusPending, nil, &past, "")

		fired, err := service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, fired)

		got, err := client.Commitment.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.ReminderCount)
		require.NotNil(t, got.NextReminderAt)
	})

	t.Run("draft and completed commitments never fire", func(t *testing.T) {
		notifier := &captureNotifier{}
		service := NewService(client.Client, notifier)

		past := time.Now().UTC().Add(-time.Minute)
		newCommitment(t, client.Client, commitment.StatusDraft, nil, &past, "")
		newCommitment(t, client.Client, commitment.StatusCompleted, nil, &past, "")

		fired, err := service.FireDueReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, fired)
	})
}

func TestFlipOverdue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewService(client.Client, &captureNotifier{})
	ctx := context.Background()

	wayPast := time.Now().UTC().Add(-3 * time.Hour)
	justPast := time.Now().UTC().Add(-30 * time.Minute)

	late := newCommitment(t, client.Client, commitment.StatusPending, &wayPast, nil, "")
	inGrace := newCommitment(t, client.Client, commitment.StatusInProgress, &justPast, nil, "")
	done := newCommitment(t, client.Client, commitment.StatusCompleted, &wayPast, nil, "")

	flipped, err := service.FlipOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	got, err := client.Commitment.Get(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, commitment.StatusOverdue, got.Status)

	got, err = client.Commitment.Get(ctx, inGrace.ID)
	require.NoError(t, err)
	assert.Equal(t, commitment.StatusInProgress, got.Status)

	got, err = client.Commitment.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, commitment.StatusCompleted, got.Status)
}
