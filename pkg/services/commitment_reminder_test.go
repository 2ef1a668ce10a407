package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/commitment"
)

func TestNextLadderReminder(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("far out lands on day-before rung", func(t *testing.T) {
		after := due.Add(-72 * time.Hour)
		got := NextLadderReminder(due, after)
		require.NotNil(t, got)
		assert.Equal(t, due.Add(-24*time.Hour), *got)
	})

	t.Run("inside a day lands on hour-before rung", func(t *testing.T) {
		after := due.Add(-5 * time.Hour)
		got := NextLadderReminder(due, after)
		require.NotNil(t, got)
		assert.Equal(t, due.Add(-time.Hour), *got)
	})

	t.Run("past hour-before goes hourly", func(t *testing.T) {
		after := due.Add(-30 * time.Minute)
		got := NextLadderReminder(due, after)
		require.NotNil(t, got)
		assert.Equal(t, due, *got)
		assert.True(t, got.After(after))
	})

	t.Run("overdue keeps ticking hourly", func(t *testing.T) {
		after := due.Add(90 * time.Minute)
		got := NextLadderReminder(due, after)
		require.NotNil(t, got)
		assert.Equal(t, due.Add(2*time.Hour), *got)
		assert.True(t, got.After(after))
	})
}

func TestParseRecurrenceRule(t *testing.T) {
	tests := []struct {
		rule string
		want time.Duration
	}{
		{"hourly", time.Hour},
		{"daily", 24 * time.Hour},
		{"weekly", 7 * 24 * time.Hour},
		{"monthly", 30 * 24 * time.Hour},
		{"Daily", 24 * time.Hour},
		{"every 30 minutes", 30 * time.Minute},
		{"every 2 hours", 2 * time.Hour},
		{"every 3 days", 3 * 24 * time.Hour},
		{"every 1 weeks", 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			got, err := ParseRecurrenceRule(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{"", "fortnightly", "every minutes", "every 0 hours", "every -1 days", "every 2 months"}
	for _, rule := range invalid {
		_, err := ParseRecurrenceRule(rule)
		assert.Error(t, err, "rule %q should not parse", rule)
	}
}

func TestFirstReminder(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("done statuses get no reminder", func(t *testing.T) {
		due := now.Add(48 * time.Hour)
		assert.Nil(t, firstReminder(&due, "", commitment.StatusCompleted, now))
		assert.Nil(t, firstReminder(&due, "", commitment.StatusCancelled, now))
	})

	t.Run("dated one-shot uses the ladder", func(t *testing.T) {
		due := now.Add(48 * time.Hour)
		got := firstReminder(&due, "", commitment.StatusPending, now)
		require.NotNil(t, got)
		assert.Equal(t, due.Add(-24*time.Hour), *got)
	})

	t.Run("undated one-shot has no reminder", func(t *testing.T) {
		assert.Nil(t, firstReminder(nil, "", commitment.StatusPending, now))
	})

	t.Run("future due with recurrence fires at the due date", func(t *testing.T) {
		due := now.Add(2 * time.Hour)
		got := firstReminder(&due, "daily", commitment.StatusInProgress, now)
		require.NotNil(t, got)
		assert.Equal(t, due, *got)
	})

	t.Run("recurrence without due date starts one interval out", func(t *testing.T) {
		got := firstReminder(nil, "every 2 hours", commitment.StatusPending, now)
		require.NotNil(t, got)
		assert.Equal(t, now.Add(2*time.Hour), *got)
	})

	t.Run("invalid rule yields no reminder", func(t *testing.T) {
		assert.Nil(t, firstReminder(nil, "sometimes", commitment.StatusPending, now))
	})
}
