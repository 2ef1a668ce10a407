package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func br(start int, topic string) models.SegmentBreak {
	return models.SegmentBreak{StartIndex: start, Topic: topic, Confidence: 0.9}
}

func starts(breaks []models.SegmentBreak) []int {
	out := make([]int, len(breaks))
	for i, b := range breaks {
		out[i] = b.StartIndex
	}
	return out
}

func TestIntersectBreaks(t *testing.T) {
	t.Run("keeps breaks confirmed by embedding shifts", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(0, "intro"), br(10, "planning"), br(20, "budget")}
		shifts := map[int]bool{9: true} // within tolerance of 10, nothing near 20

		got := intersectBreaks(proposed, shifts, 30, 3, 80)
		assert.Equal(t, []int{0, 10}, starts(got))
	})

	t.Run("always starts a segment at index zero", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(5, "late start")}
		got := intersectBreaks(proposed, map[int]bool{5: true}, 12, 3, 80)

		require.NotEmpty(t, got)
		assert.Equal(t, 0, got[0].StartIndex)
		assert.Equal(t, "late start", got[0].Topic)
	})

	t.Run("synthesizes a break when the model proposes none", func(t *testing.T) {
		got := intersectBreaks(nil, nil, 10, 3, 80)
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].StartIndex)
		assert.Equal(t, "Conversation", got[0].Topic)
	})

	t.Run("merges undersized segments into predecessor", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(0, "a"), br(2, "b"), br(8, "c")}
		shifts := map[int]bool{2: true, 8: true}

		got := intersectBreaks(proposed, shifts, 20, 3, 80)
		// The break at 2 would leave segment "a" with only 2 messages.
		assert.Equal(t, []int{0, 8}, starts(got))
	})

	t.Run("drops a trailing break that leaves a short tail", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(0, "a"), br(9, "b")}
		shifts := map[int]bool{9: true}

		got := intersectBreaks(proposed, shifts, 10, 3, 80)
		assert.Equal(t, []int{0}, starts(got))
	})

	t.Run("splits oversized segments with continued topics", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(0, "marathon")}
		got := intersectBreaks(proposed, nil, 12, 3, 5)

		assert.Equal(t, []int{0, 5, 10}, starts(got))
		assert.Equal(t, "marathon", got[0].Topic)
		assert.Equal(t, "marathon (continued)", got[1].Topic)
		assert.Equal(t, "marathon (continued)", got[2].Topic)
	})

	t.Run("ignores out of range breaks", func(t *testing.T) {
		proposed := []models.SegmentBreak{br(0, "a"), br(-1, "x"), br(99, "y")}
		got := intersectBreaks(proposed, nil, 10, 3, 80)
		assert.Equal(t, []int{0}, starts(got))
	})
}

func TestNearShift(t *testing.T) {
	shifts := map[int]bool{10: true}
	assert.True(t, nearShift(10, shifts))
	assert.True(t, nearShift(8, shifts))
	assert.True(t, nearShift(12, shifts))
	assert.False(t, nearShift(7, shifts))
	assert.False(t, nearShift(13, shifts))
	assert.False(t, nearShift(10, nil))
}

func TestCosineDistance(t *testing.T) {
	assert.InDelta(t, 0.0, cosineDistance([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 1.0, cosineDistance([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, 2.0, cosineDistance([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	// Mismatched or zero vectors are treated as maximally distant.
	assert.InDelta(t, 1.0, cosineDistance([]float32{1, 0}, []float32{1}), 1e-6)
	assert.InDelta(t, 1.0, cosineDistance([]float32{0, 0}, []float32{1, 0}), 1e-6)
}

func TestIdsOverlap(t *testing.T) {
	assert.True(t, idsOverlap([]string{"a", "b"}, []string{"b", "c"}))
	assert.False(t, idsOverlap([]string{"a"}, []string{"b"}))
	assert.False(t, idsOverlap(nil, []string{"a"}))
}

func TestSegmentsRelated(t *testing.T) {
	s := &Segmenter{}
	now := time.Now().UTC()
	base := &ent.TopicalSegment{
		ID:             "seg-a",
		Keywords:       []string{"garden", "redesign", "quotes"},
		ParticipantIds: []string{"ent-1"},
		StartedAt:      now,
	}

	t.Run("keyword jaccard at half links", func(t *testing.T) {
		other := &ent.TopicalSegment{
			ID:        "seg-b",
			Keywords:  []string{"garden", "redesign", "budget"},
			StartedAt: now.AddDate(0, 0, -20),
		}
		assert.True(t, s.segmentsRelated(base, other))
	})

	t.Run("participant overlap needs time proximity", func(t *testing.T) {
		near := &ent.TopicalSegment{
			ID:             "seg-c",
			ParticipantIds: []string{"ent-1", "ent-2"},
			StartedAt:      now.Add(-20 * time.Hour),
		}
		far := &ent.TopicalSegment{
			ID:             "seg-d",
			ParticipantIds: []string{"ent-1"},
			StartedAt:      now.Add(-30 * time.Hour),
		}
		assert.True(t, s.segmentsRelated(base, near))
		assert.False(t, s.segmentsRelated(base, far))
	})

	t.Run("shared extracted item links regardless of keywords or people", func(t *testing.T) {
		a := &ent.TopicalSegment{
			ID:               "seg-e",
			Keywords:         []string{"invoices"},
			ParticipantIds:   []string{"ent-9"},
			ExtractedItemIds: []string{"activity-7"},
			StartedAt:        now,
		}
		b := &ent.TopicalSegment{
			ID:               "seg-f",
			Keywords:         []string{"vacation"},
			ParticipantIds:   []string{"ent-8"},
			ExtractedItemIds: []string{"fact-1", "activity-7"},
			StartedAt:        now.AddDate(0, 0, -10),
		}
		assert.True(t, s.segmentsRelated(a, b))

		b.ExtractedItemIds = []string{"fact-1"}
		assert.False(t, s.segmentsRelated(a, b))
	})
}

func TestSegmenterRelinkExtracted(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewSegmenter(client.Client, nil, nil, &config.PipelineConfig{})
	ctx := context.Background()
	now := time.Now().UTC()

	mkSegment := func(t *testing.T, chatID string, keywords, participants, items []string) *ent.TopicalSegment {
		t.Helper()
		seg, err := client.TopicalSegment.Create().
			SetID(uuid.New().String()).
			SetChatID(chatID).
			SetTopic("topic " + chatID).
			SetKeywords(keywords).
			SetParticipantIds(participants).
			SetStartedAt(now.AddDate(0, 0, -3)).
			SetEndedAt(now.AddDate(0, 0, -3).Add(time.Hour)).
			SetExtractedItemIds(items).
			Save(ctx)
		require.NoError(t, err)
		return seg
	}

	// Different chats, disjoint keywords and participants; only the shared
	// activity ID ties them together.
	left := mkSegment(t, "chat-1", []string{"sketches", "fence"}, []string{"ent-1"}, []string{"activity-42"})
	right := mkSegment(t, "chat-2", []string{"groceries"}, []string{"ent-2"}, []string{"activity-42", "fact-3"})
	loner := mkSegment(t, "chat-3", []string{"movies"}, []string{"ent-3"}, []string{"fact-9"})

	require.NoError(t, s.RelinkExtracted(ctx, left.ID))

	got, err := client.TopicalSegment.Get(ctx, left.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{right.ID}, got.RelatedSegmentIds)

	// The link is symmetric and the unrelated segment stays untouched.
	back, err := client.TopicalSegment.Get(ctx, right.ID)
	require.NoError(t, err)
	assert.Contains(t, back.RelatedSegmentIds, left.ID)

	alone, err := client.TopicalSegment.Get(ctx, loner.ID)
	require.NoError(t, err)
	assert.Empty(t, alone.RelatedSegmentIds)

	// Relinking again keeps the link set stable.
	require.NoError(t, s.RelinkExtracted(ctx, left.ID))
	again, err := client.TopicalSegment.Get(ctx, left.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{right.ID}, again.RelatedSegmentIds)
}
