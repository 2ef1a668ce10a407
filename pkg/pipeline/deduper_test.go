package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memograph/memograph/pkg/config"
)

func testDeduper() *Deduper {
	return &Deduper{cfg: &config.PipelineConfig{
		SimilarityThreshold: 0.85,
		ReviewThreshold:     0.60,
	}}
}

func TestDeduperDecide(t *testing.T) {
	d := testDeduper()

	t.Run("no neighbors creates", func(t *testing.T) {
		got := d.decide(nil, "Quarterly Report")
		assert.Equal(t, ActionCreate, got.Action)
	})

	t.Run("high similarity skips", func(t *testing.T) {
		got := d.decide([]neighbor{{id: "n1", name: "Annual Report", similarity: 0.92}}, "Quarterly Report")
		assert.Equal(t, ActionSkip, got.Action)
		assert.Equal(t, "n1", got.ExistingID)
		assert.Equal(t, 0.92, got.Similarity)
	})

	t.Run("gray zone flags for review", func(t *testing.T) {
		got := d.decide([]neighbor{{id: "n1", name: "Annual Report", similarity: 0.7}}, "Quarterly Report")
		assert.Equal(t, ActionReview, got.Action)
		assert.Equal(t, "n1", got.ExistingID)
	})

	t.Run("low similarity creates", func(t *testing.T) {
		got := d.decide([]neighbor{{id: "n1", name: "Annual Report", similarity: 0.3}}, "Quarterly Report")
		assert.Equal(t, ActionCreate, got.Action)
	})

	t.Run("near identical name skips regardless of embedding", func(t *testing.T) {
		// One character off on a long name clears the 0.90 ratio bar even
		// though the embedding similarity alone would only warrant review.
		got := d.decide([]neighbor{{id: "n1", name: "Quarterly Reports", similarity: 0.65}}, "Quarterly Report")
		assert.Equal(t, ActionSkip, got.Action)
		assert.Equal(t, "n1", got.ExistingID)
	})

	t.Run("name match is case and punctuation insensitive", func(t *testing.T) {
		got := d.decide([]neighbor{{id: "n1", name: "quarterly report.", similarity: 0.1}}, "Quarterly Report")
		assert.Equal(t, ActionSkip, got.Action)
	})

	t.Run("strong name match beats a closer embedding neighbor", func(t *testing.T) {
		neighbors := []neighbor{
			{id: "close", name: "Completely Different", similarity: 0.7},
			{id: "same", name: "Quarterly Report", similarity: 0.62},
		}
		got := d.decide(neighbors, "Quarterly Report")
		assert.Equal(t, ActionSkip, got.Action)
		assert.Equal(t, "same", got.ExistingID)
	})
}
