package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func TestFactService(t *testing.T) {
	client := testdb.NewTestClient(t)
	entities := NewEntityService(client.Client)
	service := NewFactService(client.Client)
	ctx := context.Background()

	newPerson := func(t *testing.T, name string) string {
		t.Helper()
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: name})
		require.NoError(t, err)
		return e.ID
	}

	t.Run("creates a fact with defaults", func(t *testing.T) {
		id := newPerson(t, "Fact Holder")
		f, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "birthday", Value: "june 12"})
		require.NoError(t, err)
		assert.Equal(t, entityfact.SourceManual, f.Source)
		assert.Equal(t, entityfact.StatusActive, f.Status)
		assert.Equal(t, 1.0, f.Confidence)
	})

	t.Run("validates input", func(t *testing.T) {
		id := newPerson(t, "Strict Holder")
		var validErr *ValidationError

		_, err := service.Create(ctx, id, models.CreateFactRequest{Value: "no type"})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, id, models.CreateFactRequest{FactType: "empty"})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, id, models.CreateFactRequest{FactType: "x", Value: "y", Confidence: 1.5})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, "missing-entity", models.CreateFactRequest{FactType: "x", Value: "y"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("canonical prefers confidence and recency", func(t *testing.T) {
		id := newPerson(t, "Employed Person")
		_, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "employer", Value: "Shaky Guess", Confidence: 0.4})
		require.NoError(t, err)
		strong, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "employer", Value: "Solid Source", Confidence: 0.95})
		require.NoError(t, err)

		canonical, err := service.Canonical(ctx, id, "employer")
		require.NoError(t, err)
		assert.Equal(t, strong.ID, canonical.ID)

		_, err = service.Canonical(ctx, id, "shoe_size")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("supersede replaces without mutating the original", func(t *testing.T) {
		id := newPerson(t, "Mover")
		original, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "city", Value: "Lisbon"})
		require.NoError(t, err)

		replacement, err := service.Supersede(ctx, original.ID, models.CreateFactRequest{Value: "Porto"})
		require.NoError(t, err)
		assert.Equal(t, "city", replacement.FactType)
		assert.Equal(t, "Porto", replacement.Value)

		old, err := client.EntityFact.Get(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", old.Value)
		assert.Equal(t, entityfact.RankDeprecated, old.Rank)
		require.NotNil(t, old.SupersededBy)
		assert.Equal(t, replacement.ID, *old.SupersededBy)

		// A superseded fact cannot be superseded again.
		_, err = service.Supersede(ctx, original.ID, models.CreateFactRequest{Value: "Braga"})
		assert.ErrorIs(t, err, ErrConflict)

		canonical, err := service.Canonical(ctx, id, "city")
		require.NoError(t, err)
		assert.Equal(t, replacement.ID, canonical.ID)
	})

	t.Run("supersession chain walks to the newest fact", func(t *testing.T) {
		id := newPerson(t, "Serial Mover")
		first, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "city", Value: "A"})
		require.NoError(t, err)
		second, err := service.Supersede(ctx, first.ID, models.CreateFactRequest{Value: "B"})
		require.NoError(t, err)
		third, err := service.Supersede(ctx, second.ID, models.CreateFactRequest{Value: "C"})
		require.NoError(t, err)

		chain, err := service.SupersessionChain(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, first.ID, chain[0].ID)
		assert.Equal(t, second.ID, chain[1].ID)
		assert.Equal(t, third.ID, chain[2].ID)
	})

	t.Run("soft delete hides the fact", func(t *testing.T) {
		id := newPerson(t, "Forgetful")
		f, err := service.Create(ctx, id, models.CreateFactRequest{FactType: "nickname", Value: "Ace"})
		require.NoError(t, err)
		require.NoError(t, service.SoftDelete(ctx, f.ID))

		listed, err := service.List(ctx, id, models.FactFilters{})
		require.NoError(t, err)
		assert.Empty(t, listed)

		assert.ErrorIs(t, service.SoftDelete(ctx, f.ID), ErrNotFound)
	})
}
