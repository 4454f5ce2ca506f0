package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/repositories/spells"
)

func newSpell(key string) *catalog.SpellData {
	return &catalog.SpellData{
		Key:    key,
		Shape:  catalog.ComponentData{Type: "cone", Params: map[string]float64{"angle": 30}},
		Effect: catalog.ComponentData{Type: "damage"},
	}
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := spells.NewInMemoryRepository()

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newSpell("frost")))

		got, err := repo.Get(ctx, "frost")
		require.NoError(t, err)
		assert.Equal(t, newSpell("frost"), got)

		err = repo.Create(ctx, newSpell("frost"))
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("stored records are copies", func(t *testing.T) {
		got, err := repo.Get(ctx, "frost")
		require.NoError(t, err)
		got.Shape.Params["angle"] = 90

		again, err := repo.Get(ctx, "frost")
		require.NoError(t, err)
		assert.Equal(t, 30.0, again.Shape.Params["angle"])
	})

	t.Run("list is sorted", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newSpell("arc")))
		require.NoError(t, repo.Create(ctx, newSpell("zap")))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "arc", list[0].Key)
		assert.Equal(t, "frost", list[1].Key)
		assert.Equal(t, "zap", list[2].Key)
	})

	t.Run("update", func(t *testing.T) {
		changed := newSpell("arc")
		changed.BaseRange = catalog.Float64(40)
		require.NoError(t, repo.Update(ctx, changed))

		got, err := repo.Get(ctx, "arc")
		require.NoError(t, err)
		require.NotNil(t, got.BaseRange)
		assert.Equal(t, 40.0, *got.BaseRange)

		assert.True(t, errors.IsNotFound(repo.Update(ctx, newSpell("nope"))))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "zap"))
		_, err := repo.Get(ctx, "zap")
		assert.True(t, errors.IsNotFound(err))
		assert.True(t, errors.IsNotFound(repo.Delete(ctx, "zap")))
	})

	t.Run("validation", func(t *testing.T) {
		assert.True(t, errors.IsInvalidArgument(repo.Create(ctx, nil)))
		_, err := repo.Get(ctx, "")
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestInMemoryRepository_FeedsSpellbook(t *testing.T) {
	ctx := context.Background()
	repo := spells.NewInMemoryRepository()
	require.NoError(t, repo.Create(ctx, newSpell("frost")))

	book, err := catalog.LoadSpellbook(ctx, catalog.DefaultRegistry(), repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"frost"}, book.Keys())
}
