//go:build integration
// +build integration

package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/repositories/spells"
	"github.com/KirkDiggler/rune-caster/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// Uses a throwaway Redis container; skips when Docker is unavailable
	client := testutils.CreateRedisContainerClient(t)

	repo := spells.NewRedisRepository(&spells.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and retrieve spell", func(t *testing.T) {
		err := repo.Create(ctx, newSpell("frost"))
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, "frost")
		require.NoError(t, err)
		assert.Equal(t, newSpell("frost"), retrieved)
	})

	t.Run("create duplicate spell fails", func(t *testing.T) {
		err := repo.Create(ctx, newSpell("frost"))
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("list feeds a spellbook", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newSpell("arc")))

		book, err := catalog.LoadSpellbook(ctx, catalog.DefaultRegistry(), repo)
		require.NoError(t, err)
		assert.Equal(t, []string{"arc", "frost"}, book.Keys())
	})

	t.Run("delete removes the index entry", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "arc"))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "frost", list[0].Key)
	})
}
