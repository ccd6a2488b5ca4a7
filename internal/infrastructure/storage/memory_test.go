package storage_test

import (
	"testing"

	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCopiesOnRead(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()

	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "a", Title: "Original"}))

	got, err := store.GetRecipe("a")
	require.NoError(t, err)
	got.Title = "Mutated"

	again, err := store.GetRecipe("a")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title, "callers must not be able to mutate stored state")
}

func TestMemoryStoreCopiesOnWrite(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()

	r := &recipe.Recipe{ID: "a", Title: "Original"}
	require.NoError(t, store.SaveRecipe(r))
	r.Title = "Mutated"

	got, err := store.GetRecipe("a")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
}
