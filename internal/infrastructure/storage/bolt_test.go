package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"pantry-planner/internal/core/mealplan"
	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBolt(t *testing.T) *storage.BoltStore {
	t.Helper()
	store, err := storage.NewBoltStore(filepath.Join(t.TempDir(), "pantry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltRecipeRoundTrip(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	now := time.Now().UTC().Truncate(time.Second)
	r := &recipe.Recipe{
		ID:          "r1",
		Title:       "Pancakes",
		Ingredients: "2 cups flour\n1 cup milk",
		Steps:       "Mix and fry.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.SaveRecipe(r))

	got, err := store.GetRecipe("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.Title, got.Title)
	assert.Equal(t, r.Ingredients, got.Ingredients)
	assert.True(t, got.CreatedAt.Equal(now))
}

func TestBoltGetRecipeMissing(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	got, err := store.GetRecipe("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltListAndDeleteRecipes(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "a", Title: "A"}))
	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "b", Title: "B"}))

	recipes, err := store.ListRecipes()
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	require.NoError(t, store.DeleteRecipe("a"))
	recipes, err = store.ListRecipes()
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "b", recipes[0].ID)
}

func TestBoltSaveOverwrites(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "a", Title: "Before"}))
	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "a", Title: "After"}))

	got, err := store.GetRecipe("a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "After", got.Title)
}

func TestBoltMealPlanRoundTrip(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	e := &mealplan.Entry{ID: "e1", RecipeID: "r1", Day: "mon", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveMealPlanEntry(e))

	got, err := store.GetMealPlanEntry("e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mon", got.Day)

	require.NoError(t, store.DeleteMealPlanEntry("e1"))
	got, err = store.GetMealPlanEntry("e1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltClearMealPlanEntries(t *testing.T) {
	t.Parallel()
	store := openBolt(t)

	require.NoError(t, store.SaveMealPlanEntry(&mealplan.Entry{ID: "e1", RecipeID: "r1", Day: "mon"}))
	require.NoError(t, store.SaveMealPlanEntry(&mealplan.Entry{ID: "e2", RecipeID: "r2", Day: "tue"}))

	require.NoError(t, store.ClearMealPlanEntries())

	entries, err := store.ListMealPlanEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The bucket survives a clear and accepts new writes.
	require.NoError(t, store.SaveMealPlanEntry(&mealplan.Entry{ID: "e3", RecipeID: "r3", Day: "wed"}))
	entries, err = store.ListMealPlanEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pantry.db")

	store, err := storage.NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveRecipe(&recipe.Recipe{ID: "a", Title: "Keeps"}))
	require.NoError(t, store.Close())

	reopened, err := storage.NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetRecipe("a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Keeps", got.Title)
}
