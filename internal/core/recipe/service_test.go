package recipe_test

import (
	"testing"

	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/storage"
	"pantry-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *recipe.Service {
	t.Helper()
	return recipe.NewService(storage.NewMemoryStore(), nil)
}

func TestServiceCreateAndGet(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	created, err := svc.Create(recipe.CreateInput{
		Title:       "Pancakes",
		Author:      "Ada",
		Ingredients: "2 cups flour\n1 cup milk\n2 eggs",
		Steps:       "Mix. Fry.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, "Ada", got.Author)
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	_, err := svc.Create(recipe.CreateInput{Title: "   ", Steps: "x"})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	_, err = svc.Create(recipe.CreateInput{Title: "Toast", Steps: "x", PrepTimeMinutes: -5})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestServiceGetUnknown(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	_, err := svc.Get("nope")
	assert.Equal(t, recipe.ErrNotFound, err)
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	created, err := svc.Create(recipe.CreateInput{Title: "Soup", Steps: "Boil."})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, recipe.CreateInput{
		Title:       "Onion Soup",
		Steps:       "Boil slowly.",
		Ingredients: "2 onions",
	})
	require.NoError(t, err)
	assert.Equal(t, "Onion Soup", updated.Title)
	assert.Equal(t, "2 onions", updated.Ingredients)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Onion Soup", got.Title)
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	created, err := svc.Create(recipe.CreateInput{Title: "Tea", Steps: "Steep."})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	assert.Equal(t, recipe.ErrNotFound, err)

	assert.Equal(t, recipe.ErrNotFound, svc.Delete(created.ID))
}

func TestServiceListSortsByTitleDescending(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	for _, title := range []string{"Bread", "Waffles", "Muffins"} {
		_, err := svc.Create(recipe.CreateInput{Title: title, Steps: "Bake."})
		require.NoError(t, err)
	}

	recipes, err := svc.List()
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Waffles", recipes[0].Title)
	assert.Equal(t, "Muffins", recipes[1].Title)
	assert.Equal(t, "Bread", recipes[2].Title)
}

func TestSplitIngredientText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "newline separated",
			input: "2 cups flour\n1 cup milk\n\n2 eggs\n",
			want:  []string{"2 cups flour", "1 cup milk", "2 eggs"},
		},
		{
			name:  "single line falls back to commas",
			input: "2 cups flour, 1 cup milk, 2 eggs",
			want:  []string{"2 cups flour", "1 cup milk", "2 eggs"},
		},
		{
			name:  "newlines win over commas",
			input: "1 cup onion (diced)\n1 can tomatoes, crushed",
			want:  []string{"1 cup onion (diced)", "1 can tomatoes, crushed"},
		},
		{
			name:  "empty text",
			input: "   ",
			want:  nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, recipe.SplitIngredientText(tc.input))
		})
	}
}
