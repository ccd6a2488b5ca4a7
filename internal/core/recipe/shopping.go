package recipe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"pantry-planner/internal/core/ingredient"
	"pantry-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// BuildShoppingList aggregates the ingredients of the selected recipes
// into one display-ready list. Lines stream through the ingredient
// engine in recipe order, so identical input always produces identical
// output. Unknown recipe ids are skipped with a warning rather than
// failing the whole list. Entries whose parsed name is empty are
// filtered from the result.
func (s *Service) BuildShoppingList(ctx context.Context, recipeIDs []string) ([]ShoppingItem, error) {
	recipes := make([]*Recipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		r, err := s.Get(id)
		if err == ErrNotFound {
			common.LogWarn("shopping list skips unknown recipe",
				zap.String("recipe_id", id),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	key := shoppingCacheKey(recipes)
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, key); ok {
			common.LogDebug("shopping list served from cache",
				zap.String("key", key),
				zap.Int("items", len(items)),
			)
			return items, nil
		}
	}

	agg := ingredient.NewAggregator()
	for _, r := range recipes {
		for _, line := range r.IngredientLines() {
			agg.Add(r.ID, ingredient.ParseLine(line))
		}
	}

	items := make([]ShoppingItem, 0, len(agg.Entries()))
	for _, entry := range agg.Entries() {
		if entry.Name == "" {
			continue
		}
		item := ShoppingItem{
			Name:        entry.Name,
			Display:     displayLine(entry),
			Note:        entry.Note,
			RecipeIDs:   entry.RecipeIDs,
			RecipeCount: entry.RecipeCount(),
		}
		for _, extra := range entry.Unmerged {
			item.Also = append(item.Also, ingredient.FormatQuantity(extra.Quantity, extra.Unit))
		}
		items = append(items, item)
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, items)
	}

	return items, nil
}

// displayLine renders one aggregated entry, e.g. "1 1/2 cups sugar" or
// just "salt to taste" when no amount was ever given.
func displayLine(entry *ingredient.Entry) string {
	amount := ingredient.FormatQuantity(entry.Quantity, entry.Unit)
	if amount == "" {
		return entry.Name
	}
	return amount + " " + entry.Name
}

// shoppingCacheKey hashes the selected recipe ids together with their
// update times, so editing a recipe naturally invalidates every cached
// list it appears in.
func shoppingCacheKey(recipes []*Recipe) string {
	parts := make([]string, 0, len(recipes))
	for _, r := range recipes {
		parts = append(parts, fmt.Sprintf("%s@%d", r.ID, r.UpdatedAt.UnixNano()))
	}
	sort.Strings(parts)

	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "shopping:" + hex.EncodeToString(h.Sum(nil))
}
