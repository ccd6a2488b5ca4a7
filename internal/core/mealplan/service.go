package mealplan

import (
	"context"
	"errors"
	"sort"
	"time"

	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a meal-plan entry id resolves to nothing.
var ErrNotFound = errors.New("meal plan entry not found")

// Service owns weekly meal planning. Recipes are resolved through the
// recipe service so scheduling an unknown recipe fails fast.
type Service struct {
	store   Store
	recipes *recipe.Service
	now     func() time.Time
}

// NewService creates a meal-plan service.
func NewService(store Store, recipes *recipe.Service) *Service {
	return &Service{
		store:   store,
		recipes: recipes,
		now:     time.Now,
	}
}

// Add schedules a recipe on a day.
func (s *Service) Add(recipeID, day string) (*Entry, error) {
	if !ValidDay(day) {
		return nil, common.NewValidationError("invalid day of week: " + day)
	}
	if _, err := s.recipes.Get(recipeID); err != nil {
		return nil, err
	}

	e := &Entry{
		ID:        common.GenerateUUID(),
		RecipeID:  recipeID,
		Day:       day,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveMealPlanEntry(e); err != nil {
		return nil, err
	}

	common.LogInfo("meal plan entry added",
		zap.String("entry_id", e.ID),
		zap.String("recipe_id", recipeID),
		zap.String("day", day),
	)
	return e, nil
}

// BulkItem is one (day, recipe) pair of a bulk assignment.
type BulkItem struct {
	RecipeID string `json:"recipe_id"`
	Day      string `json:"day"`
}

// BulkSet replaces the whole week with the given assignments. The
// incoming items are validated before anything is cleared, so an invalid
// request leaves the existing plan untouched.
func (s *Service) BulkSet(items []BulkItem) ([]*Entry, error) {
	for _, item := range items {
		if !ValidDay(item.Day) {
			return nil, common.NewValidationError("invalid day of week: " + item.Day)
		}
		if _, err := s.recipes.Get(item.RecipeID); err != nil {
			return nil, err
		}
	}

	if err := s.store.ClearMealPlanEntries(); err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(items))
	for _, item := range items {
		e := &Entry{
			ID:        common.GenerateUUID(),
			RecipeID:  item.RecipeID,
			Day:       item.Day,
			CreatedAt: s.now(),
		}
		if err := s.store.SaveMealPlanEntry(e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	common.LogInfo("meal plan replaced", zap.Int("entries", len(entries)))
	return entries, nil
}

// Remove deletes one entry.
func (s *Service) Remove(id string) error {
	e, err := s.store.GetMealPlanEntry(id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrNotFound
	}
	return s.store.DeleteMealPlanEntry(id)
}

// Clear empties the plan.
func (s *Service) Clear() error {
	return s.store.ClearMealPlanEntries()
}

// Week returns all entries ordered by day of week, then creation time.
func (s *Service) Week() ([]*Entry, error) {
	entries, err := s.store.ListMealPlanEntries()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if dayIndex[entries[i].Day] != dayIndex[entries[j].Day] {
			return dayIndex[entries[i].Day] < dayIndex[entries[j].Day]
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

// ShoppingList builds the shopping list for every distinct recipe
// currently planned, in plan order.
func (s *Service) ShoppingList(ctx context.Context) ([]recipe.ShoppingItem, error) {
	entries, err := s.Week()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	recipeIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.RecipeID]; dup {
			continue
		}
		seen[e.RecipeID] = struct{}{}
		recipeIDs = append(recipeIDs, e.RecipeID)
	}

	return s.recipes.BuildShoppingList(ctx, recipeIDs)
}
