package recipe

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pantry-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a recipe id resolves to nothing.
var ErrNotFound = errors.New("recipe not found")

// Service owns recipe CRUD and shopping-list building.
type Service struct {
	store Store
	cache ListCache
	now   func() time.Time
}

// ListCache caches built shopping lists. Implementations must treat a
// miss and an unavailable backend the same way: return ok=false.
type ListCache interface {
	Get(ctx context.Context, key string) ([]ShoppingItem, bool)
	Set(ctx context.Context, key string, items []ShoppingItem)
}

// NewService creates a recipe service. cache may be nil when caching is
// disabled.
func NewService(store Store, cache ListCache) *Service {
	return &Service{
		store: store,
		cache: cache,
		now:   time.Now,
	}
}

// CreateInput carries the writable recipe fields.
type CreateInput struct {
	Title           string
	Author          string
	Description     string
	PrepTimeMinutes int
	CookTimeMinutes int
	Ingredients     string
	Steps           string
	Tags            string
}

// Create validates and stores a new recipe.
func (s *Service) Create(in CreateInput) (*Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.NewValidationError("title is required")
	}
	if in.PrepTimeMinutes < 0 || in.CookTimeMinutes < 0 {
		return nil, common.NewValidationError("times must not be negative")
	}

	now := s.now()
	r := &Recipe{
		ID:              common.GenerateUUID(),
		Title:           strings.TrimSpace(in.Title),
		Author:          strings.TrimSpace(in.Author),
		Description:     in.Description,
		PrepTimeMinutes: in.PrepTimeMinutes,
		CookTimeMinutes: in.CookTimeMinutes,
		Ingredients:     in.Ingredients,
		Steps:           in.Steps,
		Tags:            in.Tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.SaveRecipe(r); err != nil {
		return nil, err
	}

	common.LogInfo("recipe created",
		zap.String("recipe_id", r.ID),
		zap.String("title", r.Title),
	)
	return r, nil
}

// Get fetches one recipe.
func (s *Service) Get(id string) (*Recipe, error) {
	r, err := s.store.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// Update applies the writable fields to an existing recipe.
func (s *Service) Update(id string, in CreateInput) (*Recipe, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.NewValidationError("title is required")
	}
	if in.PrepTimeMinutes < 0 || in.CookTimeMinutes < 0 {
		return nil, common.NewValidationError("times must not be negative")
	}

	r.Title = strings.TrimSpace(in.Title)
	r.Author = strings.TrimSpace(in.Author)
	r.Description = in.Description
	r.PrepTimeMinutes = in.PrepTimeMinutes
	r.CookTimeMinutes = in.CookTimeMinutes
	r.Ingredients = in.Ingredients
	r.Steps = in.Steps
	r.Tags = in.Tags
	r.UpdatedAt = s.now()

	if err := s.store.SaveRecipe(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a recipe.
func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.store.DeleteRecipe(id)
}

// List returns all recipes sorted by title descending, matching the
// listing order of the web UI.
func (s *Service) List() ([]*Recipe, error) {
	recipes, err := s.store.ListRecipes()
	if err != nil {
		return nil, err
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Title > recipes[j].Title
	})
	return recipes, nil
}
