package storage

import (
	"sync"

	"pantry-planner/internal/core/mealplan"
	"pantry-planner/internal/core/recipe"
)

// MemoryStore is an in-memory implementation of recipe.Store and
// mealplan.Store, used by tests and by runs without a database path.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes map[string]recipe.Recipe
	entries map[string]mealplan.Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recipes: make(map[string]recipe.Recipe),
		entries: make(map[string]mealplan.Entry),
	}
}

func (s *MemoryStore) SaveRecipe(r *recipe.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[r.ID] = *r
	return nil
}

func (s *MemoryStore) GetRecipe(id string) (*recipe.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	dup := r
	return &dup, nil
}

func (s *MemoryStore) ListRecipes() ([]*recipe.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipes := make([]*recipe.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		dup := r
		recipes = append(recipes, &dup)
	}
	return recipes, nil
}

func (s *MemoryStore) DeleteRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recipes, id)
	return nil
}

func (s *MemoryStore) SaveMealPlanEntry(e *mealplan.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = *e
	return nil
}

func (s *MemoryStore) GetMealPlanEntry(id string) (*mealplan.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	dup := e
	return &dup, nil
}

func (s *MemoryStore) ListMealPlanEntries() ([]*mealplan.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*mealplan.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		dup := e
		entries = append(entries, &dup)
	}
	return entries, nil
}

func (s *MemoryStore) DeleteMealPlanEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) ClearMealPlanEntries() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]mealplan.Entry)
	return nil
}
