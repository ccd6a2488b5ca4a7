package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"pantry-planner/internal/core/mealplan"
	"pantry-planner/internal/core/recipe"

	"go.etcd.io/bbolt"
)

const (
	recipeBucket   = "recipes"
	mealPlanBucket = "meal_plans"
)

// BoltStore persists recipes and meal-plan entries in a single bbolt
// file, one bucket per type, values JSON-encoded. It implements both
// recipe.Store and mealplan.Store.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (creating if needed) the database file and its
// buckets.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{recipeBucket, mealPlanBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// SaveRecipe inserts or overwrites a recipe.
func (s *BoltStore) SaveRecipe(r *recipe.Recipe) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling recipe: %w", err)
		}
		return tx.Bucket([]byte(recipeBucket)).Put([]byte(r.ID), data)
	})
}

// GetRecipe fetches a recipe by id; a missing id returns (nil, nil).
func (s *BoltStore) GetRecipe(id string) (*recipe.Recipe, error) {
	var r *recipe.Recipe
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(recipeBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		r = &recipe.Recipe{}
		return json.Unmarshal(data, r)
	})
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	return r, nil
}

// ListRecipes returns every stored recipe.
func (s *BoltStore) ListRecipes() ([]*recipe.Recipe, error) {
	var recipes []*recipe.Recipe
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(recipeBucket)).ForEach(func(_, data []byte) error {
			r := &recipe.Recipe{}
			if err := json.Unmarshal(data, r); err != nil {
				return err
			}
			recipes = append(recipes, r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// DeleteRecipe removes a recipe by id.
func (s *BoltStore) DeleteRecipe(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(recipeBucket)).Delete([]byte(id))
	})
}

// SaveMealPlanEntry inserts or overwrites a meal-plan entry.
func (s *BoltStore) SaveMealPlanEntry(e *mealplan.Entry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshaling meal plan entry: %w", err)
		}
		return tx.Bucket([]byte(mealPlanBucket)).Put([]byte(e.ID), data)
	})
}

// GetMealPlanEntry fetches an entry by id; a missing id returns
// (nil, nil).
func (s *BoltStore) GetMealPlanEntry(id string) (*mealplan.Entry, error) {
	var e *mealplan.Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(mealPlanBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		e = &mealplan.Entry{}
		return json.Unmarshal(data, e)
	})
	if err != nil {
		return nil, fmt.Errorf("getting meal plan entry: %w", err)
	}
	return e, nil
}

// ListMealPlanEntries returns every stored entry.
func (s *BoltStore) ListMealPlanEntries() ([]*mealplan.Entry, error) {
	var entries []*mealplan.Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(mealPlanBucket)).ForEach(func(_, data []byte) error {
			e := &mealplan.Entry{}
			if err := json.Unmarshal(data, e); err != nil {
				return err
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing meal plan entries: %w", err)
	}
	return entries, nil
}

// DeleteMealPlanEntry removes an entry by id.
func (s *BoltStore) DeleteMealPlanEntry(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(mealPlanBucket)).Delete([]byte(id))
	})
}

// ClearMealPlanEntries drops and recreates the meal-plan bucket.
func (s *BoltStore) ClearMealPlanEntries() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(mealPlanBucket)); err != nil {
			return fmt.Errorf("clearing meal plan: %w", err)
		}
		_, err := tx.CreateBucket([]byte(mealPlanBucket))
		return err
	})
}
