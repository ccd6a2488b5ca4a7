package mealplan

import (
	"time"
)

// Days of the week in planning order.
var Days = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var dayIndex = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

// ValidDay reports whether day is one of the seven plan days.
func ValidDay(day string) bool {
	_, ok := dayIndex[day]
	return ok
}

// Entry schedules one recipe on one day of the week. A day may hold any
// number of entries.
type Entry struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence boundary for meal-plan entries.
type Store interface {
	SaveMealPlanEntry(e *Entry) error
	GetMealPlanEntry(id string) (*Entry, error)
	ListMealPlanEntries() ([]*Entry, error)
	DeleteMealPlanEntry(id string) error
	ClearMealPlanEntries() error
}
