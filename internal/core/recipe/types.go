package recipe

import (
	"strings"
	"time"
)

// Recipe is a stored recipe. Ingredients holds the raw free-text lines
// exactly as the author entered them; parsing happens only when a
// shopping list is built.
type Recipe struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author,omitempty"`
	Description     string    `json:"description,omitempty"`
	PrepTimeMinutes int       `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int       `json:"cook_time_minutes,omitempty"`
	Ingredients     string    `json:"ingredients"`
	Steps           string    `json:"steps"`
	Tags            string    `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IngredientLines splits the raw ingredient text into individual lines.
// Multi-line text splits on newlines; single-line text falls back to
// comma separation. Blank segments are dropped.
func (r *Recipe) IngredientLines() []string {
	return SplitIngredientText(r.Ingredients)
}

// SplitIngredientText implements the line/comma splitting rule for raw
// ingredient text.
func SplitIngredientText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var segments []string
	if strings.Contains(text, "\n") {
		segments = strings.Split(text, "\n")
	} else {
		segments = strings.Split(text, ",")
	}

	lines := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment = strings.TrimSpace(segment); segment != "" {
			lines = append(lines, segment)
		}
	}
	return lines
}

// ShoppingItem is one display-ready line of an aggregated shopping list.
type ShoppingItem struct {
	Name        string   `json:"name"`
	Display     string   `json:"display"`
	Note        string   `json:"note,omitempty"`
	RecipeIDs   []string `json:"recipe_ids"`
	RecipeCount int      `json:"recipe_count"`
	Also        []string `json:"also,omitempty"`
}

// Store is the persistence boundary for recipes.
type Store interface {
	SaveRecipe(r *Recipe) error
	GetRecipe(id string) (*Recipe, error)
	ListRecipes() ([]*Recipe, error)
	DeleteRecipe(id string) error
}
