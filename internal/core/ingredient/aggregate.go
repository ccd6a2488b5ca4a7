package ingredient

import "strings"

// Amount pairs an optional quantity with an optional unit.
type Amount struct {
	Quantity *Quantity
	Unit     string
}

// Entry is one consolidated shopping-list line: everything seen for a
// single ingredient name across the selected recipes. Unmerged collects
// amounts whose units could not be combined with the first-seen unit, so
// nothing the recipes asked for is silently dropped.
type Entry struct {
	Name      string
	Quantity  *Quantity
	Unit      string
	Note      string
	RecipeIDs []string
	Unmerged  []Amount
}

// RecipeCount returns how many distinct recipes contributed the entry.
func (e *Entry) RecipeCount() int {
	return len(e.RecipeIDs)
}

// Aggregator merges parsed ingredient lines from many recipes, keyed by
// lowercased name. One aggregator serves one shopping-list build; it is
// not safe for concurrent use and is discarded afterwards.
type Aggregator struct {
	entries map[string]*Entry
	order   []string
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]*Entry)}
}

// Add folds one parsed line into the aggregate. Merge policy per entry
// with the same name:
//   - same canonical unit (including both absent): quantities sum, an
//     absent quantity counting as zero only when the other side is set;
//   - different units, both volume-convertible: both convert to
//     milliliters, sum, and convert back to the first-seen unit;
//   - otherwise: the first-seen amount stays, the newcomer is kept on
//     Unmerged.
//
// The contributing recipe is recorded at most once per ingredient no
// matter how often the recipe lists it. Names are lowercased and trimmed
// before keying, so hand-built Parsed values merge the same way as
// ParseLine output.
func (a *Aggregator) Add(recipeID string, p Parsed) {
	name := strings.ToLower(strings.TrimSpace(p.Name))

	existing, ok := a.entries[name]
	if !ok {
		entry := &Entry{
			Name:     name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
			Note:     p.Note,
		}
		if recipeID != "" {
			entry.RecipeIDs = []string{recipeID}
		}
		a.entries[name] = entry
		a.order = append(a.order, name)
		return
	}

	if recipeID != "" && !containsString(existing.RecipeIDs, recipeID) {
		existing.RecipeIDs = append(existing.RecipeIDs, recipeID)
	}

	switch {
	case existing.Unit == p.Unit:
		existing.Quantity = sumQuantities(existing.Quantity, p.Quantity)
	case convertible(existing.Unit) && convertible(p.Unit):
		existing.Quantity = sumConverted(existing, p)
	default:
		existing.Unmerged = append(existing.Unmerged, Amount{Quantity: p.Quantity, Unit: p.Unit})
	}
}

// Entries returns the aggregate in first-seen order. Output is fully
// determined by input order.
func (a *Aggregator) Entries() []*Entry {
	result := make([]*Entry, 0, len(a.order))
	for _, name := range a.order {
		result = append(result, a.entries[name])
	}
	return result
}

// Entry looks up the aggregate for one lowercased name.
func (a *Aggregator) Entry(name string) (*Entry, bool) {
	entry, ok := a.entries[name]
	return entry, ok
}

// sumQuantities adds two optional quantities. Both absent stays absent;
// one absent contributes zero.
func sumQuantities(a, b *Quantity) *Quantity {
	if a == nil && b == nil {
		return nil
	}
	sum := Quantity{}
	if a != nil {
		sum = sum.Add(*a)
	}
	if b != nil {
		sum = sum.Add(*b)
	}
	return &sum
}

// sumConverted adds an incoming amount to an entry via milliliters and
// re-expresses the total in the entry's first-seen unit.
func sumConverted(existing *Entry, p Parsed) *Quantity {
	existingFactor, _ := ConversionFactor(existing.Unit)
	incomingFactor, _ := ConversionFactor(p.Unit)

	totalML := Quantity{}
	if existing.Quantity != nil {
		totalML = totalML.Add(existing.Quantity.Mul(existingFactor))
	}
	if p.Quantity != nil {
		totalML = totalML.Add(p.Quantity.Mul(incomingFactor))
	}
	total := totalML.Div(existingFactor)
	return &total
}

func convertible(unit string) bool {
	_, ok := ConversionFactor(unit)
	return ok
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
