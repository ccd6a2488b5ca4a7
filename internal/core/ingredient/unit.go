package ingredient

import "strings"

// Unit families. Only volume units carry conversion factors; weight and
// count units never merge across spellings.
const (
	FamilyVolume = "volume"
	FamilyWeight = "weight"
	FamilyCount  = "count"
)

// unitMap folds spelling variants (plural, abbreviation, full word) onto
// one canonical token per unit. Initialized once, never mutated.
var unitMap = map[string]string{
	// Volume
	"tsp":         "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tbsp":        "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"cup":         "cup",
	"cups":        "cup",
	"ml":          "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"l":           "l",
	"liter":       "l",
	"liters":      "l",
	"oz":          "oz",
	"ounce":       "oz",
	"ounces":      "oz",
	"pt":          "pt",
	"pint":        "pt",
	"pints":       "pt",

	// Weight
	"g":        "g",
	"gram":     "g",
	"grams":    "g",
	"kg":       "kg",
	"kilogram": "kg",
	"lb":       "lb",
	"lbs":      "lb",
	"pound":    "lb",
	"pounds":   "lb",

	// Count/other
	"pc":       "pc",
	"piece":    "pc",
	"pieces":   "pc",
	"clove":    "clove",
	"cloves":   "clove",
	"bunch":    "bunch",
	"bunches":  "bunch",
	"can":      "can",
	"cans":     "can",
	"jar":      "jar",
	"jars":     "jar",
	"package":  "package",
	"packages": "package",
	"pkg":      "package",
}

// unitFamily assigns every canonical unit to exactly one family.
var unitFamily = map[string]string{
	"tsp": FamilyVolume, "tbsp": FamilyVolume, "cup": FamilyVolume,
	"ml": FamilyVolume, "l": FamilyVolume, "oz": FamilyVolume, "pt": FamilyVolume,
	"g": FamilyWeight, "kg": FamilyWeight, "lb": FamilyWeight,
	"pc": FamilyCount, "clove": FamilyCount, "bunch": FamilyCount,
	"can": FamilyCount, "jar": FamilyCount, "package": FamilyCount,
}

// abbreviatedUnits are the canonical tokens that are abbreviations
// rather than words. They never pluralize: "2 cups" but "2 tbsp".
var abbreviatedUnits = map[string]bool{
	"tsp": true, "tbsp": true, "ml": true, "l": true, "oz": true, "pt": true,
	"g": true, "kg": true, "lb": true, "pc": true,
}

// mlPerUnit holds cooking-approximate conversion factors for volume
// units, relative to milliliters. Weight and count units deliberately
// have no factors.
var mlPerUnit = map[string]Quantity{
	"tsp":  QuantityFromInt(5),
	"tbsp": QuantityFromInt(15),
	"cup":  QuantityFromInt(240),
	"ml":   QuantityFromInt(1),
	"l":    QuantityFromInt(1000),
	"oz":   QuantityFromInt(30),
	"pt":   QuantityFromInt(473),
}

// Canonicalize maps a unit spelling onto its canonical token. Lookup is
// case-insensitive; unknown tokens pass through lowercased so arbitrary
// free-text units survive instead of failing.
func Canonicalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := unitMap[token]; ok {
		return canonical
	}
	return token
}

// KnownUnit reports whether token (in any spelling) is in the fixed
// vocabulary.
func KnownUnit(token string) bool {
	_, ok := unitMap[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// UnitFamily returns the family of a canonical unit, or "" for ad-hoc
// units outside the vocabulary.
func UnitFamily(unit string) string {
	return unitFamily[unit]
}

// ConversionFactor returns the milliliter equivalent of one canonical
// unit. Only volume units convert; everything else reports false.
func ConversionFactor(unit string) (Quantity, bool) {
	factor, ok := mlPerUnit[unit]
	return factor, ok
}
