package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plural cup",
			input: "cups",
			want:  "cup",
		},
		{
			name:  "full word teaspoon",
			input: "teaspoon",
			want:  "tsp",
		},
		{
			name:  "abbreviation already canonical",
			input: "tbsp",
			want:  "tbsp",
		},
		{
			name:  "case-insensitive lookup",
			input: "Cups",
			want:  "cup",
		},
		{
			name:  "pkg folds onto package",
			input: "pkg",
			want:  "package",
		},
		{
			name:  "lbs folds onto lb",
			input: "lbs",
			want:  "lb",
		},
		{
			name:  "plural liters",
			input: "liters",
			want:  "l",
		},
		{
			name:  "plural milliliters",
			input: "milliliters",
			want:  "ml",
		},
		{
			name:  "cloves folds onto clove",
			input: "cloves",
			want:  "clove",
		},
		{
			name:  "unknown token passes through lowercased",
			input: "Handfuls",
			want:  "handfuls",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: " cup ",
			want:  "cup",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Canonicalize(tc.input))
		})
	}
}

func TestConversionFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unit string
		ml   int64
		ok   bool
	}{
		{unit: "tsp", ml: 5, ok: true},
		{unit: "tbsp", ml: 15, ok: true},
		{unit: "cup", ml: 240, ok: true},
		{unit: "ml", ml: 1, ok: true},
		{unit: "l", ml: 1000, ok: true},
		{unit: "oz", ml: 30, ok: true},
		{unit: "pt", ml: 473, ok: true},
		{unit: "g", ok: false},
		{unit: "kg", ok: false},
		{unit: "lb", ok: false},
		{unit: "clove", ok: false},
		{unit: "handful", ok: false},
		{unit: "", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run("factor "+tc.unit, func(t *testing.T) {
			t.Parallel()
			factor, ok := ConversionFactor(tc.unit)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				num, den := factor.Ratio()
				assert.Equal(t, tc.ml, num)
				assert.Equal(t, int64(1), den)
			}
		})
	}
}

func TestEveryCanonicalUnitHasExactlyOneFamily(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for _, canonical := range unitMap {
		if _, done := seen[canonical]; done {
			continue
		}
		seen[canonical] = struct{}{}

		family := UnitFamily(canonical)
		assert.Contains(t, []string{FamilyVolume, FamilyWeight, FamilyCount}, family,
			"canonical unit %q must belong to a family", canonical)

		_, hasFactor := ConversionFactor(canonical)
		assert.Equal(t, family == FamilyVolume, hasFactor,
			"only volume units may convert, got factor=%v for %q", hasFactor, canonical)
	}
}
