package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQuantity(t *testing.T) {
	t.Parallel()

	mustQuantity := func(num, den int64) *Quantity {
		q, ok := NewQuantity(num, den)
		require.True(t, ok)
		return &q
	}

	tests := []struct {
		name string
		q    *Quantity
		unit string
		want string
	}{
		{
			name: "half teaspoon",
			q:    mustQuantity(1, 2),
			unit: "tsp",
			want: "1/2 tsp",
		},
		{
			name: "two cups pluralized",
			q:    mustQuantity(2, 1),
			unit: "cup",
			want: "2 cups",
		},
		{
			name: "mixed fraction",
			q:    mustQuantity(3, 2),
			unit: "tbsp",
			want: "1 1/2 tbsp",
		},
		{
			name: "integer without unit",
			q:    mustQuantity(3, 1),
			unit: "",
			want: "3",
		},
		{
			name: "absent quantity shows unit alone",
			q:    nil,
			unit: "bunch",
			want: "bunch",
		},
		{
			name: "both absent is empty",
			q:    nil,
			unit: "",
			want: "",
		},
		{
			name: "denominator limited to eight",
			q:    mustQuantity(1, 3),
			unit: "cup",
			want: "1/3 cup",
		},
		{
			name: "awkward rational approximated",
			q:    mustQuantity(333, 1000),
			unit: "cup",
			want: "1/3 cup",
		},
		{
			name: "unit already ending in s is not doubled",
			q:    mustQuantity(2, 1),
			unit: "handfuls",
			want: "2 handfuls",
		},
		{
			name: "exactly one is not pluralized",
			q:    mustQuantity(1, 1),
			unit: "cup",
			want: "1 cup",
		},
		{
			name: "count unit pluralizes",
			q:    mustQuantity(3, 1),
			unit: "clove",
			want: "3 cloves",
		},
		{
			name: "mixed value pluralizes",
			q:    mustQuantity(5, 2),
			unit: "cup",
			want: "2 1/2 cups",
		},
		{
			name: "abbreviated volume unit stays singular",
			q:    mustQuantity(2, 1),
			unit: "tbsp",
			want: "2 tbsp",
		},
		{
			name: "abbreviated weight unit stays singular",
			q:    mustQuantity(200, 1),
			unit: "g",
			want: "200 g",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatQuantity(tc.q, tc.unit))
		})
	}
}

// Formatting and re-parsing a small-denominator amount round-trips
// within tolerance.
func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for num := int64(1); num <= 24; num++ {
		for den := int64(1); den <= 8; den++ {
			q, ok := NewQuantity(num, den)
			require.True(t, ok)

			rendered := FormatQuantity(&q, "")
			parsed, ok := ParseQuantity(rendered)
			require.True(t, ok, "rendered %q must parse", rendered)
			assert.InDelta(t, q.Float64(), parsed.Float64(), 1e-9)
		}
	}
}

func TestLimitDenominator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
	}{
		{name: "already small stays exact", num: 3, den: 4, wantNum: 3, wantDen: 4},
		{name: "thirds from decimal", num: 333, den: 1000, wantNum: 1, wantDen: 3},
		{name: "two thirds from decimal", num: 667, den: 1000, wantNum: 2, wantDen: 3},
		{name: "eighths kept", num: 125, den: 1000, wantNum: 1, wantDen: 8},
		{name: "near seven eighths", num: 874, den: 1000, wantNum: 7, wantDen: 8},
		{name: "whole number", num: 2000, den: 1000, wantNum: 2, wantDen: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q, ok := NewQuantity(tc.num, tc.den)
			require.True(t, ok)
			num, den := limitDenominator(q.Ratio())
			assert.Equal(t, tc.wantNum, num)
			assert.Equal(t, tc.wantDen, den)
		})
	}
}
