package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{
			name:  "whole number",
			input: "2",
			want:  2.0,
			ok:    true,
		},
		{
			name:  "decimal",
			input: "1.5",
			want:  1.5,
			ok:    true,
		},
		{
			name:  "decimal without leading zero",
			input: ".5",
			want:  0.5,
			ok:    true,
		},
		{
			name:  "decimal with trailing dot",
			input: "2.",
			want:  2.0,
			ok:    true,
		},
		{
			name:  "simple fraction",
			input: "1/2",
			want:  0.5,
			ok:    true,
		},
		{
			name:  "mixed fraction",
			input: "1 1/2",
			want:  1.5,
			ok:    true,
		},
		{
			name:  "mixed fraction with extra spacing",
			input: "2  3/4",
			want:  2.75,
			ok:    true,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  3/4  ",
			want:  0.75,
			ok:    true,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
		{
			name:  "whitespace only",
			input: "   ",
			ok:    false,
		},
		{
			name:  "letters",
			input: "abc",
			ok:    false,
		},
		{
			name:  "negative number",
			input: "-1",
			ok:    false,
		},
		{
			name:  "multiple fractions",
			input: "1/2/3",
			ok:    false,
		},
		{
			name:  "zero denominator",
			input: "1/0",
			ok:    false,
		},
		{
			name:  "mixed fraction with zero denominator",
			input: "1 1/0",
			ok:    false,
		},
		{
			name:  "trailing garbage",
			input: "2x",
			ok:    false,
		},
		{
			name:  "lone dot",
			input: ".",
			ok:    false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseQuantity(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got.Float64(), 1e-9)
			}
		})
	}
}

func TestQuantityArithmeticStaysExact(t *testing.T) {
	t.Parallel()

	third, ok := NewQuantity(1, 3)
	require.True(t, ok)

	// Summing 1/3 three hundred times lands exactly on 100; float
	// accumulation would have drifted.
	sum := Quantity{}
	for i := 0; i < 300; i++ {
		sum = sum.Add(third)
	}
	num, den := sum.Ratio()
	assert.Equal(t, int64(100), num)
	assert.Equal(t, int64(1), den)
}

func TestQuantityDivideByZeroIsZero(t *testing.T) {
	t.Parallel()

	q := QuantityFromInt(5)
	assert.True(t, q.Div(Quantity{}).IsZero())
}

func TestNewQuantityReduces(t *testing.T) {
	t.Parallel()

	q, ok := NewQuantity(120, 240)
	require.True(t, ok)
	num, den := q.Ratio()
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(2), den)

	_, ok = NewQuantity(1, 0)
	assert.False(t, ok)
}
