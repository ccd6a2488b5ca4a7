package ingredient

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDisplayDenominator bounds the fractions used for display; cooks
// read eighths, not sixty-fourths.
const maxDisplayDenominator = 8

// FormatQuantity renders an amount as a compact human string: "1/2 tsp",
// "2 cups", "1 1/2 tbsp". An absent quantity yields the unit alone, or
// "" when both are absent. Word units pluralize above one; abbreviations
// like tbsp and g do not. The canonical unit token is never mutated;
// pluralization applies to the display copy only.
func FormatQuantity(q *Quantity, unit string) string {
	if q == nil {
		return unit
	}

	num, den := limitDenominator(q.Ratio())

	var qty string
	switch {
	case den == 1:
		qty = strconv.FormatInt(num, 10)
	case num > den:
		whole := num / den
		remainder := num % den
		if remainder == 0 {
			qty = strconv.FormatInt(whole, 10)
		} else {
			qty = fmt.Sprintf("%d %d/%d", whole, remainder, den)
		}
	default:
		qty = fmt.Sprintf("%d/%d", num, den)
	}

	display := unit
	if unit != "" && q.GreaterThanOne() && !strings.HasSuffix(unit, "s") && !abbreviatedUnits[unit] {
		display = unit + "s"
	}

	return strings.TrimSpace(qty + " " + display)
}

// limitDenominator finds the closest fraction to num/den with a
// denominator of at most maxDisplayDenominator, walking the
// continued-fraction convergents. Exact values with a small enough
// denominator come back unchanged.
func limitDenominator(num, den int64) (int64, int64) {
	if den <= maxDisplayDenominator {
		return num, den
	}

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	n, d := num, den
	for {
		a := n / d
		q2 := q0 + a*q1
		if q2 > maxDisplayDenominator {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q2
		n, d = d, n-a*d
	}

	// Two candidates bound the value; pick whichever is closer, the
	// upper convergent winning ties.
	k := (maxDisplayDenominator - q0) / q1
	if 2*d*(q0+k*q1) <= den {
		return p1, q1
	}
	return p0 + k*p1, q0 + k*q1
}
