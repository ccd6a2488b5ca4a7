package ingredient

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Quantity is an exact non-negative rational amount. Keeping amounts as
// rationals until display avoids floating-point drift when the aggregator
// sums and converts repeatedly. The zero value is 0/1.
type Quantity struct {
	num int64
	den int64
}

var (
	mixedFractionPattern  = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	simpleFractionPattern = regexp.MustCompile(`^(\d+)/(\d+)$`)
	decimalPattern        = regexp.MustCompile(`^(\d*)(?:\.(\d*))?$`)
)

// NewQuantity builds a reduced rational. Returns false when den is zero.
func NewQuantity(num, den int64) (Quantity, bool) {
	if den == 0 {
		return Quantity{}, false
	}
	if num < 0 || den < 0 {
		return Quantity{}, false
	}
	g := gcd(num, den)
	return Quantity{num: num / g, den: den / g}, true
}

// QuantityFromInt builds a whole-number quantity.
func QuantityFromInt(n int64) Quantity {
	return Quantity{num: n, den: 1}
}

// ParseQuantity parses a quantity token into a rational value. It
// recognizes, in order: a mixed fraction ("1 1/2"), a simple fraction
// ("1/2"), and a plain decimal or integer ("2", "1.5", ".5"). Anything
// else, including a zero denominator, reports ok=false; callers treat
// that as "no quantity" rather than an error.
func ParseQuantity(text string) (Quantity, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Quantity{}, false
	}

	if m := mixedFractionPattern.FindStringSubmatch(text); m != nil {
		whole, err1 := strconv.ParseInt(m[1], 10, 64)
		numerator, err2 := strconv.ParseInt(m[2], 10, 64)
		denominator, err3 := strconv.ParseInt(m[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return Quantity{}, false
		}
		q, ok := NewQuantity(whole*denominator+numerator, denominator)
		if !ok {
			return Quantity{}, false
		}
		return q, true
	}

	if m := simpleFractionPattern.FindStringSubmatch(text); m != nil {
		numerator, err1 := strconv.ParseInt(m[1], 10, 64)
		denominator, err2 := strconv.ParseInt(m[2], 10, 64)
		if err1 != nil || err2 != nil {
			return Quantity{}, false
		}
		return NewQuantity(numerator, denominator)
	}

	// Plain decimals convert exactly: "1.25" becomes 125/100 before
	// reduction, so no float round-trip is involved. The whole and
	// fractional parts are each optional (".5", "2."), but a lone dot
	// carries no digits and fails.
	if m := decimalPattern.FindStringSubmatch(text); m != nil {
		if m[1] == "" && m[2] == "" {
			return Quantity{}, false
		}
		var whole int64
		if m[1] != "" {
			var err error
			whole, err = strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return Quantity{}, false
			}
		}
		if m[2] == "" {
			return QuantityFromInt(whole), true
		}
		frac, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return Quantity{}, false
		}
		scale := int64(1)
		for range m[2] {
			scale *= 10
		}
		return NewQuantity(whole*scale+frac, scale)
	}

	return Quantity{}, false
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	qn, qd := q.Ratio()
	on, od := other.Ratio()
	sum, _ := NewQuantity(qn*od+on*qd, qd*od)
	return sum
}

// Mul returns q * other.
func (q Quantity) Mul(other Quantity) Quantity {
	qn, qd := q.Ratio()
	on, od := other.Ratio()
	prod, _ := NewQuantity(qn*on, qd*od)
	return prod
}

// Div returns q / other. Division by zero returns the zero quantity.
func (q Quantity) Div(other Quantity) Quantity {
	if other.num == 0 {
		return Quantity{den: 1}
	}
	qn, qd := q.Ratio()
	on, od := other.Ratio()
	quot, _ := NewQuantity(qn*od, qd*on)
	return quot
}

// Float64 returns the floating approximation of q.
func (q Quantity) Float64() float64 {
	if q.den == 0 {
		return 0
	}
	return float64(q.num) / float64(q.den)
}

// IsZero reports whether q equals zero.
func (q Quantity) IsZero() bool {
	return q.num == 0
}

// GreaterThanOne reports whether q is strictly greater than one.
func (q Quantity) GreaterThanOne() bool {
	return q.num > q.den
}

// Ratio returns the reduced numerator and denominator.
func (q Quantity) Ratio() (num, den int64) {
	if q.den == 0 {
		return q.num, 1
	}
	return q.num, q.den
}

// String renders the rational for debugging; display formatting belongs
// to FormatQuantity.
func (q Quantity) String() string {
	num, den := q.Ratio()
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
