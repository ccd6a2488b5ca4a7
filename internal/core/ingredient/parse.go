package ingredient

import (
	"regexp"
	"strings"
)

// Parsed is the structured form of one free-text ingredient line.
// Name is always set (possibly to the whole line, possibly empty for a
// blank line); Quantity and Unit are independently optional. Note holds a
// trailing parenthesized descriptor such as "diced"; it never becomes
// part of the name, so "onion (diced)" and "onion (minced)" aggregate
// under the same key.
type Parsed struct {
	Quantity *Quantity
	Unit     string
	Name     string
	Note     string
}

var (
	// Leading run of digits, dots, slashes and spaces: the quantity
	// segment. A bare-dot start covers ".5 cup sugar".
	quantitySegment = regexp.MustCompile(`^[0-9.][0-9./ ]*`)
	// A single lowercase word: candidate unit token.
	wordSegment = regexp.MustCompile(`^[a-z]+`)
	// Trailing parenthesized descriptor: "(diced)".
	noteSegment = regexp.MustCompile(`\(([^()]*)\)\s*$`)
)

// ParseLine splits one ingredient line into (quantity, unit, name) using
// best-effort segmentation: an optional leading quantity run, an optional
// unit word, and whatever remains as the name. It never fails; the worst
// case is the whole trimmed, lowercased line as the name.
func ParseLine(line string) Parsed {
	rest := strings.ToLower(strings.TrimSpace(line))
	if rest == "" {
		return Parsed{}
	}

	var parsed Parsed

	if m := noteSegment.FindStringSubmatch(rest); m != nil {
		parsed.Note = strings.TrimSpace(m[1])
		rest = strings.TrimSpace(rest[:len(rest)-len(m[0])])
	}

	if seg := quantitySegment.FindString(rest); seg != "" {
		if q, ok := ParseQuantity(strings.TrimSpace(seg)); ok {
			parsed.Quantity = &q
		}
		// A quantity-looking run is consumed even when it fails to
		// parse; it was never going to be a useful name prefix.
		rest = strings.TrimSpace(rest[len(seg):])
	}

	parsed.Unit, rest = takeUnit(rest, parsed.Quantity != nil)
	parsed.Name = rest

	return parsed
}

// takeUnit peels at most two leading lowercase words off rest when they
// form a unit. A word from the fixed vocabulary always counts; an
// arbitrary word counts only when a quantity preceded it and a name
// remains after it, so bare lines like "salt to taste" keep their full
// name.
func takeUnit(rest string, haveQuantity bool) (unit, remainder string) {
	first := wordSegment.FindString(rest)
	if first == "" {
		return "", rest
	}

	afterFirst := strings.TrimSpace(rest[len(first):])

	// Two-word spellings are checked before single words so that a
	// compound entry in the vocabulary would win over its prefix.
	if second := wordSegment.FindString(afterFirst); second != "" {
		if compound := first + " " + second; KnownUnit(compound) {
			return Canonicalize(compound), strings.TrimSpace(afterFirst[len(second):])
		}
	}

	if KnownUnit(first) {
		return Canonicalize(first), afterFirst
	}

	// An ad-hoc unit ("2 handfuls spinach") needs a quantity before it
	// and a name after it; otherwise the word is the name ("3 eggs").
	if haveQuantity && afterFirst != "" {
		return Canonicalize(first), afterFirst
	}

	return "", rest
}
