package chron

import (
	"sort"
	"strconv"
	"strings"
)

type matcherKind int

const (
	// matchAny accepts every value in the field's domain.
	matchAny matcherKind = iota
	// matchValues accepts an explicit ascending set of values.
	matchValues
)

// fieldMatcher is the parsed form of a single cron field. It is built
// once by the parser and never mutated afterwards.
type fieldMatcher struct {
	kind   matcherKind
	values []int
	min    int
	max    int
}

func (m fieldMatcher) matches(value int) bool {
	switch m.kind {
	case matchAny:
		return true
	case matchValues:
		for _, v := range m.values {
			if v == value {
				return true
			}
		}
		return false
	}
	return false
}

// next returns the smallest accepted value greater than or equal to the
// given one, reporting false when the field has no such value and the
// caller must carry into the next larger unit.
func (m fieldMatcher) next(value int) (int, bool) {
	switch m.kind {
	case matchAny:
		if value < m.min {
			return m.min, true
		}
		if value > m.max {
			return 0, false
		}
		return value, true
	case matchValues:
		for _, v := range m.values {
			if v >= value {
				return v, true
			}
		}
	}
	return 0, false
}

// parseField parses one cron field: a comma-separated list of single
// values, inclusive ranges and step expressions, or a bare "*" covering
// the whole [min, max] domain. Explicit values and range endpoints
// outside the domain are rejected; values produced by step expansion
// outside the domain are dropped.
func parseField(text, name string, min, max int, names []string) (fieldMatcher, error) {
	s := strings.TrimSpace(text)
	if s == "*" {
		return fieldMatcher{kind: matchAny, min: min, max: max}, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)

		switch base, step, hasStep := strings.Cut(part, "/"); {
		case hasStep:
			n, err := strconv.Atoi(step)
			if err != nil || n < 0 {
				return fieldMatcher{}, &FieldError{Field: name, Value: part, Reason: "invalid step"}
			}
			if n == 0 {
				return fieldMatcher{}, &StepError{Field: name, Step: n}
			}
			start, end, err := parseStepBase(base, name, min, max, names, part)
			if err != nil {
				return fieldMatcher{}, err
			}
			for v := start; v <= end; v += n {
				if v >= min && v <= max {
					seen[v] = struct{}{}
				}
			}
		case strings.Contains(part, "-"):
			first, last, _ := strings.Cut(part, "-")
			from, err := parseValue(first, name, min, names, part, "invalid range start")
			if err != nil {
				return fieldMatcher{}, err
			}
			to, err := parseValue(last, name, min, names, part, "invalid range end")
			if err != nil {
				return fieldMatcher{}, err
			}
			if from > to {
				return fieldMatcher{}, &FieldError{Field: name, Value: part, Reason: "range start > end"}
			}
			for v := from; v <= to; v++ {
				if v < min || v > max {
					return fieldMatcher{}, &RangeError{Field: name, Value: v, Min: min, Max: max}
				}
				seen[v] = struct{}{}
			}
		default:
			v, err := parseValue(part, name, min, names, part, "invalid value")
			if err != nil {
				return fieldMatcher{}, err
			}
			if v < min || v > max {
				return fieldMatcher{}, &RangeError{Field: name, Value: v, Min: min, Max: max}
			}
			seen[v] = struct{}{}
		}
	}

	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	return fieldMatcher{kind: matchValues, values: values, min: min, max: max}, nil
}

// parseStepBase resolves the base of a step expression: "*" covers the
// whole domain, "a-b" an explicit span and a single value "a" the span
// [a, max].
func parseStepBase(base, name string, min, max int, names []string, part string) (int, int, error) {
	if base == "*" {
		return min, max, nil
	}
	if strings.Contains(base, "-") {
		first, last, _ := strings.Cut(base, "-")
		from, err := parseValue(first, name, min, names, part, "invalid range start")
		if err != nil {
			return 0, 0, err
		}
		to, err := parseValue(last, name, min, names, part, "invalid range end")
		if err != nil {
			return 0, 0, err
		}
		return from, to, nil
	}
	from, err := parseValue(base, name, min, names, part, "invalid value")
	if err != nil {
		return 0, 0, err
	}
	return from, max, nil
}

// parseValue parses a numeric token, falling back to the field's name
// dictionary (month and weekday abbreviations) when one is defined.
func parseValue(token, name string, min int, names []string, part, reason string) (int, error) {
	if v, err := strconv.Atoi(token); err == nil {
		return v, nil
	}
	for i, n := range names {
		if strings.EqualFold(n, token) {
			return min + i, nil
		}
	}
	return 0, &FieldError{Field: name, Value: part, Reason: reason}
}
