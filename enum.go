package jsonsubschema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// canonicalEnumKey renders a decoded JSON value to a stable string for
// deduplication and membership tests. JSON values (maps, slices) are not
// Go-comparable, so set-based membership has no direct equivalent here;
// goccy/go-json sorts object keys on encode, which makes this a safe
// canonical form for equality.
func canonicalEnumKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// applyEnumOverlay filters enum to the values that satisfy t's own
// (non-enum) constraints: an enum-carrying term retains only values that
// satisfy all other constraints, and an empty surviving enum collapses the
// term to ⊥. A nil enum leaves t untouched.
func applyEnumOverlay(t Term, enum []any) (Term, error) {
	if enum == nil {
		return t, nil
	}
	var surviving []any
	seen := map[string]bool{}
	for _, v := range enum {
		if !validatesAgainst(t, v) {
			continue
		}
		k := canonicalEnumKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		surviving = append(surviving, v)
	}
	if len(surviving) == 0 {
		return bot, nil
	}
	ec, ok := t.(enumCarrier)
	if !ok {
		return t, nil
	}
	return ec.withEnum(surviving), nil
}

// meetEnum combines two overlays at meet time: the surviving enum is the
// intersection filtered by membership in the meet's own constraints (met
// is the already-computed non-enum meet).
func meetEnum(met Term, e1, e2 []any) (Term, error) {
	switch {
	case e1 == nil && e2 == nil:
		return met, nil
	case e1 == nil:
		return applyEnumOverlay(met, e2)
	case e2 == nil:
		return applyEnumOverlay(met, e1)
	}
	set2 := map[string]bool{}
	for _, v := range e2 {
		set2[canonicalEnumKey(v)] = true
	}
	var inBoth []any
	for _, v := range e1 {
		if set2[canonicalEnumKey(v)] {
			inBoth = append(inBoth, v)
		}
	}
	if inBoth == nil {
		return bot, nil
	}
	return applyEnumOverlay(met, inBoth)
}

// validatesAgainst decides instance-against-term validity for the narrow
// set of constraints a Term encodes. This is not general instance
// evaluation: it exists solely to implement the enum overlay (filtering at
// construction, and the subtype enum short-circuit — every enum value of
// S1 must validate under S2 for S1 ≤ S2 to hold).
func validatesAgainst(t Term, v any) bool {
	switch s := t.(type) {
	case Top:
		return true
	case Bot:
		return false
	case *stringTerm:
		str, ok := v.(string)
		if !ok {
			return false
		}
		n := len([]rune(str))
		if !s.length.containsValue(n) {
			return false
		}
		auto, err := s.automaton()
		if err != nil || !auto.Matches(str) {
			return false
		}
		return enumAllows(s.enum, v)
	case *integerTerm:
		n, ok := asRat(v)
		if !ok || !n.IsInt() {
			return false
		}
		if !s.interval.containsValue(n) {
			return false
		}
		if s.multipleOf != nil && !divisibleRat(n, s.multipleOf) {
			return false
		}
		return enumAllows(s.enum, v)
	case *numberTerm:
		n, ok := asRat(v)
		if !ok {
			return false
		}
		if !s.interval.containsValue(n) {
			return false
		}
		if s.multipleOf != nil && !divisibleRat(n, s.multipleOf) {
			return false
		}
		return enumAllows(s.enum, v)
	case *booleanTerm:
		_, ok := v.(bool)
		return ok && enumAllows(s.enum, v)
	case *nullTerm:
		return v == nil && enumAllows(s.enum, v)
	case *arrayTerm:
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		return validatesArray(s, arr) && enumAllows(s.enum, v)
	case *objectTerm:
		obj, ok := v.(map[string]any)
		if !ok {
			return false
		}
		return validatesObject(s, obj) && enumAllows(s.enum, v)
	case *anyOfTerm:
		for _, b := range s.branches {
			if validatesAgainst(b, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func enumAllows(enum []any, v any) bool {
	if enum == nil {
		return true
	}
	k := canonicalEnumKey(v)
	for _, e := range enum {
		if canonicalEnumKey(e) == k {
			return true
		}
	}
	return false
}
