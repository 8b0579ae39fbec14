package jsonsubschema

import (
	"math/big"

	"github.com/Perf-Org-5KRepos/jsonsubschema/regexalg"
)

// isSubtypeTerms decides ⟦a⟧ ⊆ ⟦b⟧. Top ≤ S holds only when S = Top (not
// for every S, as a naive "top accepts everything so it's a subtype of
// everything" reading would have it); the object lookup used for
// required-key and pairwise checks indexes the target schema, never the
// source; numeric/boolean/null/array/object negation is simply unsupported
// (handled in canonicalize.go, which never produces a negated term for
// those variants); and oneOf on the left is rejected rather than silently
// treated as anyOf (also enforced in canonicalize.go).
func isSubtypeTerms(a, b Term) (bool, error) {
	if isBot(a) {
		return true, nil
	}
	if isTop(b) {
		return true, nil
	}
	if isTop(a) {
		return false, nil
	}
	if isBot(b) {
		return false, nil
	}

	if ao, ok := a.(*anyOfTerm); ok {
		for _, br := range ao.branches {
			ok2, err := isSubtypeTerms(br, b)
			if err != nil || !ok2 {
				return false, err
			}
		}
		return true, nil
	}
	if bo, ok := b.(*anyOfTerm); ok {
		for _, br := range bo.branches {
			ok2, err := isSubtypeTerms(a, br)
			if err != nil {
				return false, err
			}
			if ok2 {
				return true, nil
			}
		}
		return false, nil
	}

	// Enum short-circuit: when the left side carries an enum, its
	// inhabitants ARE the enum values, so subtyping reduces to every enum
	// value validating against the right side.
	if ec, ok := a.(enumCarrier); ok {
		if enum := ec.enumValues(); enum != nil {
			for _, v := range enum {
				if !validatesAgainst(b, v) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	if it, ok := a.(*integerTerm); ok {
		if nt, ok := b.(*numberTerm); ok {
			return numericSubtype(it.interval, it.multipleOf, nt.interval, nt.multipleOf), nil
		}
	}
	if nt, ok := a.(*numberTerm); ok {
		if it, ok := b.(*integerTerm); ok {
			if nt.multipleOf == nil || !nt.multipleOf.IsInt() {
				return false, nil
			}
			iv := coerceIntegerBounds(nt.interval.min, nt.interval.exclusiveMin, nt.interval.max, nt.interval.exclusiveMax)
			return numericSubtype(iv, nt.multipleOf, it.interval, it.multipleOf), nil
		}
	}

	if a.Kind() != b.Kind() {
		return false, nil
	}

	switch x := a.(type) {
	case *stringTerm:
		y := b.(*stringTerm)
		if !y.length.contains(x.length) {
			return false, nil
		}
		xa, err := x.automaton()
		if err != nil {
			return false, err
		}
		ya, err := y.automaton()
		if err != nil {
			return false, err
		}
		return regexalg.IsSubset(xa, ya), nil

	case *integerTerm:
		y := b.(*integerTerm)
		return numericSubtype(x.interval, x.multipleOf, y.interval, y.multipleOf), nil

	case *numberTerm:
		y := b.(*numberTerm)
		return numericSubtype(x.interval, x.multipleOf, y.interval, y.multipleOf), nil

	case *booleanTerm:
		return true, nil

	case *nullTerm:
		return true, nil

	case *arrayTerm:
		y := b.(*arrayTerm)
		return isArraySubtype(x, y)

	case *objectTerm:
		y := b.(*objectTerm)
		return isObjectSubtype(x, y)

	default:
		return false, nil
	}
}

// numericSubtype reports ivA ⊆ ivB and that every multiple of multA is
// also a multiple of multB.
func numericSubtype(ivA numInterval, multA *big.Rat, ivB numInterval, multB *big.Rat) bool {
	if !ivB.contains(ivA) {
		return false
	}
	if multB == nil {
		return true
	}
	if multA == nil {
		return false
	}
	return divisibleRat(multA, multB)
}

// isArraySubtype decides the Array subtype rule. Every position up to the
// longer of the two shapes is checked — not just the first extra tuple
// position — since a shorter left-hand tuple's additionalItems schema must
// refine every one of the right side's extra positions, not just the
// nearest one, for the containment to actually be sound.
func isArraySubtype(a, b *arrayTerm) (bool, error) {
	if !b.length.contains(a.length) {
		return false, nil
	}
	if b.uniqueItems && !a.uniqueItems {
		return false, nil
	}

	tupleA, addA := a.shape()
	tupleB, addB := b.shape()
	n := len(tupleA)
	if len(tupleB) > n {
		n = len(tupleB)
	}
	for i := 0; i < n; i++ {
		var ta, tb Term
		if i < len(tupleA) {
			ta = tupleA[i]
		} else {
			ta = addA.asTerm()
		}
		if i < len(tupleB) {
			tb = tupleB[i]
		} else {
			tb = addB.asTerm()
		}
		ok, err := isSubtypeTerms(ta, tb)
		if err != nil || !ok {
			return false, err
		}
	}
	return leBoolOrSchema(addA, addB)
}

// isObjectSubtype decides the Object subtype rule, using lookupSchemas to
// resolve each key against the correct object term on each side.
func isObjectSubtype(a, b *objectTerm) (bool, error) {
	if !b.propCount.contains(a.propCount) {
		return false, nil
	}
	for k := range b.required {
		if !a.required[k] {
			return false, nil
		}
	}

	// Required keys common to both: every schema a key resolves to on the
	// left must refine every schema it resolves to on the right.
	for k := range b.required {
		for _, ls := range lookupSchemas(k, a) {
			for _, rs := range lookupSchemas(k, b) {
				ok, err := isSubtypeTerms(ls, rs)
				if err != nil || !ok {
					return false, err
				}
			}
		}
	}

	// Right-hand property names not declared (by name or pattern) on the
	// left must be covered by the left's additionalProperties.
	for k, rs := range b.properties {
		if _, ok := a.properties[k]; ok {
			continue
		}
		if matchedByAnyPattern(k, a.patternProperties) {
			continue
		}
		ok, err := isSubtypeTerms(a.additional.asTerm(), rs)
		if err != nil || !ok {
			return false, err
		}
	}

	// Right-hand patterns not literally present on the left and not
	// covered by a left pattern must be covered by the left's
	// additionalProperties — unless the right pattern's language is
	// finite, which is tolerable even without that coverage.
	for p, rs := range b.patternProperties {
		if _, ok := a.patternProperties[p]; ok {
			continue
		}
		if coveredByAnyLeftPattern(p, a.patternProperties) {
			continue
		}
		ok, err := isSubtypeTerms(a.additional.asTerm(), rs)
		if err != nil {
			return false, err
		}
		if !ok && !patternCardinalityFinite(p) {
			return false, nil
		}
	}

	// Pairwise: every left property/pattern schema must refine whatever
	// it matches on the right.
	for k, ls := range a.properties {
		if rs, ok := b.properties[k]; ok {
			ok2, err := isSubtypeTerms(ls, rs)
			if err != nil || !ok2 {
				return false, err
			}
			continue
		}
		for p, rs := range b.patternProperties {
			if patternMatchesKey(p, k) {
				ok2, err := isSubtypeTerms(ls, rs)
				if err != nil || !ok2 {
					return false, err
				}
			}
		}
	}
	for p, ls := range a.patternProperties {
		for p2, rs := range b.patternProperties {
			if patternCovers(p2, p) {
				ok2, err := isSubtypeTerms(ls, rs)
				if err != nil || !ok2 {
					return false, err
				}
			}
		}
	}

	unmatchedProps, unmatchedPatterns := unmatchedLeft(a, b)

	switch {
	case b.additional.isTrue():
		return true, nil
	case b.additional.isFalse():
		if a.additional.isTrue() {
			return false, nil
		}
		if len(unmatchedProps) > 0 || len(unmatchedPatterns) > 0 {
			return false, nil
		}
		return true, nil
	default:
		for _, k := range unmatchedProps {
			ok, err := isSubtypeTerms(a.properties[k], b.additional.asTerm())
			if err != nil || !ok {
				return false, err
			}
		}
		for _, p := range unmatchedPatterns {
			ok, err := isSubtypeTerms(a.patternProperties[p], b.additional.asTerm())
			if err != nil || !ok {
				return false, err
			}
		}
		return leBoolOrSchema(a.additional, b.additional)
	}
}

func matchedByAnyPattern(key string, patterns map[string]Term) bool {
	for p := range patterns {
		if patternMatchesKey(p, key) {
			return true
		}
	}
	return false
}

func coveredByAnyLeftPattern(rightPattern string, leftPatterns map[string]Term) bool {
	for p := range leftPatterns {
		if patternCovers(p, rightPattern) {
			return true
		}
	}
	return false
}

// unmatchedLeft returns a's property/pattern keys that never lined up
// against any of b's named properties or patterns, i.e. keys whose fate is
// governed purely by b's additionalProperties.
func unmatchedLeft(a, b *objectTerm) (props []string, patterns []string) {
	for k := range a.properties {
		if _, ok := b.properties[k]; ok {
			continue
		}
		if matchedByAnyPattern(k, b.patternProperties) {
			continue
		}
		props = append(props, k)
	}
	for p := range a.patternProperties {
		covered := false
		for p2 := range b.patternProperties {
			if patternCovers(p2, p) {
				covered = true
				break
			}
		}
		if !covered {
			patterns = append(patterns, p)
		}
	}
	return props, patterns
}
