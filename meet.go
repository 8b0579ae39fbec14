package jsonsubschema

import (
	"math/big"

	"github.com/Perf-Org-5KRepos/jsonsubschema/regexalg"
)

// meetTerms computes ⟦S1⟧ ∩ ⟦S2⟧ as a term. Bot/Top are absorbed first,
// AnyOf distributes meet over its branches (meet is ∧ and distributes over
// ∨), and cross-kind Integer/Number pairs get their own numeric-coercion-
// aware path; every other Kind mismatch is disjoint.
func meetTerms(a, b Term) (Term, error) {
	if isBot(a) || isBot(b) {
		return bot, nil
	}
	if isTop(a) {
		return b, nil
	}
	if isTop(b) {
		return a, nil
	}
	if ao, ok := a.(*anyOfTerm); ok {
		return meetAnyOf(ao, b)
	}
	if bo, ok := b.(*anyOfTerm); ok {
		return meetAnyOf(bo, a)
	}

	if isIntegerNumberPair(a, b) {
		return meetIntegerNumber(a, b)
	}
	if a.Kind() != b.Kind() {
		return bot, nil
	}

	switch x := a.(type) {
	case *stringTerm:
		y := b.(*stringTerm)
		length := x.length.meet(y.length)
		xa, err := x.automaton()
		if err != nil {
			return nil, err
		}
		ya, err := y.automaton()
		if err != nil {
			return nil, err
		}
		met, err := newStringTermFromAutomaton(length, regexalg.Intersect(xa, ya), nil)
		if err != nil {
			return nil, err
		}
		return meetEnum(met, x.enum, y.enum)

	case *integerTerm:
		y := b.(*integerTerm)
		iv := x.interval.meet(y.interval)
		mult := combineMultipleOf(x.multipleOf, y.multipleOf)
		if isNumericUninhabited(iv, mult) {
			return meetEnum(bot, x.enum, y.enum)
		}
		return meetEnum(&integerTerm{interval: iv, multipleOf: mult}, x.enum, y.enum)

	case *numberTerm:
		y := b.(*numberTerm)
		iv := x.interval.meet(y.interval)
		mult := combineMultipleOf(x.multipleOf, y.multipleOf)
		if isNumericUninhabited(iv, mult) {
			return meetEnum(bot, x.enum, y.enum)
		}
		return meetEnum(&numberTerm{interval: iv, multipleOf: mult}, x.enum, y.enum)

	case *booleanTerm:
		y := b.(*booleanTerm)
		return meetEnum(&booleanTerm{}, x.enum, y.enum)

	case *nullTerm:
		y := b.(*nullTerm)
		return meetEnum(&nullTerm{}, x.enum, y.enum)

	case *arrayTerm:
		y := b.(*arrayTerm)
		met, err := meetArrays(x, y)
		if err != nil {
			return nil, err
		}
		return meetEnum(met, x.enum, y.enum)

	case *objectTerm:
		y := b.(*objectTerm)
		met, err := meetObjects(x, y)
		if err != nil {
			return nil, err
		}
		return meetEnum(met, x.enum, y.enum)

	default:
		return bot, nil
	}
}

func isIntegerNumberPair(a, b Term) bool {
	return (a.Kind() == KindInteger && b.Kind() == KindNumber) ||
		(a.Kind() == KindNumber && b.Kind() == KindInteger)
}

// meetIntegerNumber intersects an Integer term with a Number term: the
// result is always coerced to Integer, since the intersection of the
// integers with any set of reals contains only integers.
func meetIntegerNumber(a, b Term) (Term, error) {
	var it *integerTerm
	var nt *numberTerm
	if x, ok := a.(*integerTerm); ok {
		it, nt = x, b.(*numberTerm)
	} else {
		it, nt = b.(*integerTerm), a.(*numberTerm)
	}
	iv := it.interval.meet(nt.interval)
	mult := combineMultipleOf(it.multipleOf, nt.multipleOf)
	met, err := newIntegerTerm(iv.min, iv.exclusiveMin, iv.max, iv.exclusiveMax, mult, nil)
	if err != nil {
		return nil, err
	}
	return meetEnum(met, it.enum, nt.enum)
}

func combineMultipleOf(a, b *big.Rat) *big.Rat {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return lcmRat(a, b)
	}
}

// meetAnyOf distributes meet over an AnyOf's branches: (B1 ∨ B2 ∨ ...) ∧ x
// = (B1 ∧ x) ∨ (B2 ∧ x) ∨ ....
func meetAnyOf(ao *anyOfTerm, other Term) (Term, error) {
	branches := make([]Term, 0, len(ao.branches))
	for _, br := range ao.branches {
		m, err := meetTerms(br, other)
		if err != nil {
			return nil, err
		}
		branches = append(branches, m)
	}
	return newAnyOfTerm(branches), nil
}

// meetArrays computes the meet of two array terms, unifying single- and
// tuple-form via shape() so a uniform positional-meet loop handles both.
func meetArrays(a, b *arrayTerm) (Term, error) {
	length := a.length.meet(b.length)
	unique := a.uniqueItems || b.uniqueItems

	if !a.isTupleForm && !b.isTupleForm {
		single, err := meetTerms(a.single, b.single)
		if err != nil {
			return nil, err
		}
		return newArrayTerm(length.min, length.max, length.unboundedMax, false, nil, single, boolOrSchemaTrue(), unique, nil)
	}

	tupleA, addA := a.shape()
	tupleB, addB := b.shape()
	n := len(tupleA)
	if len(tupleB) > n {
		n = len(tupleB)
	}
	tuple := make([]Term, n)
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
		m, err := meetTerms(ta, tb)
		if err != nil {
			return nil, err
		}
		tuple[i] = m
	}
	additional, err := meetBoolOrSchema(addA, addB)
	if err != nil {
		return nil, err
	}
	return newArrayTerm(length.min, length.max, length.unboundedMax, true, tuple, nil, additional, unique, nil)
}

// meetObjects computes the meet of two object terms: union of
// properties/patternProperties with pairwise meet on keys shared by exact
// string equality (no regex-vs-literal reconciliation at meet time),
// required-key union, and additionalProperties meet.
func meetObjects(a, b *objectTerm) (Term, error) {
	propCount := a.propCount.meet(b.propCount)

	required := make([]string, 0, len(a.required)+len(b.required))
	seen := map[string]bool{}
	for k := range a.required {
		required = append(required, k)
		seen[k] = true
	}
	for k := range b.required {
		if !seen[k] {
			required = append(required, k)
			seen[k] = true
		}
	}

	properties := make(map[string]Term, len(a.properties)+len(b.properties))
	for k, s := range a.properties {
		properties[k] = s
	}
	for k, s := range b.properties {
		if other, ok := properties[k]; ok {
			m, err := meetTerms(other, s)
			if err != nil {
				return nil, err
			}
			properties[k] = m
		} else {
			properties[k] = s
		}
	}

	patternProperties := make(map[string]Term, len(a.patternProperties)+len(b.patternProperties))
	for k, s := range a.patternProperties {
		patternProperties[k] = s
	}
	for k, s := range b.patternProperties {
		if other, ok := patternProperties[k]; ok {
			m, err := meetTerms(other, s)
			if err != nil {
				return nil, err
			}
			patternProperties[k] = m
		} else {
			patternProperties[k] = s
		}
	}

	additional, err := meetBoolOrSchema(a.additional, b.additional)
	if err != nil {
		return nil, err
	}
	return newObjectTerm(propCount.min, propCount.max, propCount.unboundedMax, required, properties, patternProperties, additional, nil)
}
