package jsonsubschema

import "math/big"

// integerTerm's interval is always stored closed-inclusive: bounds coerce
// from exclusive to ±1 inclusive form at construction, so exclusiveMin/Max
// never survive into the stored interval.
type integerTerm struct {
	interval   numInterval
	multipleOf *big.Rat // nil = unconstrained
	enum       []any
}

func (integerTerm) Kind() Kind { return KindInteger }

func (t *integerTerm) enumValues() []any { return t.enum }
func (t *integerTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

func (t *integerTerm) toJSON() any {
	m := map[string]any{"type": "integer"}
	if t.interval.min != nil {
		m["minimum"] = ratToJSON(t.interval.min)
	}
	if t.interval.max != nil {
		m["maximum"] = ratToJSON(t.interval.max)
	}
	if t.multipleOf != nil {
		m["multipleOf"] = ratToJSON(t.multipleOf)
	}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

// coerceIntegerBounds applies draft-4 exclusive-bound semantics and then
// coerces the resulting real bounds to the tightest enclosing integers:
// exclusive bounds move to the nearest enclosing integer and become
// inclusive, so the stored interval is always closed over the integers.
func coerceIntegerBounds(min *big.Rat, exclusiveMin bool, max *big.Rat, exclusiveMax bool) numInterval {
	iv := numInterval{}
	if min != nil {
		if exclusiveMin {
			iv.min = new(big.Rat).Add(floorRat(min), big.NewRat(1, 1))
		} else {
			iv.min = ceilRat(min)
		}
	}
	if max != nil {
		if exclusiveMax {
			iv.max = new(big.Rat).Sub(ceilRat(max), big.NewRat(1, 1))
		} else {
			iv.max = floorRat(max)
		}
	}
	return iv
}

func newIntegerTerm(min *big.Rat, exclusiveMin bool, max *big.Rat, exclusiveMax bool, multipleOf *big.Rat, enum []any) (Term, error) {
	iv := coerceIntegerBounds(min, exclusiveMin, max, exclusiveMax)

	if multipleOf != nil && multipleOf.Sign() == 0 {
		multipleOf = nil
	}

	t := &integerTerm{interval: iv, multipleOf: multipleOf}
	if isNumericUninhabited(iv, multipleOf) {
		return bot, nil
	}
	return applyEnumOverlay(t, enum)
}

// ratToJSON renders a rational as the plain integer/decimal JSON Schema
// literals expect, preferring an int64 form when it fits.
func ratToJSON(r *big.Rat) any {
	if r.IsInt() {
		n := r.Num()
		if n.IsInt64() {
			return n.Int64()
		}
	}
	f, _ := r.Float64()
	return f
}

// isNumericUninhabited is the numeric uninhabitedness test shared by
// integer and number terms: an empty interval, or a multipleOf that cannot
// be satisfied within a doubly-bounded interval.
func isNumericUninhabited(iv numInterval, multipleOf *big.Rat) bool {
	if iv.empty() {
		return true
	}
	if multipleOf == nil || iv.min == nil || iv.max == nil {
		return false
	}
	// Smallest multiple ≥ iv.min must not exceed iv.max.
	q := new(big.Rat).Quo(iv.min, multipleOf)
	k := ceilRat(q)
	smallest := new(big.Rat).Mul(k, multipleOf)
	if iv.exclusiveMin && smallest.Cmp(iv.min) == 0 {
		k = new(big.Rat).Add(k, big.NewRat(1, 1))
		smallest = new(big.Rat).Mul(k, multipleOf)
	}
	if smallest.Cmp(iv.max) > 0 {
		return true
	}
	if iv.exclusiveMax && smallest.Cmp(iv.max) == 0 {
		return true
	}
	return false
}
