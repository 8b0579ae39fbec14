package jsonsubschema

import "math/big"

// numInterval is a closed/open interval over the extended rationals,
// backing the Integer/Number attribute bounds. A nil bound means unbounded
// (−∞ or +∞); exclusiveMin/Max mirror draft-4's boolean exclusivity flags.
type numInterval struct {
	min          *big.Rat // nil = -infinity
	max          *big.Rat // nil = +infinity
	exclusiveMin bool
	exclusiveMax bool
}

func (iv numInterval) empty() bool {
	if iv.min == nil || iv.max == nil {
		return false
	}
	c := iv.min.Cmp(iv.max)
	if c > 0 {
		return true
	}
	if c == 0 && (iv.exclusiveMin || iv.exclusiveMax) {
		return true
	}
	return false
}

// meet returns the intersection interval, preserving the tighter bound and
// its open/closed sense when bounds are equal.
func (iv numInterval) meet(other numInterval) numInterval {
	result := numInterval{}

	switch {
	case iv.min == nil:
		result.min, result.exclusiveMin = other.min, other.exclusiveMin
	case other.min == nil:
		result.min, result.exclusiveMin = iv.min, iv.exclusiveMin
	default:
		switch iv.min.Cmp(other.min) {
		case 1:
			result.min, result.exclusiveMin = iv.min, iv.exclusiveMin
		case -1:
			result.min, result.exclusiveMin = other.min, other.exclusiveMin
		default:
			result.min = iv.min
			result.exclusiveMin = iv.exclusiveMin || other.exclusiveMin
		}
	}

	switch {
	case iv.max == nil:
		result.max, result.exclusiveMax = other.max, other.exclusiveMax
	case other.max == nil:
		result.max, result.exclusiveMax = iv.max, iv.exclusiveMax
	default:
		switch iv.max.Cmp(other.max) {
		case -1:
			result.max, result.exclusiveMax = iv.max, iv.exclusiveMax
		case 1:
			result.max, result.exclusiveMax = other.max, other.exclusiveMax
		default:
			result.max = iv.max
			result.exclusiveMax = iv.exclusiveMax || other.exclusiveMax
		}
	}

	return result
}

// contains reports iv ⊇ other (every value satisfying other also satisfies
// iv), used directly by the Integer/Number subtype rule's interval
// containment check.
func (iv numInterval) contains(other numInterval) bool {
	if iv.min != nil {
		if other.min == nil {
			return false
		}
		c := iv.min.Cmp(other.min)
		if c > 0 {
			return false
		}
		if c == 0 && iv.exclusiveMin && !other.exclusiveMin {
			return false
		}
	}
	if iv.max != nil {
		if other.max == nil {
			return false
		}
		c := iv.max.Cmp(other.max)
		if c < 0 {
			return false
		}
		if c == 0 && iv.exclusiveMax && !other.exclusiveMax {
			return false
		}
	}
	return true
}

// containsValue reports whether the scalar v lies within iv.
func (iv numInterval) containsValue(v *big.Rat) bool {
	if iv.min != nil {
		c := v.Cmp(iv.min)
		if c < 0 || (c == 0 && iv.exclusiveMin) {
			return false
		}
	}
	if iv.max != nil {
		c := v.Cmp(iv.max)
		if c > 0 || (c == 0 && iv.exclusiveMax) {
			return false
		}
	}
	return true
}

// countInterval bounds a non-negative cardinality field (minItems/maxItems,
// minProperties/maxProperties, string lengths). Go has no native
// extended-integer type, so unboundedMax stands in for +∞ the way the
// teacher's *float64 "nil means absent" fields stand in for "no bound" —
// translated to the integer domain these cardinality fields require.
type countInterval struct {
	min          int
	max          int
	unboundedMax bool
}

func (c countInterval) empty() bool {
	return !c.unboundedMax && c.min > c.max
}

func (c countInterval) meet(other countInterval) countInterval {
	result := countInterval{min: c.min}
	if other.min > result.min {
		result.min = other.min
	}

	switch {
	case c.unboundedMax:
		result.max, result.unboundedMax = other.max, other.unboundedMax
	case other.unboundedMax:
		result.max, result.unboundedMax = c.max, c.unboundedMax
	case c.max < other.max:
		result.max = c.max
	default:
		result.max = other.max
	}
	return result
}

// contains reports c ⊇ other.
func (c countInterval) contains(other countInterval) bool {
	if other.min < c.min {
		return false
	}
	if c.unboundedMax {
		return true
	}
	if other.unboundedMax {
		return false
	}
	return other.max <= c.max
}

func (c countInterval) containsValue(n int) bool {
	if n < c.min {
		return false
	}
	if c.unboundedMax {
		return true
	}
	return n <= c.max
}
