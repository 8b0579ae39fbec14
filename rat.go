package jsonsubschema

import (
	"fmt"
	"math/big"
)

// ratFromAny converts a decoded JSON number (float64, or the integer/string
// forms goccy/go-json may hand back for large literals) into an exact
// *big.Rat. JSON Schema's multipleOf, minimum, and maximum are all decimal
// literals in the source document, so this never needs to round.
func ratFromAny(v any) (*big.Rat, error) {
	var s string
	switch n := v.(type) {
	case float64:
		s = big.NewFloat(n).Text('f', -1)
	case int:
		s = fmt.Sprint(n)
	case int64:
		s = fmt.Sprint(n)
	case string:
		s = n
	default:
		return nil, fmt.Errorf("%w: not a number: %v", ErrDecode, v)
	}
	r := new(big.Rat)
	if _, ok := r.SetString(s); !ok {
		return nil, fmt.Errorf("%w: cannot parse %q as a rational", ErrDecode, s)
	}
	return r, nil
}

// asRat converts a decoded JSON scalar (as produced by goccy/go-json
// unmarshaling into any) into an exact rational, for instance-validation
// of enum values against numeric terms.
func asRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case float64:
		r, err := ratFromAny(n)
		return r, err == nil
	case int, int64:
		r, err := ratFromAny(n)
		return r, err == nil
	}
	return nil, false
}

// ceilRat returns the smallest integer ≥ r, as a *big.Rat.
func ceilRat(r *big.Rat) *big.Rat {
	if r.IsInt() {
		return new(big.Rat).Set(r)
	}
	num, den := r.Num(), r.Denom()
	q := new(big.Int).Quo(num, den) // truncates toward zero
	if num.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return new(big.Rat).SetInt(q)
}

// floorRat returns the largest integer ≤ r, as a *big.Rat.
func floorRat(r *big.Rat) *big.Rat {
	if r.IsInt() {
		return new(big.Rat).Set(r)
	}
	num, den := r.Num(), r.Denom()
	q := new(big.Int).Quo(num, den) // truncates toward zero
	if num.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return new(big.Rat).SetInt(q)
}

// lcmRat returns the least common multiple of two positive rationals, used
// to combine multipleOf constraints at meet time. For rationals p/q in
// lowest terms, lcm(a/b, c/d) = lcm(a,c) / gcd(b,d).
func lcmRat(a, b *big.Rat) *big.Rat {
	aNum, aDen := a.Num(), a.Denom()
	bNum, bDen := b.Num(), b.Denom()

	gcdNum := new(big.Int).GCD(nil, nil, new(big.Int).Abs(aNum), new(big.Int).Abs(bNum))
	lcmNum := new(big.Int)
	if gcdNum.Sign() != 0 {
		lcmNum.Div(new(big.Int).Mul(aNum, bNum), gcdNum)
		lcmNum.Abs(lcmNum)
	}

	gcdDen := new(big.Int).GCD(nil, nil, aDen, bDen)

	result := new(big.Rat).SetFrac(lcmNum, gcdDen)
	return result
}

// divisibleRat reports whether a is an integer multiple of b (a mod b == 0),
// for positive rationals.
func divisibleRat(a, b *big.Rat) bool {
	if b.Sign() == 0 {
		return false
	}
	q := new(big.Rat).Quo(a, b)
	return q.IsInt()
}
