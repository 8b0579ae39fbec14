package regexalg

import (
	"fmt"
	"regexp/syntax"
)

// Automaton is a compiled anchored pattern ready for algebra operations.
// Results of binary/unary operations are themselves Automatons with no
// backing pattern string (pattern == ""); ToRegexString synthesizes one
// lazily on demand.
type Automaton struct {
	pattern string
	g       *nfa
}

// Compile parses an anchored (or effectively-anchored; leading/trailing
// ^, $ are treated as implicit — see compile in automaton.go) pattern into
// an Automaton.
func Compile(pattern string) (*Automaton, error) {
	if v, ok := parseCache.Load(pattern); ok {
		return &Automaton{pattern: pattern, g: v.(*nfa)}, nil
	}
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("regexalg: parsing pattern %q: %w", pattern, err)
	}
	g := buildNFA(re.Simplify())
	parseCache.Store(pattern, g)
	return &Automaton{pattern: pattern, g: g}, nil
}

// MustCompile panics on a malformed pattern; for the small set of built-in
// default patterns (e.g. ".*") known to be valid at compile time.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Automaton) key(op string, other *Automaton) opKey {
	if other == nil {
		return opKey{a: a.identity(), op: op}
	}
	return opKey{a: a.identity(), b: other.identity(), op: op}
}

// identity returns the pattern string when available, else a structural
// fallback so synthetic (already-combined) automatons still cache
// correctly across repeated composition.
func (a *Automaton) identity() string {
	if a.pattern != "" {
		return a.pattern
	}
	return fmt.Sprintf("<synthetic:%p>", a.g)
}

// Intersect returns the automaton for L(a) ∩ L(b).
func Intersect(a, b *Automaton) *Automaton {
	k := a.key("intersect", b)
	if v, ok := opCache.Load(k); ok {
		return v.(*Automaton)
	}
	alphabet := alphabetOf(a.g, b.g)
	da := determinize(a.g, alphabet)
	db := determinize(b.g, alphabet)
	prod := product(da, db, alphabet, func(x, y bool) bool { return x && y })
	result := &Automaton{g: prod}
	opCache.Store(k, result)
	return result
}

// IsSubset reports whether L(a) ⊆ L(b).
func IsSubset(a, b *Automaton) bool {
	k := a.key("subset", b)
	if v, ok := opCache.Load(k); ok {
		return v.(bool)
	}
	alphabet := alphabetOf(a.g, b.g)
	da := determinize(a.g, alphabet)
	db := determinize(b.g, alphabet)
	notB := complement(db)
	prod := product(da, notB, alphabet, func(x, y bool) bool { return x && y })
	result := !hasReachableAccept(prod)
	opCache.Store(k, result)
	return result
}

// Complement returns the automaton for the complement of L(a) (every
// string not accepted by a).
func Complement(a *Automaton) *Automaton {
	k := a.key("complement", nil)
	if v, ok := opCache.Load(k); ok {
		return v.(*Automaton)
	}
	alphabet := alphabetOf(a.g)
	da := determinize(a.g, alphabet)
	result := &Automaton{g: complement(da)}
	opCache.Store(k, result)
	return result
}

// IsEmpty reports whether L(a) = ∅.
func IsEmpty(a *Automaton) bool {
	k := a.key("empty", nil)
	if v, ok := opCache.Load(k); ok {
		return v.(bool)
	}
	alphabet := alphabetOf(a.g)
	da := determinize(a.g, alphabet)
	result := !hasReachableAccept(da)
	opCache.Store(k, result)
	return result
}

// Cardinality reports whether L(a) is finite: the cardinality/finiteness
// test on a pattern's language.
func Cardinality(a *Automaton) (finite bool) {
	k := a.key("finite", nil)
	if v, ok := opCache.Load(k); ok {
		return v.(bool)
	}
	alphabet := alphabetOf(a.g)
	da := determinize(a.g, alphabet)
	result := isFinite(da)
	opCache.Store(k, result)
	return result
}

// Matches reports whether s is accepted by a's language. Used by the
// schema algebra's enum overlay to test a literal string value against a
// String term's pattern constraint.
func (a *Automaton) Matches(s string) bool {
	k := a.key("matches:"+s, nil)
	if v, ok := opCache.Load(k); ok {
		return v.(bool)
	}
	alphabet := alphabetOf(a.g)
	det := determinize(a.g, alphabet)
	state := det.start
	for _, r := range s {
		state = deterministicMove(det, state, r)
	}
	result := det.isAccept(state)
	opCache.Store(k, result)
	return result
}

// Equal reports language equality via mutual inclusion.
func Equal(a, b *Automaton) bool {
	return IsSubset(a, b) && IsSubset(b, a)
}
