package regexalg

import "sync"

// parseCache memoizes the Thompson-construction NFA for a pattern string.
var parseCache sync.Map // string -> *nfa

// opKey identifies a unary or binary automaton operation for opCache.
type opKey struct {
	a, b, op string
}

// opCache memoizes the result of a regex-algebra operation (an *Automaton
// or a bool) keyed by its operand pattern(s) and operation name. Read-only
// once populated per key, shared across queries since patterns repeat
// heavily across an object term's properties/patternProperties.
var opCache sync.Map // opKey -> *Automaton | bool
