// Package regexalg implements the anchored-regex algebra the schema
// algebra's String term needs: intersection, subset (inclusion),
// complement, and a finiteness ("cardinality") test — only whether the
// language is finite, not its size.
//
// There is no third-party regex-algebra library in the retrieved example
// corpus, so this is built directly on the standard library's
// regexp/syntax parser: each pattern is parsed to a syntax.Regexp, compiled
// to an epsilon-NFA by Thompson construction, then determinized to a DFA by
// subset construction over a shared, finite alphabet of rune intervals.
// Binary operations (intersect, subset) run as product automata over that
// shared alphabet. Compile caches the NFA of each pattern, and Intersect,
// IsSubset, Complement, IsEmpty, Cardinality and Matches cache their results,
// in package-level sync.Maps, since patterns repeat heavily across a single
// schema comparison.
package regexalg
