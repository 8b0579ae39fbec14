package jsonsubschema

import (
	"fmt"

	"github.com/Perf-Org-5KRepos/jsonsubschema/regexalg"
)

// defaultPattern is the anchored form of "match anything", used whenever a
// String term has no explicit pattern.
const defaultPattern = "^.*$"

type stringTerm struct {
	length  countInterval
	pattern string // raw anchored pattern, "" only for a not-yet-rendered synthetic pattern
	auto    *regexalg.Automaton
	enum    []any
}

func (stringTerm) Kind() Kind { return KindString }

func (s *stringTerm) enumValues() []any { return s.enum }
func (s *stringTerm) withEnum(e []any) Term {
	c := *s
	c.enum = e
	return &c
}

func (s *stringTerm) toJSON() any {
	m := map[string]any{"type": "string"}
	if s.length.min > 0 {
		m["minLength"] = s.length.min
	}
	if !s.length.unboundedMax {
		m["maxLength"] = s.length.max
	}
	if p := s.patternString(); p != defaultPattern {
		m["pattern"] = p
	}
	if s.enum != nil {
		m["enum"] = s.enum
	}
	return m
}

func (s *stringTerm) patternString() string {
	if s.pattern != "" {
		return s.pattern
	}
	if s.auto != nil {
		return s.auto.ToRegexString()
	}
	return defaultPattern
}

func (s *stringTerm) automaton() (*regexalg.Automaton, error) {
	if s.auto != nil {
		return s.auto, nil
	}
	a, err := regexalg.Compile(s.patternString())
	if err != nil {
		return nil, fmt.Errorf("%w: string pattern %q: %v", ErrDecode, s.patternString(), err)
	}
	s.auto = a
	return a, nil
}

// newStringTerm builds a String term, applying the length-interval
// invariants (minLength ≤ maxLength) and the uninhabitedness check.
func newStringTerm(minLength, maxLength int, maxUnbounded bool, pattern string, enum []any) (Term, error) {
	if pattern == "" {
		pattern = defaultPattern
	}
	s := &stringTerm{
		length:  countInterval{min: minLength, max: maxLength, unboundedMax: maxUnbounded},
		pattern: pattern,
	}

	if s.length.empty() {
		return bot, nil
	}
	if _, err := s.automaton(); err != nil {
		return nil, err
	}
	if regexalg.IsEmpty(s.auto) {
		return bot, nil
	}

	return applyEnumOverlay(s, enum)
}

// newStringTermFromAutomaton builds a String term directly from an already
// computed automaton (the result of a regexalg op such as Intersect), so
// meet doesn't need to synthesize and reparse a regex string for every
// intersection it computes. The pattern field is left blank and rendered
// lazily from auto via patternString/toJSON.
func newStringTermFromAutomaton(length countInterval, auto *regexalg.Automaton, enum []any) (Term, error) {
	if length.empty() {
		return bot, nil
	}
	if regexalg.IsEmpty(auto) {
		return bot, nil
	}
	s := &stringTerm{length: length, auto: auto}
	return applyEnumOverlay(s, enum)
}
