package regexalg

import (
	"regexp/syntax"
)

const maxRune = 0x10FFFF

// runeRange is an inclusive, unsigned range of Unicode code points labeling
// one NFA transition.
type runeRange struct {
	lo, hi rune
}

type nfaTrans struct {
	runeRange
	to int
}

type nfaState struct {
	trans []nfaTrans
	eps   []int
}

// nfa is a finite automaton over Unicode code points. Thompson construction
// produces one with epsilon transitions and a single accepting state;
// determinize/product/complement (dfa.go) consume and produce the same
// type in its epsilon-free, deterministic, complete form — unifying both
// representations avoids a separate DFA type and lets every operation
// uniformly re-determinize an automaton against a freshly chosen alphabet.
type nfa struct {
	states []nfaState
	start  int
	accept map[int]bool
}

func (n *nfa) isAccept(s int) bool { return n.accept[s] }

func (n *nfa) newState() int {
	n.states = append(n.states, nfaState{})
	return len(n.states) - 1
}

func (n *nfa) addEps(from, to int) {
	n.states[from].eps = append(n.states[from].eps, to)
}

func (n *nfa) addRange(from int, lo, hi rune, to int) {
	n.states[from].trans = append(n.states[from].trans, nfaTrans{runeRange{lo, hi}, to})
}

// buildNFA compiles a parsed, simplified regex into a fresh NFA.
func buildNFA(re *syntax.Regexp) *nfa {
	n := &nfa{}
	start, accept := compile(n, re)
	n.start = start
	n.accept = map[int]bool{accept: true}
	return n
}

// compile recursively lays out states for re into n, returning (start,
// accept) state indices for the fragment. Zero-width assertions
// (^, $, \b, ...) are treated as epsilon: callers are expected to have
// already confirmed the pattern is anchored, so the assertions carry no
// further information for the language this automaton represents.
func compile(n *nfa, re *syntax.Regexp) (start, accept int) {
	switch re.Op {
	case syntax.OpNoMatch:
		s := n.newState()
		a := n.newState()
		return s, a

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		s := n.newState()
		return s, s

	case syntax.OpLiteral:
		s := n.newState()
		cur := s
		for _, r := range re.Rune {
			next := n.newState()
			if re.Flags&syntax.FoldCase != 0 {
				lo, hi := foldRange(r)
				for _, rr := range lo {
					n.addRange(cur, rr.lo, rr.hi, next)
				}
				_ = hi
			} else {
				n.addRange(cur, r, r, next)
			}
			cur = next
		}
		return s, cur

	case syntax.OpCharClass:
		s := n.newState()
		a := n.newState()
		for i := 0; i+1 < len(re.Rune); i += 2 {
			n.addRange(s, re.Rune[i], re.Rune[i+1], a)
		}
		return s, a

	case syntax.OpAnyCharNotNL:
		s := n.newState()
		a := n.newState()
		n.addRange(s, 0, '\n'-1, a)
		n.addRange(s, '\n'+1, maxRune, a)
		return s, a

	case syntax.OpAnyChar:
		s := n.newState()
		a := n.newState()
		n.addRange(s, 0, maxRune, a)
		return s, a

	case syntax.OpCapture:
		return compile(n, re.Sub[0])

	case syntax.OpStar:
		return compileStar(n, re.Sub[0])

	case syntax.OpPlus:
		s1, a1 := compile(n, re.Sub[0])
		s2, a2 := compileStar(n, re.Sub[0])
		n.addEps(a1, s2)
		return s1, a2

	case syntax.OpQuest:
		s, a := compile(n, re.Sub[0])
		n.addEps(s, a)
		return s, a

	case syntax.OpRepeat:
		return compileRepeat(n, re.Sub[0], re.Min, re.Max)

	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			s := n.newState()
			return s, s
		}
		start, cur := compile(n, re.Sub[0])
		for _, sub := range re.Sub[1:] {
			s2, a2 := compile(n, sub)
			n.addEps(cur, s2)
			cur = a2
		}
		return start, cur

	case syntax.OpAlternate:
		s := n.newState()
		a := n.newState()
		for _, sub := range re.Sub {
			ss, sa := compile(n, sub)
			n.addEps(s, ss)
			n.addEps(sa, a)
		}
		return s, a

	default:
		// Unsupported node (e.g. OpPseudo internals): treat as an
		// unconstrained single character, erring toward over-acceptance
		// rather than silently rejecting a pattern we fail to model.
		s := n.newState()
		a := n.newState()
		n.addRange(s, 0, maxRune, a)
		return s, a
	}
}

func compileStar(n *nfa, sub *syntax.Regexp) (start, accept int) {
	s := n.newState()
	a := n.newState()
	ss, sa := compile(n, sub)
	n.addEps(s, ss)
	n.addEps(s, a)
	n.addEps(sa, ss)
	n.addEps(sa, a)
	return s, a
}

// compileRepeat expands {min,max} by concatenating min mandatory copies,
// then either (max-min) optional copies or, when max is unbounded (-1), a
// trailing star.
func compileRepeat(n *nfa, sub *syntax.Regexp, min, max int) (start, accept int) {
	s := n.newState()
	cur := s
	for i := 0; i < min; i++ {
		ss, sa := compile(n, sub)
		n.addEps(cur, ss)
		cur = sa
	}
	if max == -1 {
		ss, sa := compileStar(n, sub)
		n.addEps(cur, ss)
		cur = sa
		return s, cur
	}
	for i := min; i < max; i++ {
		ss, sa := compile(n, sub)
		n.addEps(cur, ss)
		a := n.newState()
		n.addEps(sa, a)
		n.addEps(cur, a)
		cur = a
	}
	return s, cur
}

// foldRange expands a single case-folded rune literal into the small set
// of ranges covering its case-folding orbit (ASCII-focused; adequate for
// the schema patterns this package needs to reason about).
func foldRange(r rune) ([]runeRange, []runeRange) {
	orbit := []rune{r}
	// Simplified orbit: ASCII upper/lower only, which covers the
	// practical (?i) cases seen in JSON Schema patterns.
	if r >= 'a' && r <= 'z' {
		orbit = append(orbit, r-32)
	} else if r >= 'A' && r <= 'Z' {
		orbit = append(orbit, r+32)
	}
	ranges := make([]runeRange, len(orbit))
	for i, rr := range orbit {
		ranges[i] = runeRange{rr, rr}
	}
	return ranges, nil
}
