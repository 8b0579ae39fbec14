package jsonsubschema

// joinTerms computes ⟦S1⟧ ∪ ⟦S2⟧ as a term: the dual of meet's absorption
// cases, otherwise a flattened, deduplicated AnyOf with uninhabited
// branches dropped.
func joinTerms(a, b Term) (Term, error) {
	if isTop(a) || isTop(b) {
		return top, nil
	}
	if isBot(a) {
		return b, nil
	}
	if isBot(b) {
		return a, nil
	}
	return newAnyOfTerm(dedupBranches([]Term{a, b})), nil
}

// dedupBranches drops structurally identical branches (compared by their
// rendered JSON form), keeping join's output from growing unboundedly when
// the same branch is joined in repeatedly.
func dedupBranches(branches []Term) []Term {
	seen := map[string]bool{}
	var out []Term
	for _, t := range branches {
		k := canonicalEnumKey(t.toJSON())
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}
