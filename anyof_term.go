package jsonsubschema

// anyOfTerm is a flattened disjunction of branches, none of which is itself
// an AnyOf (flattening happens at construction). It carries no enum of its
// own: the enum overlay is defined only for the primitive variants.
type anyOfTerm struct {
	branches []Term
}

func (anyOfTerm) Kind() Kind { return KindAnyOf }

func (t *anyOfTerm) toJSON() any {
	anyOf := make([]any, len(t.branches))
	for i, b := range t.branches {
		anyOf[i] = b.toJSON()
	}
	return map[string]any{"anyOf": anyOf}
}

// newAnyOfTerm flattens nested AnyOf branches, drops Bot branches, and
// collapses to Top/Bot/the-sole-survivor when possible.
func newAnyOfTerm(branches []Term) Term {
	var flat []Term
	for _, b := range branches {
		if isBot(b) {
			continue
		}
		if isTop(b) {
			return top
		}
		if ao, ok := b.(*anyOfTerm); ok {
			flat = append(flat, ao.branches...)
			continue
		}
		flat = append(flat, b)
	}
	switch len(flat) {
	case 0:
		return bot
	case 1:
		return flat[0]
	default:
		return &anyOfTerm{branches: flat}
	}
}

// anyOfUninhabited reports whether every branch is uninhabited.
func anyOfUninhabited(t *anyOfTerm) bool {
	for _, b := range t.branches {
		if !isUninhabitedTerm(b) {
			return false
		}
	}
	return true
}
