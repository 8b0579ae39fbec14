package jsonsubschema

// boolOrSchema models a draft-4 `additionalItems`/`additionalProperties`
// value: JSON boolean `true`, JSON boolean `false`, or a schema. The
// "false < schema < true" ordering and the meet rules for these fields
// both fall directly out of the lattice if `true` is represented as Top
// and `false` as Bot: meet(Top, x) = x, meet(Bot, x) = Bot (i.e. "false"),
// and Top ≤ x iff x = Top, x ≤ Bot iff x = Bot — the usual
// boolean-conjunction and ordering rules, for free.
type boolOrSchema struct {
	term Term
}

func boolOrSchemaTrue() boolOrSchema       { return boolOrSchema{top} }
func boolOrSchemaFalse() boolOrSchema      { return boolOrSchema{bot} }
func boolOrSchemaOf(t Term) boolOrSchema   { return boolOrSchema{t} }
func (b boolOrSchema) asTerm() Term        { return b.term }
func (b boolOrSchema) isTrue() bool        { return isTop(b.term) }
func (b boolOrSchema) isFalse() bool       { return isBot(b.term) }

func (b boolOrSchema) toJSON() any {
	switch {
	case b.isTrue():
		return true
	case b.isFalse():
		return false
	default:
		return b.term.toJSON()
	}
}

func boolOrSchemaFromJSON(v any) (boolOrSchema, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return boolOrSchemaTrue(), nil
		}
		return boolOrSchemaFalse(), nil
	case nil:
		return boolOrSchemaTrue(), nil
	default:
		t, err := Canonicalize(x)
		if err != nil {
			return boolOrSchema{}, err
		}
		return boolOrSchemaOf(t), nil
	}
}

func meetBoolOrSchema(a, b boolOrSchema) (boolOrSchema, error) {
	m, err := meetTerms(a.term, b.term)
	if err != nil {
		return boolOrSchema{}, err
	}
	return boolOrSchema{m}, nil
}

func leBoolOrSchema(a, b boolOrSchema) (bool, error) {
	return isSubtypeTerms(a.term, b.term)
}
