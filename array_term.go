package jsonsubschema

type arrayTerm struct {
	length      countInterval
	uniqueItems bool
	isTupleForm bool // true: "items" was a JSON array (tuple semantics)
	tuple       []Term
	single      Term // meaningful when !isTupleForm; defaults to Top
	additional  boolOrSchema
	enum        []any
}

func (arrayTerm) Kind() Kind { return KindArray }

func (t *arrayTerm) enumValues() []any { return t.enum }
func (t *arrayTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

// shape returns a uniform (tuple, additional) view used by meet/subtype:
// single-schema form behaves exactly like a tuple with zero declared
// positions whose additionalItems is the single schema itself.
func (t *arrayTerm) shape() ([]Term, boolOrSchema) {
	if t.isTupleForm {
		return t.tuple, t.additional
	}
	return nil, boolOrSchemaOf(t.single)
}

func (t *arrayTerm) toJSON() any {
	m := map[string]any{"type": "array"}
	if t.length.min > 0 {
		m["minItems"] = t.length.min
	}
	if !t.length.unboundedMax {
		m["maxItems"] = t.length.max
	}
	if t.uniqueItems {
		m["uniqueItems"] = true
	}
	if t.isTupleForm {
		items := make([]any, len(t.tuple))
		for i, s := range t.tuple {
			items[i] = s.toJSON()
		}
		m["items"] = items
		if !t.additional.isTrue() {
			m["additionalItems"] = t.additional.toJSON()
		}
	} else if !isTop(t.single) {
		m["items"] = t.single.toJSON()
	}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

// newArrayTerm applies the array invariants: a tuple-form term with
// additionalItems = false has its maxItems capped at len(items).
func newArrayTerm(minItems int, maxItems int, maxUnbounded bool, isTupleForm bool, tuple []Term, single Term, additional boolOrSchema, uniqueItems bool, enum []any) (Term, error) {
	if single == nil {
		single = top
	}
	length := countInterval{min: minItems, max: maxItems, unboundedMax: maxUnbounded}
	if isTupleForm && additional.isFalse() {
		if length.unboundedMax || length.max > len(tuple) {
			length.max = len(tuple)
			length.unboundedMax = false
		}
	}

	t := &arrayTerm{
		length:      length,
		uniqueItems: uniqueItems,
		isTupleForm: isTupleForm,
		tuple:       tuple,
		single:      single,
		additional:  additional,
	}

	if arrayUninhabited(t) {
		return bot, nil
	}
	return applyEnumOverlay(t, enum)
}

// arrayUninhabited reports array-level emptiness: an empty item-count
// interval, tuple form with additionalItems = false and minItems exceeding
// the declared tuple length, or a bare declared empty tuple (uninhabited
// regardless of additionalItems).
func arrayUninhabited(t *arrayTerm) bool {
	if t.length.empty() {
		return true
	}
	if t.isTupleForm && len(t.tuple) == 0 {
		return true
	}
	if t.isTupleForm && t.additional.isFalse() && t.length.min > len(t.tuple) {
		return true
	}
	for _, it := range t.tuple {
		if isBot(it) {
			return true
		}
	}
	return false
}
