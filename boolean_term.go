package jsonsubschema

type booleanTerm struct {
	enum []any
}

func (booleanTerm) Kind() Kind { return KindBoolean }

func (t *booleanTerm) enumValues() []any { return t.enum }
func (t *booleanTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

func (t *booleanTerm) toJSON() any {
	m := map[string]any{"type": "boolean"}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

func newBooleanTerm(enum []any) (Term, error) {
	return applyEnumOverlay(&booleanTerm{}, enum)
}
