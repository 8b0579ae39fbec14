package jsonsubschema

type nullTerm struct {
	enum []any
}

func (nullTerm) Kind() Kind { return KindNull }

func (t *nullTerm) enumValues() []any { return t.enum }
func (t *nullTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

func (t *nullTerm) toJSON() any {
	m := map[string]any{"type": "null"}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

func newNullTerm(enum []any) (Term, error) {
	return applyEnumOverlay(&nullTerm{}, enum)
}
