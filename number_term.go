package jsonsubschema

import "math/big"

type numberTerm struct {
	interval   numInterval
	multipleOf *big.Rat
	enum       []any
}

func (numberTerm) Kind() Kind { return KindNumber }

func (t *numberTerm) enumValues() []any { return t.enum }
func (t *numberTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

func (t *numberTerm) toJSON() any {
	m := map[string]any{"type": "number"}
	if t.interval.min != nil {
		m["minimum"] = ratToJSON(t.interval.min)
		if t.interval.exclusiveMin {
			m["exclusiveMinimum"] = true
		}
	}
	if t.interval.max != nil {
		m["maximum"] = ratToJSON(t.interval.max)
		if t.interval.exclusiveMax {
			m["exclusiveMaximum"] = true
		}
	}
	if t.multipleOf != nil {
		m["multipleOf"] = ratToJSON(t.multipleOf)
	}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

func newNumberTerm(min *big.Rat, exclusiveMin bool, max *big.Rat, exclusiveMax bool, multipleOf *big.Rat, enum []any) (Term, error) {
	iv := numInterval{min: min, max: max, exclusiveMin: exclusiveMin && min != nil, exclusiveMax: exclusiveMax && max != nil}
	if multipleOf != nil && multipleOf.Sign() == 0 {
		multipleOf = nil
	}
	t := &numberTerm{interval: iv, multipleOf: multipleOf}
	if isNumericUninhabited(iv, multipleOf) {
		return bot, nil
	}
	return applyEnumOverlay(t, enum)
}
