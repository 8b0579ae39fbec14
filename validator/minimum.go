package metaschema

// evaluateMinimum checks the "minimum" keyword. Draft-4 has no separate
// numeric "exclusiveMinimum" keyword: "exclusiveMinimum" is a boolean
// modifier on "minimum" itself — when true the comparison is strict (>),
// otherwise it is inclusive (>=).
func evaluateMinimum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Minimum == nil || schema.Minimum.Rat == nil {
		return nil
	}

	cmp := value.Cmp(schema.Minimum.Rat)
	exclusive := schema.ExclusiveMinimum != nil && *schema.ExclusiveMinimum

	if exclusive && cmp <= 0 {
		return NewEvaluationError("minimum", "value_below_exclusive_minimum", "{value} should be greater than {minimum}", map[string]interface{}{
			"value":   FormatRat(value),
			"minimum": FormatRat(schema.Minimum),
		})
	}
	if !exclusive && cmp < 0 {
		return NewEvaluationError("minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]interface{}{
			"value":   FormatRat(value),
			"minimum": FormatRat(schema.Minimum),
		})
	}
	return nil
}
