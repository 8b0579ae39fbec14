package metaschema

// evaluateMaximum checks the "maximum" keyword. Draft-4 has no separate
// numeric "exclusiveMaximum" keyword: "exclusiveMaximum" is a boolean
// modifier on "maximum" itself — when true the comparison is strict (<),
// otherwise it is inclusive (<=).
func evaluateMaximum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Maximum == nil || schema.Maximum.Rat == nil {
		return nil
	}

	cmp := value.Cmp(schema.Maximum.Rat)
	exclusive := schema.ExclusiveMaximum != nil && *schema.ExclusiveMaximum

	if exclusive && cmp >= 0 {
		return NewEvaluationError("maximum", "value_above_exclusive_maximum", "{value} should be less than {maximum}", map[string]interface{}{
			"value":   FormatRat(value),
			"maximum": FormatRat(schema.Maximum),
		})
	}
	if !exclusive && cmp > 0 {
		return NewEvaluationError("maximum", "value_above_maximum", "{value} should be at most {maximum}", map[string]interface{}{
			"value":   FormatRat(value),
			"maximum": FormatRat(schema.Maximum),
		})
	}
	return nil
}
