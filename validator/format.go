package metaschema

import "regexp"

// evaluateFormat checks the "format" keyword. draft4.json only ever declares
// "format": "regex" (on its own "pattern" property), so the gate only needs
// to assert that string values are syntactically valid Go RE2 patterns;
// every other format name is treated as an unrecognized annotation and
// ignored, matching draft-4's "format" being advisory by default.
func evaluateFormat(schema *Schema, value interface{}) *EvaluationError {
	if schema.Format == nil {
		return nil
	}

	if *schema.Format != "regex" {
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return nil
	}

	if _, err := regexp.Compile(str); err != nil {
		return NewEvaluationError("format", "format_mismatch", "Value does not match format '{format}'", map[string]interface{}{"format": "regex"})
	}

	return nil
}
