package jsonsubschema

// validatesArray implements the Array variant's share of validatesAgainst:
// length, uniqueItems, and per-position/tuple-or-single item schemas.
func validatesArray(t *arrayTerm, arr []any) bool {
	if !t.length.containsValue(len(arr)) {
		return false
	}
	if t.uniqueItems {
		seen := map[string]bool{}
		for _, v := range arr {
			k := canonicalEnumKey(v)
			if seen[k] {
				return false
			}
			seen[k] = true
		}
	}
	if !t.isTupleForm {
		for _, v := range arr {
			if !validatesAgainst(t.single, v) {
				return false
			}
		}
		return true
	}
	for i, v := range arr {
		var schema Term
		if i < len(t.tuple) {
			schema = t.tuple[i]
		} else {
			schema = t.additional.asTerm()
		}
		if !validatesAgainst(schema, v) {
			return false
		}
	}
	return true
}

// validatesObject implements the Object variant's share of validatesAgainst:
// property count, required keys, and every applicable properties/
// patternProperties/additionalProperties schema per key, via the same
// lookupSchemas resolution the subtype algorithm uses.
func validatesObject(t *objectTerm, obj map[string]any) bool {
	if !t.propCount.containsValue(len(obj)) {
		return false
	}
	for k := range t.required {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	for k, v := range obj {
		for _, schema := range lookupSchemas(k, t) {
			if !validatesAgainst(schema, v) {
				return false
			}
		}
	}
	return true
}
