package metaschema

import "fmt"

// evaluateItems validates draft-4's "items"/"additionalItems" pair. "items"
// is either a single schema applied to every element (list validation) or
// an array of schemas applied positionally to a tuple prefix (tuple
// validation) — with "additionalItems" (a boolean or schema) governing any
// elements past the tuple. A single-schema "items" and "additionalItems"
// are mutually exclusive in draft-4; only one of schema.Items/ItemsTuple is
// ever populated by UnmarshalJSON.
func evaluateItems(schema *Schema, array []interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope) ([]*EvaluationResult, []*EvaluationError) {
	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	if schema.Items != nil {
		for i, item := range array {
			result, props, items := schema.Items.evaluate(item, dynamicScope)
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
			if result == nil {
				continue
			}
			//nolint:errcheck
			result.SetEvaluationPath(fmt.Sprintf("/items/%d", i)).
				SetInstanceLocation(fmt.Sprintf("/%d", i))

			if result.IsValid() {
				evaluatedItems[i] = true
				continue
			}
			results = append(results, result)
			errors = append(errors, NewEvaluationError("items", "item_mismatch", "Item at index {index} does not match the items schema", map[string]interface{}{
				"index": i,
			}))
		}
		return results, errors
	}

	for i, item := range array {
		if i < len(schema.ItemsTuple) {
			tupleSchema := schema.ItemsTuple[i]
			if tupleSchema == nil {
				evaluatedItems[i] = true
				continue
			}
			result, props, items := tupleSchema.evaluate(item, dynamicScope)
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
			if result == nil {
				continue
			}
			//nolint:errcheck
			result.SetEvaluationPath(fmt.Sprintf("/items/%d", i)).
				SetInstanceLocation(fmt.Sprintf("/%d", i))

			if result.IsValid() {
				evaluatedItems[i] = true
				continue
			}
			results = append(results, result)
			errors = append(errors, NewEvaluationError("items", "tuple_item_mismatch", "Item at index {index} does not match its tuple schema", map[string]interface{}{
				"index": i,
			}))
			continue
		}

		if schema.AdditionalItems == nil {
			evaluatedItems[i] = true
			continue
		}

		if schema.AdditionalItems.Boolean != nil {
			if !*schema.AdditionalItems.Boolean {
				errors = append(errors, NewEvaluationError("additionalItems", "additional_items_not_allowed", "Item at index {index} is not allowed beyond the tuple", map[string]interface{}{
					"index": i,
				}))
				continue
			}
			evaluatedItems[i] = true
			continue
		}

		result, props, items := schema.AdditionalItems.evaluate(item, dynamicScope)
		mergeStringMaps(evaluatedProps, props)
		mergeIntMaps(evaluatedItems, items)
		if result == nil {
			continue
		}
		//nolint:errcheck
		result.SetEvaluationPath(fmt.Sprintf("/additionalItems/%d", i)).
			SetInstanceLocation(fmt.Sprintf("/%d", i))

		if result.IsValid() {
			evaluatedItems[i] = true
			continue
		}
		results = append(results, result)
		errors = append(errors, NewEvaluationError("additionalItems", "additional_item_mismatch", "Item at index {index} does not match the additionalItems schema", map[string]interface{}{
			"index": i,
		}))
	}

	return results, errors
}
