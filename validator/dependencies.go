package metaschema

import "fmt"

// evaluateDependencies checks draft-4's "dependencies" keyword: each entry is
// either a property-dependency (an array of property names that must also be
// present whenever the key is) or a schema-dependency (a schema the whole
// instance must satisfy whenever the key is present). A single schema
// document mixes both forms freely, keyed independently.
func evaluateDependencies(schema *Schema, object map[string]interface{}) []*EvaluationError {
	var errs []*EvaluationError

	for propName, dep := range schema.Dependencies {
		if dep == nil {
			continue
		}
		if _, present := object[propName]; !present {
			continue
		}

		if dep.Schema != nil {
			result := dep.Schema.Validate(object)
			if result != nil && !result.IsValid() {
				errs = append(errs, NewEvaluationError("dependencies", "dependency_schema_mismatch",
					"Object does not satisfy the schema required by dependency on {property}", map[string]interface{}{
						"property": fmt.Sprintf("'%s'", propName),
					}))
			}
			continue
		}

		var missing []string
		for _, required := range dep.PropertyNames {
			if _, ok := object[required]; !ok {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, NewEvaluationError("dependencies", "missing_dependent_property",
				"Property {property} requires {missing} to also be present", map[string]interface{}{
					"property": fmt.Sprintf("'%s'", propName),
					"missing":  missing,
				}))
		}
	}

	return errs
}
