package jsonsubschema

import (
	"sort"

	"github.com/Perf-Org-5KRepos/jsonsubschema/regexalg"
)

type objectTerm struct {
	propCount         countInterval
	required          map[string]bool
	properties        map[string]Term
	patternProperties map[string]Term // key: raw anchored pattern
	additional        boolOrSchema
	enum              []any
}

func (objectTerm) Kind() Kind { return KindObject }

func (t *objectTerm) enumValues() []any { return t.enum }
func (t *objectTerm) withEnum(e []any) Term {
	c := *t
	c.enum = e
	return &c
}

func (t *objectTerm) toJSON() any {
	m := map[string]any{"type": "object"}
	if t.propCount.min > 0 {
		m["minProperties"] = t.propCount.min
	}
	if !t.propCount.unboundedMax {
		m["maxProperties"] = t.propCount.max
	}
	if len(t.required) > 0 {
		req := make([]string, 0, len(t.required))
		for k := range t.required {
			req = append(req, k)
		}
		sort.Strings(req)
		m["required"] = req
	}
	if len(t.properties) > 0 {
		props := make(map[string]any, len(t.properties))
		for k, s := range t.properties {
			props[k] = s.toJSON()
		}
		m["properties"] = props
	}
	if len(t.patternProperties) > 0 {
		pp := make(map[string]any, len(t.patternProperties))
		for k, s := range t.patternProperties {
			pp[k] = s.toJSON()
		}
		m["patternProperties"] = pp
	}
	if !t.additional.isTrue() {
		m["additionalProperties"] = t.additional.toJSON()
	}
	if t.enum != nil {
		m["enum"] = t.enum
	}
	return m
}

func newObjectTerm(minProperties, maxProperties int, maxUnbounded bool, required []string, properties map[string]Term, patternProperties map[string]Term, additional boolOrSchema, enum []any) (Term, error) {
	reqSet := map[string]bool{}
	for _, k := range required {
		reqSet[k] = true
	}
	if len(reqSet) > minProperties {
		minProperties = len(reqSet)
	}

	t := &objectTerm{
		propCount:         countInterval{min: minProperties, max: maxProperties, unboundedMax: maxUnbounded},
		required:          reqSet,
		properties:        properties,
		patternProperties: patternProperties,
		additional:        additional,
	}

	if objectUninhabited(t) {
		return bot, nil
	}
	return applyEnumOverlay(t, enum)
}

// objectUninhabited reports object-level emptiness: an empty
// property-count interval (which also catches |required| > maxProperties,
// since minProperties is always bumped to at least |required| beforehand),
// or a required key neither named in properties nor matched by any
// patternProperties while additionalProperties = false.
func objectUninhabited(t *objectTerm) bool {
	if t.propCount.empty() {
		return true
	}
	if !t.additional.isFalse() {
		return false
	}
	for k := range t.required {
		if _, ok := t.properties[k]; ok {
			continue
		}
		covered := false
		for pattern := range t.patternProperties {
			if patternMatchesKey(pattern, k) {
				covered = true
				break
			}
		}
		if !covered {
			return true
		}
	}
	return false
}

// lookupSchemas returns every schema a key k would be validated against
// within object term o: its literal property schema if named, else every
// patternProperties schema whose pattern matches k, else additionalProperties.
// Always indexes the target schema o, never the caller's own properties
// map — the two must never be conflated when checking one object term
// against another.
func lookupSchemas(k string, o *objectTerm) []Term {
	if s, ok := o.properties[k]; ok {
		return []Term{s}
	}
	var matched []Term
	for pattern, s := range o.patternProperties {
		if patternMatchesKey(pattern, k) {
			matched = append(matched, s)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return []Term{o.additional.asTerm()}
}

func patternMatchesKey(pattern, key string) bool {
	a, err := regexalg.Compile(pattern)
	if err != nil {
		return false
	}
	return a.Matches(key)
}

// patternCardinalityFinite reports whether the set of strings matched by
// pattern is finite, using the regex engine's cardinality analysis to
// detect an infinite patternProperties language during subtype checking.
func patternCardinalityFinite(pattern string) bool {
	a, err := regexalg.Compile(pattern)
	if err != nil {
		return false
	}
	return regexalg.Cardinality(a)
}

// patternCovers reports whether every string matched by inner is also
// matched by outer, i.e. L(inner) ⊆ L(outer).
func patternCovers(outer, inner string) bool {
	oa, err := regexalg.Compile(outer)
	if err != nil {
		return false
	}
	ia, err := regexalg.Compile(inner)
	if err != nil {
		return false
	}
	return regexalg.IsSubset(ia, oa)
}
