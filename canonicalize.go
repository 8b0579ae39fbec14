package jsonsubschema

import (
	"fmt"
	"math/big"

	"github.com/Perf-Org-5KRepos/jsonsubschema/regexalg"
)

var allPrimitiveKinds = []Kind{
	KindString, KindInteger, KindNumber, KindBoolean, KindNull, KindArray, KindObject,
}

// Canonicalize turns a decoded-JSON schema document (bool or
// map[string]any) into a Term.
func Canonicalize(raw any) (Term, error) {
	switch v := raw.(type) {
	case bool:
		if v {
			return top, nil
		}
		return bot, nil
	case map[string]any:
		return canonicalizeObject(v)
	default:
		return nil, fmt.Errorf("%w: schema must be a boolean or object, got %T", ErrInvalidSchema, raw)
	}
}

func canonicalizeObject(m map[string]any) (Term, error) {
	if allOf, ok := m["allOf"]; ok {
		branches, ok := allOf.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: allOf must be an array", ErrInvalidSchema)
		}
		acc := top
		for _, b := range branches {
			t, err := Canonicalize(b)
			if err != nil {
				return nil, err
			}
			acc, err = meetTerms(acc, t)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}

	if anyOf, ok := m["anyOf"]; ok {
		arr, ok := anyOf.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: anyOf must be an array", ErrInvalidSchema)
		}
		var branches []Term
		for _, b := range arr {
			t, err := Canonicalize(b)
			if err != nil {
				return nil, err
			}
			branches = append(branches, t)
		}
		return newAnyOfTerm(branches), nil
	}

	if _, ok := m["oneOf"]; ok {
		return nil, ErrUnsupportedOneOf
	}

	if not, ok := m["not"]; ok {
		return canonicalizeNot(not)
	}

	return canonicalizeTyped(m)
}

// canonicalizeNot implements a restricted `not`: supported only when the
// negated schema has a single primitive type with a defined complement
// (String); every other shape signals ErrUnsupportedNegation rather than
// risk an unsound approximation.
func canonicalizeNot(raw any) (Term, error) {
	inner, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	if isBot(inner) {
		return top, nil
	}
	if isTop(inner) {
		return bot, nil
	}

	s, ok := inner.(*stringTerm)
	if !ok || s.enum != nil {
		return nil, ErrUnsupportedNegation
	}
	comp, err := complementString(s)
	if err != nil {
		return nil, err
	}
	branches := universalBranchesExcept(KindString)
	branches = append(branches, comp)
	return newAnyOfTerm(branches), nil
}

// complementString builds the String complement: strings shorter than
// minLength, strings longer than maxLength, and strings not matching
// pattern, combined as AnyOf.
func complementString(s *stringTerm) (Term, error) {
	auto, err := s.automaton()
	if err != nil {
		return nil, err
	}
	var branches []Term
	if s.length.min > 0 {
		t, err := newStringTerm(0, s.length.min-1, false, "", nil)
		if err != nil {
			return nil, err
		}
		branches = append(branches, t)
	}
	if !s.length.unboundedMax {
		t, err := newStringTerm(s.length.max+1, 0, true, "", nil)
		if err != nil {
			return nil, err
		}
		branches = append(branches, t)
	}
	t, err := newStringTermFromAutomaton(countInterval{unboundedMax: true}, regexalg.Complement(auto), nil)
	if err != nil {
		return nil, err
	}
	branches = append(branches, t)
	return newAnyOfTerm(branches), nil
}

// universalTerm returns the unconstrained term for Kind k — equivalent to
// {"type": k} with no further restriction.
func universalTerm(k Kind) Term {
	var t Term
	var err error
	switch k {
	case KindString:
		t, err = newStringTerm(0, 0, true, "", nil)
	case KindInteger:
		t, err = newIntegerTerm(nil, false, nil, false, nil, nil)
	case KindNumber:
		t, err = newNumberTerm(nil, false, nil, false, nil, nil)
	case KindBoolean:
		t, err = newBooleanTerm(nil)
	case KindNull:
		t, err = newNullTerm(nil)
	case KindArray:
		t, err = newArrayTerm(0, 0, true, false, nil, nil, boolOrSchemaTrue(), false, nil)
	case KindObject:
		t, err = newObjectTerm(0, 0, true, nil, nil, nil, boolOrSchemaTrue(), nil)
	default:
		return top
	}
	if err != nil {
		return top
	}
	return t
}

func universalBranchesExcept(except Kind) []Term {
	var out []Term
	for _, k := range allPrimitiveKinds {
		if k == except {
			continue
		}
		out = append(out, universalTerm(k))
	}
	return out
}

// canonicalizeTyped dispatches a plain (non-connective) schema object to
// its variant constructor, inferring the type from "type" when present
// and from the shape of recognized keywords otherwise (draft-4 schemas
// routinely omit "type" on object/array subschemas).
func canonicalizeTyped(m map[string]any) (Term, error) {
	enum := decodeEnum(m)

	typ, err := inferType(m)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "":
		return top, nil

	case "string":
		minLength, _ := getInt(m, "minLength")
		maxLength, maxSet := getInt(m, "maxLength")
		pattern, _ := getString(m, "pattern")
		return newStringTerm(minLength, maxLength, !maxSet, pattern, enum)

	case "integer":
		min, exMin, err := getBound(m, "minimum", "exclusiveMinimum")
		if err != nil {
			return nil, err
		}
		max, exMax, err := getBound(m, "maximum", "exclusiveMaximum")
		if err != nil {
			return nil, err
		}
		mult, err := getRat(m, "multipleOf")
		if err != nil {
			return nil, err
		}
		return newIntegerTerm(min, exMin, max, exMax, mult, enum)

	case "number":
		min, exMin, err := getBound(m, "minimum", "exclusiveMinimum")
		if err != nil {
			return nil, err
		}
		max, exMax, err := getBound(m, "maximum", "exclusiveMaximum")
		if err != nil {
			return nil, err
		}
		mult, err := getRat(m, "multipleOf")
		if err != nil {
			return nil, err
		}
		return newNumberTerm(min, exMin, max, exMax, mult, enum)

	case "boolean":
		return newBooleanTerm(enum)

	case "null":
		return newNullTerm(enum)

	case "array":
		return canonicalizeArray(m, enum)

	case "object":
		return canonicalizeObjectTyped(m, enum)

	default:
		return nil, fmt.Errorf("%w: unrecognized type %q", ErrInvalidSchema, typ)
	}
}

func canonicalizeArray(m map[string]any, enum []any) (Term, error) {
	minItems, _ := getInt(m, "minItems")
	maxItems, maxSet := getInt(m, "maxItems")
	uniqueItems, _ := getBoolField(m, "uniqueItems")

	additional := boolOrSchemaTrue()
	if v, ok := m["additionalItems"]; ok {
		a, err := boolOrSchemaFromJSON(v)
		if err != nil {
			return nil, err
		}
		additional = a
	}

	items, hasItems := m["items"]
	if !hasItems {
		return newArrayTerm(minItems, maxItems, !maxSet, false, nil, top, additional, uniqueItems, enum)
	}

	switch it := items.(type) {
	case []any:
		tuple := make([]Term, len(it))
		for i, raw := range it {
			t, err := Canonicalize(raw)
			if err != nil {
				return nil, err
			}
			tuple[i] = t
		}
		return newArrayTerm(minItems, maxItems, !maxSet, true, tuple, nil, additional, uniqueItems, enum)
	default:
		single, err := Canonicalize(it)
		if err != nil {
			return nil, err
		}
		return newArrayTerm(minItems, maxItems, !maxSet, false, nil, single, boolOrSchemaTrue(), uniqueItems, enum)
	}
}

func canonicalizeObjectTyped(m map[string]any, enum []any) (Term, error) {
	minProperties, _ := getInt(m, "minProperties")
	maxProperties, maxSet := getInt(m, "maxProperties")

	var required []string
	if v, ok := m["required"]; ok {
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: required must be an array of strings", ErrInvalidSchema)
		}
		for _, s := range arr {
			str, ok := s.(string)
			if !ok {
				return nil, fmt.Errorf("%w: required entries must be strings", ErrInvalidSchema)
			}
			required = append(required, str)
		}
	}

	properties, err := decodeSchemaMap(m, "properties")
	if err != nil {
		return nil, err
	}
	patternProperties, err := decodeSchemaMap(m, "patternProperties")
	if err != nil {
		return nil, err
	}

	additional := boolOrSchemaTrue()
	if v, ok := m["additionalProperties"]; ok {
		a, err := boolOrSchemaFromJSON(v)
		if err != nil {
			return nil, err
		}
		additional = a
	}

	return newObjectTerm(minProperties, maxProperties, !maxSet, required, properties, patternProperties, additional, enum)
}

func decodeSchemaMap(m map[string]any, key string) (map[string]Term, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidSchema, key)
	}
	out := make(map[string]Term, len(raw))
	for k, sub := range raw {
		t, err := Canonicalize(sub)
		if err != nil {
			return nil, err
		}
		out[k] = t
	}
	return out, nil
}

func decodeEnum(m map[string]any) []any {
	v, ok := m["enum"]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	return arr
}

// inferType resolves the variant a schema object dispatches to: the
// explicit "type" keyword when present, else a guess from which
// recognized keywords are in play — draft-4 object/array subschemas
// routinely omit "type" entirely.
func inferType(m map[string]any) (string, error) {
	if v, ok := m["type"]; ok {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: type must be a string", ErrInvalidSchema)
		}
		return s, nil
	}
	for _, k := range []string{"properties", "patternProperties", "required", "additionalProperties", "minProperties", "maxProperties"} {
		if _, ok := m[k]; ok {
			return "object", nil
		}
	}
	for _, k := range []string{"items", "additionalItems", "minItems", "maxItems", "uniqueItems"} {
		if _, ok := m[k]; ok {
			return "array", nil
		}
	}
	for _, k := range []string{"minLength", "maxLength", "pattern"} {
		if _, ok := m[k]; ok {
			return "string", nil
		}
	}
	for _, k := range []string{"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf"} {
		if _, ok := m[k]; ok {
			return "number", nil
		}
	}
	// No "type" and no constraining keyword: the empty schema, equivalent
	// to `true` (e.g. Bot's own toJSON rendering, {"not": {}}, must round-trip
	// back through Canonicalize). "" signals this to canonicalizeTyped.
	return "", nil
}

func getInt(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func getString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getBoolField(m map[string]any, key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func getRat(m map[string]any, key string) (*big.Rat, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return ratFromAny(v)
}

// getBound reads a draft-4 minimum/maximum pair alongside its boolean
// exclusive flag.
func getBound(m map[string]any, boundKey, exclusiveKey string) (*big.Rat, bool, error) {
	r, err := getRat(m, boundKey)
	if err != nil {
		return nil, false, err
	}
	if r == nil {
		return nil, false, nil
	}
	excl, _ := getBoolField(m, exclusiveKey)
	return r, excl, nil
}
