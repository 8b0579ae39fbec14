package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSubtypeLooksUpTargetSchema(t *testing.T) {
	// a's own "a" property is a string, but b restricts "a" to an
	// integer. Looking up "a" on the wrong side (the caller's own
	// properties) would wrongly compare a's string schema against
	// itself and report true; looking it up on b's schema for "a" must
	// report false.
	a := map[string]any{
		"type":       "object",
		"required":   []any{"a"},
		"properties": map[string]any{"a": map[string]any{"type": "string"}},
	}
	b := map[string]any{
		"type":       "object",
		"required":   []any{"a"},
		"properties": map[string]any{"a": map[string]any{"type": "integer"}},
	}
	got, err := IsSubschema(a, b)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestObjectSubtypeAdditionalPropertiesCoversUnnamedKeys(t *testing.T) {
	a := map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"a": map[string]any{"type": "integer"}},
		"additionalProperties": map[string]any{"type": "integer"},
	}
	b := map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "number"},
	}
	got, err := IsSubschema(a, b)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestArraySubtypeChecksAllExtraTuplePositions(t *testing.T) {
	// Every position beyond the right side's single-schema form must be
	// checked, not just the first — the soundness fix over the apparent
	// early-return in the original this package's algorithm is grounded on.
	a := map[string]any{
		"type":            "array",
		"items":           []any{map[string]any{"type": "integer"}, map[string]any{"type": "integer"}, map[string]any{"type": "string"}},
		"additionalItems": false,
	}
	b := map[string]any{"type": "array", "items": map[string]any{"type": "integer"}}

	got, err := IsSubschema(a, b)
	require.NoError(t, err)
	assert.False(t, got, "the third position (string) is not a subtype of integer")
}

func TestArraySubtypeAllExtraPositionsPass(t *testing.T) {
	a := map[string]any{
		"type":            "array",
		"items":           []any{map[string]any{"type": "integer"}, map[string]any{"type": "integer"}, map[string]any{"type": "integer"}},
		"additionalItems": false,
	}
	b := map[string]any{"type": "array", "items": map[string]any{"type": "number"}}

	got, err := IsSubschema(a, b)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestNumberSubtypeOfIntegerRequiresIntegerMultipleOf(t *testing.T) {
	notMultiple := map[string]any{"type": "number", "minimum": 0.0, "maximum": 10.0}

	got, err := IsSubschema(notMultiple, map[string]any{"type": "integer"})
	require.NoError(t, err)
	assert.False(t, got, "a number with no multipleOf is not a subtype of integer")

	multiple := map[string]any{"type": "number", "minimum": 0.0, "maximum": 10.0, "multipleOf": 1.0}
	got2, err := IsSubschema(multiple, map[string]any{"type": "integer"})
	require.NoError(t, err)
	assert.True(t, got2)
}

func TestIntegerSubtypeOfNumber(t *testing.T) {
	got, err := IsSubschema(map[string]any{"type": "integer", "minimum": 0.0}, map[string]any{"type": "number", "minimum": 0.0})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestStringLengthContainment(t *testing.T) {
	narrow := map[string]any{"type": "string", "minLength": 3.0, "maxLength": 5.0}
	wide := map[string]any{"type": "string", "minLength": 1.0}
	got, err := IsSubschema(narrow, wide)
	require.NoError(t, err)
	assert.True(t, got)

	got2, err := IsSubschema(wide, narrow)
	require.NoError(t, err)
	assert.False(t, got2)
}

func TestUniqueItemsMonotonicity(t *testing.T) {
	a := map[string]any{"type": "array", "items": map[string]any{"type": "integer"}}
	b := map[string]any{"type": "array", "items": map[string]any{"type": "integer"}, "uniqueItems": true}
	got, err := IsSubschema(a, b)
	require.NoError(t, err)
	assert.False(t, got, "a non-uniqueItems array is not a subtype of one that requires uniqueItems")

	got2, err := IsSubschema(b, a)
	require.NoError(t, err)
	assert.True(t, got2, "a uniqueItems array is a subtype of one that doesn't require it")
}
