package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetIntegerNumberCoercesToInteger(t *testing.T) {
	integer := map[string]any{"type": "integer", "minimum": 0.0, "maximum": 10.0}
	number := map[string]any{"type": "number", "minimum": 5.5, "maximum": 20.0}

	m, err := Meet(integer, number)
	require.NoError(t, err)

	mm, ok := m.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", mm["type"], "meeting Integer with Number must coerce to Integer")
	assert.EqualValues(t, 6, mm["minimum"], "5.5 should coerce up to 6")
	assert.EqualValues(t, 10, mm["maximum"])
}

func TestMeetDisjointKindsIsUninhabited(t *testing.T) {
	m, err := Meet(map[string]any{"type": "string"}, map[string]any{"type": "integer"})
	require.NoError(t, err)
	isUninh, err := IsUninhabited(m)
	require.NoError(t, err)
	assert.True(t, isUninh)
}

func TestMeetStringIntersectsPatterns(t *testing.T) {
	a := map[string]any{"type": "string", "pattern": "^a.*$"}
	b := map[string]any{"type": "string", "pattern": "^.*z$"}
	m, err := Meet(a, b)
	require.NoError(t, err)

	leA, err := IsSubschema(m, a)
	require.NoError(t, err)
	assert.True(t, leA)
	leB, err := IsSubschema(m, b)
	require.NoError(t, err)
	assert.True(t, leB)

	// "az" satisfies both; a bare "a" or "z" alone must not survive the meet.
	matchesBoth, err := IsSubschema(map[string]any{"type": "string", "enum": []any{"az"}}, m)
	require.NoError(t, err)
	assert.True(t, matchesBoth)
}

func TestMeetObjectsUnionsRequiredAndMeetsSharedProperties(t *testing.T) {
	a := map[string]any{
		"type":       "object",
		"required":   []any{"x"},
		"properties": map[string]any{"x": map[string]any{"type": "integer", "minimum": 0.0}},
	}
	b := map[string]any{
		"type":       "object",
		"required":   []any{"y"},
		"properties": map[string]any{"x": map[string]any{"type": "integer", "maximum": 10.0}},
	}
	m, err := Meet(a, b)
	require.NoError(t, err)

	mm := m.(map[string]any)
	required, ok := mm["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"x", "y"}, required)

	props := mm["properties"].(map[string]any)
	xSchema := props["x"].(map[string]any)
	assert.EqualValues(t, 0, xSchema["minimum"])
	assert.EqualValues(t, 10, xSchema["maximum"])
}

func TestMeetArraysTupleAndSingleUnify(t *testing.T) {
	tupleForm := map[string]any{
		"type":  "array",
		"items": []any{map[string]any{"type": "integer", "minimum": 0.0}},
	}
	singleForm := map[string]any{"type": "array", "items": map[string]any{"type": "integer", "maximum": 100.0}}

	m, err := Meet(tupleForm, singleForm)
	require.NoError(t, err)

	leTuple, err := IsSubschema(m, tupleForm)
	require.NoError(t, err)
	assert.True(t, leTuple)
	leSingle, err := IsSubschema(m, singleForm)
	require.NoError(t, err)
	assert.True(t, leSingle)
}
