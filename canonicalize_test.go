package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySchemaCanonicalizesToTop(t *testing.T) {
	term, err := Canonicalize(map[string]any{})
	require.NoError(t, err)
	assert.True(t, isTop(term))
}

func TestBotJSONRoundTrips(t *testing.T) {
	rendered := Bot{}.toJSON()
	term, err := Canonicalize(rendered)
	require.NoError(t, err)
	assert.True(t, isBot(term))
}

func TestInferTypeFromKeywordsAlone(t *testing.T) {
	cases := []struct {
		name     string
		schema   map[string]any
		wantKind Kind
	}{
		{"object by properties", map[string]any{"properties": map[string]any{"a": map[string]any{}}}, KindObject},
		{"array by items", map[string]any{"items": map[string]any{"type": "integer"}}, KindArray},
		{"string by pattern", map[string]any{"pattern": "^a$"}, KindString},
		{"number by minimum", map[string]any{"minimum": 1.0}, KindNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, err := Canonicalize(tc.schema)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, term.Kind())
		})
	}
}

func TestUnrecognizedTypeErrors(t *testing.T) {
	_, err := Canonicalize(map[string]any{"type": "frobnicate"})
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestAllOfMeetsEveryBranch(t *testing.T) {
	schema := map[string]any{"allOf": []any{
		map[string]any{"type": "integer", "minimum": 0.0},
		map[string]any{"type": "integer", "maximum": 10.0},
		map[string]any{"type": "integer", "multipleOf": 2.0},
	}}
	term, err := Canonicalize(schema)
	require.NoError(t, err)

	it, ok := term.(*integerTerm)
	require.True(t, ok)
	assert.EqualValues(t, 0, ratToJSON(it.interval.min))
	assert.EqualValues(t, 10, ratToJSON(it.interval.max))
	require.NotNil(t, it.multipleOf)
}

func TestAnyOfFlattensNestedBranches(t *testing.T) {
	schema := map[string]any{"anyOf": []any{
		map[string]any{"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		}},
		map[string]any{"type": "boolean"},
	}}
	term, err := Canonicalize(schema)
	require.NoError(t, err)

	ao, ok := term.(*anyOfTerm)
	require.True(t, ok)
	assert.Len(t, ao.branches, 3, "nested anyOf must flatten into a single level")
}
