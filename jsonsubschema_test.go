package jsonsubschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// schema returns a Go literal schema (already shaped as bool/map[string]any/
// []any the way goccy/go-json would decode it) unchanged — tests build
// schemas as literals rather than round-tripping through JSON text.
func schema(v any) any { return v }

func TestIsSubschemaConcreteScenarios(t *testing.T) {
	cases := []struct {
		name     string
		left     any
		right    any
		expected bool
	}{
		{
			name:     "integer range is a subtype of number",
			left:     map[string]any{"type": "integer", "minimum": 0.0, "maximum": 10.0},
			right:    map[string]any{"type": "number"},
			expected: true,
		},
		{
			name:     "even number is a subtype of integer",
			left:     map[string]any{"type": "number", "multipleOf": 2.0},
			right:    map[string]any{"type": "integer"},
			expected: true,
		},
		{
			name:     "anchored literal string is a subtype of a prefix pattern",
			left:     map[string]any{"type": "string", "pattern": "^ab$"},
			right:    map[string]any{"type": "string", "pattern": "^a.*$"},
			expected: true,
		},
		{
			name: "tuple with a mismatched second position is not a subtype",
			left: map[string]any{
				"type":             "array",
				"items":            []any{map[string]any{"type": "integer"}, map[string]any{"type": "string"}},
				"additionalItems":  false,
			},
			right:    map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			expected: false,
		},
		{
			name: "object with a superset of required keys refines a narrower object",
			left: map[string]any{
				"type":     "object",
				"required": []any{"a", "b"},
				"properties": map[string]any{
					"a": map[string]any{"type": "integer"},
					"b": map[string]any{"type": "string"},
				},
			},
			right: map[string]any{
				"type":     "object",
				"required": []any{"a"},
				"properties": map[string]any{
					"a": map[string]any{"type": "number"},
				},
			},
			expected: true,
		},
		{
			name:     "enum value outside the target range fails",
			left:     map[string]any{"type": "integer", "enum": []any{1.0, 2.0, 3.0}},
			right:    map[string]any{"type": "integer", "minimum": 1.0, "maximum": 2.0},
			expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsSubschema(schema(tc.left), schema(tc.right))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReflexivity(t *testing.T) {
	schemas := []any{
		map[string]any{"type": "string", "minLength": 2.0},
		map[string]any{"type": "integer", "minimum": 0.0},
		map[string]any{"type": "number", "multipleOf": 0.5},
		map[string]any{"type": "boolean"},
		map[string]any{"type": "null"},
		map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		map[string]any{"type": "object", "properties": map[string]any{"a": map[string]any{"type": "string"}}},
		true,
		false,
	}
	for _, s := range schemas {
		got, err := IsSubschema(s, s)
		require.NoError(t, err)
		assert.True(t, got, "expected %v <= itself", s)
	}
}

func TestTopBotBounds(t *testing.T) {
	s := map[string]any{"type": "integer", "minimum": 0.0}

	botLeS, err := IsSubschema(false, s)
	require.NoError(t, err)
	assert.True(t, botLeS)

	sLeTop, err := IsSubschema(s, true)
	require.NoError(t, err)
	assert.True(t, sLeTop)

	topLeS, err := IsSubschema(true, s)
	require.NoError(t, err)
	assert.False(t, topLeS, "Top is a subtype only of itself")

	topLeTop, err := IsSubschema(true, true)
	require.NoError(t, err)
	assert.True(t, topLeTop)
}

func TestMeetIsLowerBound(t *testing.T) {
	a := map[string]any{"type": "integer", "minimum": 0.0, "maximum": 10.0}
	b := map[string]any{"type": "integer", "minimum": 5.0, "maximum": 20.0}

	m, err := Meet(a, b)
	require.NoError(t, err)

	leA, err := IsSubschema(m, a)
	require.NoError(t, err)
	assert.True(t, leA)

	leB, err := IsSubschema(m, b)
	require.NoError(t, err)
	assert.True(t, leB)
}

func TestJoinIsUpperBound(t *testing.T) {
	a := map[string]any{"type": "integer", "minimum": 0.0, "maximum": 10.0}
	b := map[string]any{"type": "integer", "minimum": 5.0, "maximum": 20.0}

	j, err := Join(a, b)
	require.NoError(t, err)

	aLe, err := IsSubschema(a, j)
	require.NoError(t, err)
	assert.True(t, aLe)

	bLe, err := IsSubschema(b, j)
	require.NoError(t, err)
	assert.True(t, bLe)
}

func TestAbsorption(t *testing.T) {
	s := map[string]any{"type": "string", "minLength": 3.0}

	m, err := Meet(s, true)
	require.NoError(t, err)
	eq, err := schemasEquivalent(m, s)
	require.NoError(t, err)
	assert.True(t, eq, "S ∧ Top should equal S")

	j, err := Join(s, false)
	require.NoError(t, err)
	eq, err = schemasEquivalent(j, s)
	require.NoError(t, err)
	assert.True(t, eq, "S ∨ Bot should equal S")

	m2, err := Meet(s, false)
	require.NoError(t, err)
	isUninh, err := IsUninhabited(m2)
	require.NoError(t, err)
	assert.True(t, isUninh, "S ∧ Bot should be uninhabited")

	j2, err := Join(s, true)
	require.NoError(t, err)
	top2, err := IsUninhabited(j2)
	require.NoError(t, err)
	assert.False(t, top2)
	leTop, err := IsSubschema(true, j2)
	require.NoError(t, err)
	assert.True(t, leTop, "S ∨ Top should equal Top")
}

// schemasEquivalent decides mutual subtyping: two schemas denote the same
// set of instances ("≡") rather than being syntactically equal.
func schemasEquivalent(a, b any) (bool, error) {
	ab, err := IsSubschema(a, b)
	if err != nil || !ab {
		return false, err
	}
	return IsSubschema(b, a)
}

func TestUninhabitedImpliesSubtypeOfEverythingButBot(t *testing.T) {
	uninhabited := map[string]any{"type": "integer", "minimum": 10.0, "maximum": 5.0}

	isUninh, err := IsUninhabited(uninhabited)
	require.NoError(t, err)
	require.True(t, isUninh)

	targets := []any{
		true,
		map[string]any{"type": "string"},
		map[string]any{"type": "object"},
	}
	for _, target := range targets {
		got, err := IsSubschema(uninhabited, target)
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestEnumRespectedAcrossSubtype(t *testing.T) {
	left := map[string]any{"type": "integer", "enum": []any{2.0, 4.0}}
	right := map[string]any{"type": "integer", "multipleOf": 2.0}

	got, err := IsSubschema(left, right)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestAllOfCanonicalizesToMeet(t *testing.T) {
	s1 := map[string]any{"type": "integer", "minimum": 0.0}
	s2 := map[string]any{"type": "integer", "maximum": 10.0}
	combined := map[string]any{"allOf": []any{s1, s2}}

	t1, err := Canonicalize(combined)
	require.NoError(t, err)

	expected, err := meetTerms(mustCanonicalize(t, s1), mustCanonicalize(t, s2))
	require.NoError(t, err)

	assert.Equal(t, expected.toJSON(), t1.toJSON())
}

func mustCanonicalize(t *testing.T, s any) Term {
	t.Helper()
	term, err := Canonicalize(s)
	require.NoError(t, err)
	return term
}

func TestOneOfUnsupported(t *testing.T) {
	s := map[string]any{"oneOf": []any{
		map[string]any{"type": "integer"},
		map[string]any{"type": "string"},
	}}
	_, err := Canonicalize(s)
	assert.ErrorIs(t, err, ErrUnsupportedOneOf)
}

func TestUnsupportedNegation(t *testing.T) {
	cases := []any{
		map[string]any{"type": "integer"},
		map[string]any{"type": "object"},
		map[string]any{"type": "array"},
		map[string]any{"type": "boolean"},
		map[string]any{"type": "null"},
	}
	for _, inner := range cases {
		_, err := Canonicalize(map[string]any{"not": inner})
		assert.ErrorIs(t, err, ErrUnsupportedNegation)
	}
}

func TestNegationOfString(t *testing.T) {
	s := map[string]any{"not": map[string]any{"type": "string", "pattern": "^a$"}}
	term, err := Canonicalize(s)
	require.NoError(t, err)
	assert.False(t, isBot(term))
	assert.False(t, isTop(term))

	// A string not matching "^a$" should validate, "a" itself should not.
	assert.True(t, validatesAgainst(term, "b"))
	assert.False(t, validatesAgainst(term, "a"))
	// Non-string values validate too: "not string==a" still accepts numbers.
	assert.True(t, validatesAgainst(term, 5.0))
}
